package scroll

import (
	"math"
	"time"
)

// NextSnapOffset returns the snap target nearest to current, clamped into
// [0, maxScroll]. Ties resolve to the earlier target. With no targets it
// returns current clamped.
func NextSnapOffset(current float64, targets []float64, maxScroll float64) float64 {
	if maxScroll < 0 || math.IsNaN(maxScroll) {
		maxScroll = 0
	}
	current = clamp(current, 0, maxScroll)
	if len(targets) == 0 {
		return current
	}

	best := targets[0]
	bestDist := math.Abs(current - best)
	for _, t := range targets[1:] {
		d := math.Abs(current - t)
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	return clamp(best, 0, maxScroll)
}

// Normalize expresses offset as a fraction of maxScroll in [0, 1].
func Normalize(offset, maxScroll float64) float64 {
	if maxScroll <= 0 || math.IsNaN(maxScroll) {
		return 0
	}
	return clamp(offset/maxScroll, 0, 1)
}

// Denormalize maps a [0, 1] progress value back to an absolute offset.
func Denormalize(progress, maxScroll float64) float64 {
	if maxScroll <= 0 {
		return 0
	}
	return clamp(progress, 0, 1) * maxScroll
}

// EaseOutCubic is the easing curve applied to snap motions.
func EaseOutCubic(t float64) float64 {
	t = clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// Motion is one eased scroll from From to To.
type Motion struct {
	Gen      uint64
	From     float64
	To       float64
	Progress float64 // target as a fraction of MaxScroll
	Started  time.Time
	Duration time.Duration
}

// At returns the eased offset at now and whether the motion has finished.
func (m Motion) At(now time.Time) (float64, bool) {
	if m.Duration <= 0 {
		return m.To, true
	}
	elapsed := now.Sub(m.Started)
	if elapsed >= m.Duration {
		return m.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(m.Duration)
	return m.From + (m.To-m.From)*EaseOutCubic(t), false
}

// Snapper owns the single in-flight snap motion. Starting a motion or
// cancelling bumps the generation, so steps scheduled for an older motion
// are rejected instead of compounding with the new one.
type Snapper struct {
	Duration time.Duration

	gen    uint64
	active bool
	motion Motion
}

// Start replaces any in-flight motion with one from `from` to `to`.
func (s *Snapper) Start(from, to, maxScroll float64, now time.Time) Motion {
	s.gen++
	s.active = true
	s.motion = Motion{
		Gen:      s.gen,
		From:     from,
		To:       to,
		Progress: Normalize(to, maxScroll),
		Started:  now,
		Duration: s.Duration,
	}
	return s.motion
}

// Step advances the motion tagged gen. ok is false when gen is stale or no
// motion is running.
func (s *Snapper) Step(gen uint64, now time.Time) (offset float64, done bool, ok bool) {
	if !s.active || gen != s.gen {
		return 0, false, false
	}
	offset, done = s.motion.At(now)
	if done {
		s.active = false
	}
	return offset, done, true
}

// Cancel drops the in-flight motion, if any.
func (s *Snapper) Cancel() {
	s.gen++
	s.active = false
}

// Active reports whether a motion is running.
func (s *Snapper) Active() bool { return s.active }

// Gen is the current motion generation.
func (s *Snapper) Gen() uint64 { return s.gen }
