package scroll

import "time"

const (
	DefaultSnapDuration = 500 * time.Millisecond
	DefaultResizeQuiet  = 250 * time.Millisecond
	DefaultSettleDelay  = 150 * time.Millisecond
)

// Config holds the controller timings. Zero or negative fields fall back to
// the defaults.
type Config struct {
	SnapDuration time.Duration
	ResizeQuiet  time.Duration
	SettleDelay  time.Duration
}

func DefaultConfig() Config {
	return Config{
		SnapDuration: DefaultSnapDuration,
		ResizeQuiet:  DefaultResizeQuiet,
		SettleDelay:  DefaultSettleDelay,
	}
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.SnapDuration <= 0 {
		c.SnapDuration = DefaultSnapDuration
	}
	if c.ResizeQuiet <= 0 {
		c.ResizeQuiet = DefaultResizeQuiet
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	return c
}
