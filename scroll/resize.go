package scroll

import "time"

// Reconciler debounces resize signals. Each Signal supersedes the pending
// one; the host schedules a timer of Quiet carrying the returned generation
// and calls Fire when it expires. Only the latest generation fires, once.
type Reconciler struct {
	Quiet time.Duration

	gen     uint64
	pending bool
}

// Signal records a resize and returns the generation to schedule.
func (r *Reconciler) Signal() uint64 {
	r.gen++
	r.pending = true
	return r.gen
}

// Fire reports whether the timer tagged gen should reconcile now.
func (r *Reconciler) Fire(gen uint64) bool {
	if !r.pending || gen != r.gen {
		return false
	}
	r.pending = false
	return true
}

// Pending reports whether a reconciliation is waiting on its timer.
func (r *Reconciler) Pending() bool { return r.pending }
