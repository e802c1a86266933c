package playback

import "time"

// Timer is a scheduled task that can be cancelled.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

func defaultAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// upsellTimer owns the single pending auto-dismiss task.
// Each schedule bumps the generation so a late firing of a replaced task is ignored.
type upsellTimer struct {
	afterFunc  AfterFunc
	timeout    time.Duration
	timer      Timer
	generation uint64
}

// schedule cancels any pending task and arms a new one. Caller holds the controller lock.
func (u *upsellTimer) schedule(expire func(generation uint64)) {
	u.cancel()
	u.generation++
	gen := u.generation
	u.timer = u.afterFunc(u.timeout, func() { expire(gen) })
}

// cancel stops the pending task, if any. Caller holds the controller lock.
func (u *upsellTimer) cancel() {
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
}

func (u *upsellTimer) current(gen uint64) bool {
	return u.timer != nil && gen == u.generation
}
