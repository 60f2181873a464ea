package utils

import (
	"sync"
	"time"
)

// Debouncer runs only the last of a burst of calls, once the burst has been
// quiet for the given duration.
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce schedules fn after duration, cancelling any call still pending.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels the pending call, if any. It reports whether one was cancelled.
func (d *Debouncer) Stop() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
