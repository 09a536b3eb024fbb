// pkg/sched/sched.go
package sched

import (
	"sync"
	"time"
)

// FrameInterval animasyon karesi (requestAnimationFrame) cadansının karşılığı.
const FrameInterval = 16 * time.Millisecond

// Handle zamanlanmış bir callback'in iptal kolu. Cancel birden fazla kez
// çağrılabilir; ilk çağrıdan sonrası no-op'tur.
type Handle interface {
	Cancel()
}

// Scheduler viewer state machine'lerinin zamanlayıcı portu. Tarayıcıdaki
// setInterval/setTimeout/requestAnimationFrame üçlüsünün soyutlaması;
// testlerde ManualClock ile değiştirilir.
type Scheduler interface {
	Now() time.Time
	SetInterval(d time.Duration, fn func()) Handle
	SetTimeout(d time.Duration, fn func()) Handle
	RequestFrame(fn func()) Handle
}

// --- Gerçek zamanlı implementasyon ---

type wallScheduler struct{}

// New stdlib time üzerine kurulu gerçek zamanlı Scheduler döndürür.
func New() Scheduler {
	return wallScheduler{}
}

func (wallScheduler) Now() time.Time { return time.Now() }

func (wallScheduler) SetInterval(d time.Duration, fn func()) Handle {
	h := &wallHandle{done: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-h.done:
				return
			}
		}
	}()
	return h
}

func (wallScheduler) SetTimeout(d time.Duration, fn func()) Handle {
	t := time.AfterFunc(d, fn)
	return timerHandle{t}
}

func (s wallScheduler) RequestFrame(fn func()) Handle {
	return s.SetTimeout(FrameInterval, fn)
}

type wallHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *wallHandle) Cancel() {
	h.once.Do(func() { close(h.done) })
}

type timerHandle struct{ t *time.Timer }

func (h timerHandle) Cancel() { h.t.Stop() }
