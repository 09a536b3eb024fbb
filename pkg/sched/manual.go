// pkg/sched/manual.go
package sched

import (
	"sort"
	"sync"
	"time"
)

// ManualClock testler için sanal zamanlı Scheduler. Advance çağrısı sanal
// saati ilerletir ve vadesi gelen callback'leri zaman sırasıyla çalıştırır.
// Callback'ler Advance'i çağıran goroutine üzerinde, kilit tutulmadan koşar;
// bu da tarayıcıdaki tek iş parçacıklı event loop davranışını taklit eder.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	tasks  []*manualTask
}

type manualTask struct {
	id       int
	due      time.Time
	interval time.Duration // 0 ise tek seferlik
	fn       func()
	canceled bool
}

// NewManualClock sıfır noktası verilen sanal saat oluşturur.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) SetInterval(d time.Duration, fn func()) Handle {
	return c.schedule(d, d, fn)
}

func (c *ManualClock) SetTimeout(d time.Duration, fn func()) Handle {
	return c.schedule(d, 0, fn)
}

func (c *ManualClock) RequestFrame(fn func()) Handle {
	return c.schedule(FrameInterval, 0, fn)
}

func (c *ManualClock) schedule(after, interval time.Duration, fn func()) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	t := &manualTask{id: c.nextID, due: c.now.Add(after), interval: interval, fn: fn}
	c.tasks = append(c.tasks, t)
	return manualHandle{clock: c, task: t}
}

// Advance sanal saati d kadar ilerletir; aradaki tüm vadeleri sırayla işler.
// Bir callback yeni görev zamanlayabilir; hedef zamana kadar vadesi gelenler
// onlar da çalıştırılır.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.nextDue(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		if t.due.After(c.now) {
			c.now = t.due
		}
		if t.interval > 0 {
			t.due = t.due.Add(t.interval)
		} else {
			t.canceled = true
		}
		fn := t.fn
		c.mu.Unlock()

		fn()
	}
}

// nextDue c.mu tutulurken çağrılmalı; hedefe kadar vadesi en erken görevi bulur.
func (c *ManualClock) nextDue(target time.Time) *manualTask {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	c.tasks = live
	sort.SliceStable(c.tasks, func(i, j int) bool { return c.tasks[i].due.Before(c.tasks[j].due) })
	for _, t := range c.tasks {
		if !t.due.After(target) {
			return t
		}
	}
	return nil
}

// PendingCount iptal edilmemiş görev sayısı; kaynak sızıntısı kontrolleri için.
func (c *ManualClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

type manualHandle struct {
	clock *ManualClock
	task  *manualTask
}

func (h manualHandle) Cancel() {
	h.clock.mu.Lock()
	defer h.clock.mu.Unlock()
	h.task.canceled = true
}
