// pkg/sched/manual_test.go
package sched

import (
	"testing"
	"time"
)

func TestManualClockRunsDueTasksInOrder(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	var order []string
	c.SetTimeout(30*time.Millisecond, func() { order = append(order, "b") })
	c.SetTimeout(10*time.Millisecond, func() { order = append(order, "a") })
	c.SetTimeout(50*time.Millisecond, func() { order = append(order, "c") })

	c.Advance(40 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("beklenen [a b], bulunan %v", order)
	}

	c.Advance(20 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("beklenen [a b c], bulunan %v", order)
	}
}

func TestManualClockIntervalRepeats(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	ticks := 0
	h := c.SetInterval(time.Second, func() { ticks++ })

	c.Advance(3500 * time.Millisecond)
	if ticks != 3 {
		t.Fatalf("3 tick bekleniyordu, %d geldi", ticks)
	}

	h.Cancel()
	c.Advance(5 * time.Second)
	if ticks != 3 {
		t.Fatalf("iptalden sonra tick gelmemeli, %d geldi", ticks)
	}
	if got := c.PendingCount(); got != 0 {
		t.Fatalf("bekleyen gorev kalmamali, %d var", got)
	}
}

func TestManualClockCallbackCanSchedule(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	fired := false
	c.SetTimeout(10*time.Millisecond, func() {
		c.SetTimeout(10*time.Millisecond, func() { fired = true })
	})

	// Tek Advance icinde zincirlenen gorev de vadesi geldiyse kosmali.
	c.Advance(25 * time.Millisecond)
	if !fired {
		t.Fatal("zincirlenen gorev calismadi")
	}
}

func TestManualClockNowAdvances(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	c.Advance(90 * time.Second)
	if got := c.Now(); !got.Equal(start.Add(90 * time.Second)) {
		t.Fatalf("Now %v bekleniyordu, %v geldi", start.Add(90*time.Second), got)
	}
}
