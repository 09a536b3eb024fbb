// pkg/miclevel/miclevel_test.go
package miclevel

import (
	"testing"
	"time"

	"scrollwish.link/pkg/media"
	"scrollwish.link/pkg/sched"
)

func TestMonitorFiresOnceAboveThreshold(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	source := &media.FakeLevelSource{}
	capture := &media.FakeCapture{Source: source}

	fired := 0
	m := New(clock, capture, func() { fired++ })

	ok, err := m.Start()
	if err != nil || !ok {
		t.Fatalf("edinim basarili olmali, ok=%v err=%v", ok, err)
	}

	// Esik alti seviyede ornekleme devam eder.
	source.SetLevel(Threshold)
	clock.Advance(3 * sched.FrameInterval)
	if fired != 0 {
		t.Fatalf("esik asilmadan olay ateslenmemeli, %d kez ateslendi", fired)
	}

	// Esik ustu: tam bir kez ateslenir, akis kapanir, ornekleme durur.
	source.SetLevel(80)
	clock.Advance(sched.FrameInterval)
	if fired != 1 {
		t.Fatalf("tam bir kez ateslenmeli, %d oldu", fired)
	}
	if !source.Closed() {
		t.Fatal("ateslemeden sonra akis birakilmali")
	}
	if !m.Fired() {
		t.Fatal("Fired true olmali")
	}

	clock.Advance(10 * sched.FrameInterval)
	if fired != 1 {
		t.Fatalf("tekrar ateslenmemeli, %d oldu", fired)
	}
	if got := clock.PendingCount(); got != 0 {
		t.Fatalf("bekleyen kare kalmamali, %d var", got)
	}
}

func TestMonitorPermissionDeniedIsSoft(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	capture := &media.FakeCapture{Deny: true}

	m := New(clock, capture, func() { t.Fatal("izin reddinde olay ateslenmemeli") })

	ok, err := m.Start()
	if err != nil {
		t.Fatalf("izin reddi sert hata olmamali: %v", err)
	}
	if ok {
		t.Fatal("izin reddinde ok false olmali")
	}
}

func TestMonitorStopReleasesStream(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	source := &media.FakeLevelSource{}
	capture := &media.FakeCapture{Source: source}

	fired := 0
	m := New(clock, capture, func() { fired++ })
	if ok, _ := m.Start(); !ok {
		t.Fatal("edinim basarili olmali")
	}

	m.Stop()
	m.Stop() // tekrar cagri zararsiz

	if !source.Closed() {
		t.Fatal("Stop akisi birakmali")
	}

	// Durduktan sonra yuksek seviye bile olay uretmemeli.
	source.SetLevel(200)
	clock.Advance(5 * sched.FrameInterval)
	if fired != 0 {
		t.Fatalf("durdurulan monitor ateslenmemeli, %d oldu", fired)
	}
}
