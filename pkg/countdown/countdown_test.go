// pkg/countdown/countdown_test.go
package countdown

import (
	"testing"
	"time"

	"scrollwish.link/pkg/sched"
)

func TestUntilClampsToZeroAfterTarget(t *testing.T) {
	target := time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)

	cases := []time.Time{
		target,
		target.Add(time.Second),
		target.Add(400 * 24 * time.Hour),
	}
	for _, now := range cases {
		got := Until(target, now)
		if !got.IsZero() {
			t.Errorf("now=%v icin sifir bekleniyordu, %+v geldi", now, got)
		}
	}
}

func TestUntilFieldRanges(t *testing.T) {
	target := time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		before time.Duration
		want   Remaining
	}{
		{time.Second, Remaining{Seconds: 1}},
		{61 * time.Second, Remaining{Minutes: 1, Seconds: 1}},
		{25 * time.Hour, Remaining{Days: 1, Hours: 1}},
		{72*time.Hour + 90*time.Minute + 5*time.Second, Remaining{Days: 3, Hours: 1, Minutes: 30, Seconds: 5}},
	}
	for _, c := range cases {
		got := Until(target, target.Add(-c.before))
		if got != c.want {
			t.Errorf("kala=%v icin %+v bekleniyordu, %+v geldi", c.before, c.want, got)
		}
		if got.Hours < 0 || got.Hours > 23 || got.Minutes < 0 || got.Minutes > 59 || got.Seconds < 0 || got.Seconds > 59 {
			t.Errorf("alan araliklari disinda: %+v", got)
		}
	}
}

func TestParseTargetDefaultsMidnight(t *testing.T) {
	got, err := ParseTarget("2026-06-20", "", time.UTC)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	want := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("%v bekleniyordu, %v geldi", want, got)
	}
}

func TestParseTargetRejectsGarbage(t *testing.T) {
	if _, err := ParseTarget("yakinda", "18:00", time.UTC); err == nil {
		t.Fatal("bozuk tarih hata dondurmeli")
	}
}

func TestTrackerTicksAndRetargets(t *testing.T) {
	start := time.Date(2026, 6, 19, 23, 59, 58, 0, time.Local)
	clock := sched.NewManualClock(start)

	var last Remaining
	tr := NewTracker(clock, "2026-06-20", "00:00", func(r Remaining) { last = r })
	tr.Start()
	defer tr.Stop()

	if last != (Remaining{Seconds: 2}) {
		t.Fatalf("baslangicta 2sn bekleniyordu, %+v geldi", last)
	}

	clock.Advance(3 * time.Second)
	if !last.IsZero() {
		t.Fatalf("hedef gectikten sonra sifir bekleniyordu, %+v geldi", last)
	}

	// Girdi degisince hedef yeniden turetilmeli; eski hedefe kapanma yok.
	tr.SetTarget("2026-06-21", "00:00")
	if got := tr.Current(); got.IsZero() {
		t.Fatal("yeni hedef gelecekte, sayac sifir olmamali")
	}
}

func TestTrackerBadInputReadsZero(t *testing.T) {
	clock := sched.NewManualClock(time.Now())
	tr := NewTracker(clock, "", "", nil)
	defer tr.Stop()

	if got := tr.Current(); !got.IsZero() {
		t.Fatalf("bozuk girdi sifir okumali, %+v geldi", got)
	}
}
