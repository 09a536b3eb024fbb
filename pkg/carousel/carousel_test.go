// pkg/carousel/carousel_test.go
package carousel

import (
	"testing"
	"time"

	"scrollwish.link/pkg/sched"
)

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		page, count, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 0},
		{7, 3, 1},
		{-1, 3, 2},
		{-4, 3, 2},
		{-3, 3, 0},
		{5, 1, 0},
	}
	for _, c := range cases {
		if got := WrapIndex(c.page, c.count); got != c.want {
			t.Errorf("WrapIndex(%d, %d) = %d, beklenen %d", c.page, c.count, got, c.want)
		}
	}
}

func TestCarouselAutoAdvance(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	c := New(clock, 3, nil)
	c.Start()
	defer c.Close()

	clock.Advance(AutoAdvanceInterval)
	if got := c.Index(); got != 1 {
		t.Fatalf("ilk otomatik ilerleme sonrasi index 1 bekleniyordu, %d geldi", got)
	}

	clock.Advance(2 * AutoAdvanceInterval)
	if got := c.Index(); got != 0 {
		t.Fatalf("uc ilerleme sonrasi sarmali, index 0 bekleniyordu, %d geldi", got)
	}
}

func TestCarouselManualNavRearmsTimer(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	c := New(clock, 4, nil)
	c.Start()
	defer c.Close()

	// Otomatik ilerlemeye az kala elle ilerle; sayac sifirlanmali,
	// hemen ardindan ikinci bir otomatik adim gelmemeli.
	clock.Advance(AutoAdvanceInterval - time.Millisecond)
	c.Advance()
	if got := c.Index(); got != 1 {
		t.Fatalf("elle ilerleme sonrasi index 1 bekleniyordu, %d geldi", got)
	}

	clock.Advance(2 * time.Millisecond)
	if got := c.Index(); got != 1 {
		t.Fatalf("sayac sifirlanmali, index hala 1 olmali, %d geldi", got)
	}

	clock.Advance(AutoAdvanceInterval)
	if got := c.Index(); got != 2 {
		t.Fatalf("tam aralik sonrasi index 2 bekleniyordu, %d geldi", got)
	}
}

func TestCarouselSwipeThreshold(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	c := New(clock, 3, nil)
	defer c.Close()

	// Esik alti: sayfa degismez.
	c.HandleSwipe(-50, -100)
	if got := c.Index(); got != 0 {
		t.Fatalf("esik alti kaydirma sayfayi degistirmemeli, index %d", got)
	}

	// Sola guclu kaydirma ileri goturur.
	c.HandleSwipe(-200, -80)
	if got := c.Index(); got != 1 {
		t.Fatalf("ileri kaydirma sonrasi index 1 bekleniyordu, %d geldi", got)
	}
	if c.Direction() != Forward {
		t.Fatal("yon Forward olmali")
	}

	// Saga guclu kaydirma geri goturur.
	c.HandleSwipe(200, 80)
	if got := c.Index(); got != 0 {
		t.Fatalf("geri kaydirma sonrasi index 0 bekleniyordu, %d geldi", got)
	}
	if c.Direction() != Backward {
		t.Fatal("yon Backward olmali")
	}
}

func TestCarouselGoToIndexUsesSignedDelta(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))

	var lastDir Direction
	c := New(clock, 5, func(index int, dir Direction) { lastDir = dir })
	defer c.Close()

	c.GoToIndex(3)
	if got := c.Index(); got != 3 {
		t.Fatalf("hedef index 3 bekleniyordu, %d geldi", got)
	}
	if lastDir != Forward {
		t.Fatal("ileri atlama Forward yonunde olmali")
	}

	c.GoToIndex(1)
	if got := c.Index(); got != 1 {
		t.Fatalf("hedef index 1 bekleniyordu, %d geldi", got)
	}
	if lastDir != Backward {
		t.Fatal("geri atlama Backward yonunde olmali")
	}
}

func TestCarouselCloseCancelsTimer(t *testing.T) {
	clock := sched.NewManualClock(time.Unix(0, 0))
	c := New(clock, 3, nil)
	c.Start()
	c.Close()

	clock.Advance(10 * AutoAdvanceInterval)
	if got := c.Index(); got != 0 {
		t.Fatalf("kapali karusel ilerlememeli, index %d", got)
	}
	if got := clock.PendingCount(); got != 0 {
		t.Fatalf("kapali karusel zamanlayici birakmamali, %d bekliyor", got)
	}
}
