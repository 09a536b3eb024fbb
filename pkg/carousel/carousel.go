// pkg/carousel/carousel.go
package carousel

import (
	"math"
	"sync"
	"time"

	"scrollwish.link/pkg/sched"
)

const (
	// AutoAdvanceInterval otomatik ilerleme aralığı.
	AutoAdvanceInterval = 3 * time.Second
	// SwipeThreshold sürükleme mesafesi × hız çarpımının eşiği.
	// |offset| * velocity bu değeri aşarsa bir adım ilerlenir/gerilenir.
	SwipeThreshold = 10000.0
)

// Direction son geçişin yönü; giriş animasyonunun hangi kenardan
// oynayacağını belirler.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// WrapIndex sayfa numarasını 0..count-1 aralığına indirger. Negatif sayfalar
// da sarar: page=-1, count=3 için 2 döner.
func WrapIndex(page, count int) int {
	if count <= 0 {
		return 0
	}
	return ((page % count) + count) % count
}

// Carousel (page, direction) ikilisini tutan döngüsel galeri makinesi.
// Sayfa sınırsız bir tamsayıdır; görünen indeks her okumada sarılır.
type Carousel struct {
	mu        sync.Mutex
	clock     sched.Scheduler
	count     int
	page      int
	direction Direction
	onChange  func(index int, dir Direction)
	timer     sched.Handle
	closed    bool
}

// New count görselli bir carousel kurar. onChange her sayfa değişiminde
// (otomatik veya manuel) sarılmış indeksle çağrılır.
func New(clock sched.Scheduler, count int, onChange func(index int, dir Direction)) *Carousel {
	return &Carousel{clock: clock, count: count, direction: Forward, onChange: onChange}
}

// Start otomatik ilerlemeyi başlatır.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rearmLocked()
}

// Close zamanlayıcıyı iptal eder; sahne terk edilirken çağrılmalıdır.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.disarmLocked()
}

// Index sarılmış görünen indeks.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return WrapIndex(c.page, c.count)
}

// Page ham (sarılmamış) sayfa değeri.
func (c *Carousel) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Direction son geçişin yönü.
func (c *Carousel) Direction() Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

// Advance bir adım ileri gider (manuel).
func (c *Carousel) Advance() { c.paginate(1) }

// Retreat bir adım geri gider (manuel).
func (c *Carousel) Retreat() { c.paginate(-1) }

// HandleSwipe sürükleme bırakıldığında çağrılır. offset sürükleme mesafesi
// (px), velocity işaretli hız (px/s; negatif sola). Mesafe ile hızın çarpımı
// eşiği aşmazsa sayfa değişmez.
func (c *Carousel) HandleSwipe(offset, velocity float64) {
	power := math.Abs(offset) * velocity
	switch {
	case power < -SwipeThreshold:
		c.paginate(1)
	case power > SwipeThreshold:
		c.paginate(-1)
	}
}

// GoToIndex nokta göstergesine tıklanınca hedef indekse işaretli delta ile
// sayfalanır; indeks ataması yapılmaz ki geçiş animasyonu yönü tutarlı kalsın.
func (c *Carousel) GoToIndex(target int) {
	c.mu.Lock()
	current := WrapIndex(c.page, c.count)
	c.mu.Unlock()
	c.paginate(target - current)
}

func (c *Carousel) paginate(delta int) {
	if delta == 0 {
		return
	}
	c.mu.Lock()
	if c.closed || c.count <= 0 {
		c.mu.Unlock()
		return
	}
	c.page += delta
	if delta > 0 {
		c.direction = Forward
	} else {
		c.direction = Backward
	}
	// Her sayfa değişiminde zamanlayıcı yeniden kurulur; üst üste binen
	// interval'ler ilerleme hızını katlayamaz.
	c.rearmLocked()
	index := WrapIndex(c.page, c.count)
	dir := c.direction
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(index, dir)
	}
}

func (c *Carousel) rearmLocked() {
	c.disarmLocked()
	if c.closed || c.count <= 1 {
		return
	}
	c.timer = c.clock.SetInterval(AutoAdvanceInterval, func() { c.paginate(1) })
}

func (c *Carousel) disarmLocked() {
	if c.timer != nil {
		c.timer.Cancel()
		c.timer = nil
	}
}
