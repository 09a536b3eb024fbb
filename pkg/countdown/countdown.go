// pkg/countdown/countdown.go
package countdown

import (
	"sync"
	"time"

	"scrollwish.link/pkg/sched"
)

// Remaining hedefe kalan süreyi gün/saat/dakika/saniye olarak taşır.
// Hedef geçildiyse bütün alanlar sıfırdır, asla negatif olmaz.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero hedefin geçtiğini (veya tam o anda olduğumuzu) söyler.
func (r Remaining) IsZero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

// Until target ile now arasındaki kalan süreyi ardışık tam bölmelerle hesaplar.
func Until(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{}
	}
	ms := diff.Milliseconds()
	return Remaining{
		Days:    int(ms / (1000 * 60 * 60 * 24)),
		Hours:   int((ms / (1000 * 60 * 60)) % 24),
		Minutes: int((ms / 1000 / 60) % 60),
		Seconds: int((ms / 1000) % 60),
	}
}

// ParseTarget tarih (YYYY-MM-DD) ve saat (HH:MM) girdilerini yerel saat
// diliminde tek bir ana birleştirir. Saat boşsa 00:00 varsayılır.
func ParseTarget(date, clock string, loc *time.Location) (time.Time, error) {
	if clock == "" {
		clock = "00:00"
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}

// Tracker saniyede bir kalan süreyi yeniden hesaplayan sayaç. Tarih/saat
// girdileri yaşam süresi içinde değişirse hedef yeniden türetilir; eski
// hedef üzerine kapanma (stale closure) olmaz.
type Tracker struct {
	mu     sync.Mutex
	clock  sched.Scheduler
	loc    *time.Location
	date   string
	time   string
	target time.Time
	onTick func(Remaining)
	handle sched.Handle
}

// NewTracker verilen tarih/saat için sayaç kurar. onTick her saniye ve
// Start anında bir kez çağrılır.
func NewTracker(clock sched.Scheduler, date, clockTime string, onTick func(Remaining)) *Tracker {
	t := &Tracker{clock: clock, loc: time.Local, onTick: onTick}
	t.SetTarget(date, clockTime)
	return t
}

// SetTarget tarih/saat girdilerini günceller ve hedefi yeniden türetir.
func (t *Tracker) SetTarget(date, clockTime string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.date = date
	t.time = clockTime
	target, err := ParseTarget(date, clockTime, t.loc)
	if err != nil {
		// Bozuk girdi: hedefi "geçmiş" kabul et, sayaç sıfırda kalır.
		target = time.Time{}
	}
	t.target = target
}

// Start saniyelik tazelemeyi başlatır. Tekrar çağrılırsa önceki interval
// iptal edilir.
func (t *Tracker) Start() {
	t.Stop()
	t.fire()
	t.mu.Lock()
	t.handle = t.clock.SetInterval(time.Second, t.fire)
	t.mu.Unlock()
}

// Stop interval'i iptal eder; her çıkış yolunda çağrılmalıdır.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
}

// Current kalan süreyi anlık hesaplar.
func (t *Tracker) Current() Remaining {
	t.mu.Lock()
	target := t.target
	t.mu.Unlock()
	return Until(target, t.clock.Now())
}

func (t *Tracker) fire() {
	if t.onTick != nil {
		t.onTick(t.Current())
	}
}
