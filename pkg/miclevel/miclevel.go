// pkg/miclevel/miclevel.go
package miclevel

import (
	"errors"
	"sync"

	"scrollwish.link/pkg/media"
	"scrollwish.link/pkg/sched"
)

// Threshold 0-255 ölçeğinde ortalama genlik eşiği; üzeri "üfleme" sayılır.
const Threshold = 35.0

// Monitor canlı mikrofon akışını kare cadansında örnekler ve eşik ilk kez
// aşıldığında onLoud'u tam bir kez çağırır. Tetiklendiğinde veya Stop
// çağrıldığında örnekleme durur ve akış serbest bırakılır; sahne bittikten
// sonra örneklemeye devam etmek kaynak sızıntısıdır ve ölü bir state'e
// event göndermek demektir.
type Monitor struct {
	mu      sync.Mutex
	clock   sched.Scheduler
	capture media.Capture
	onLoud  func()

	source media.LevelSource
	frame  sched.Handle
	fired  bool
	active bool
}

// New monitor kurar; Start çağrılana kadar mikrofon edinilmez.
func New(clock sched.Scheduler, capture media.Capture, onLoud func()) *Monitor {
	return &Monitor{clock: clock, capture: capture, onLoud: onLoud}
}

// Start mikrofonu edinir ve örneklemeyi başlatır. İzin reddi sert hata
// değildir: false döner, çağıran taraf yalnızca zamanlayıcı yoluna düşer.
func (m *Monitor) Start() (bool, error) {
	source, err := m.capture.AcquireMicrophone()
	if err != nil {
		if errors.Is(err, media.ErrPermissionDenied) {
			return false, nil
		}
		return false, err
	}

	m.mu.Lock()
	if m.active || m.fired {
		// İkinci Start anlamsız; yeni edinilen akışı hemen bırak.
		m.mu.Unlock()
		source.Close()
		return false, nil
	}
	m.source = source
	m.active = true
	m.frame = m.clock.RequestFrame(m.sample)
	m.mu.Unlock()
	return true, nil
}

// Stop örneklemeyi durdurur ve akışı bırakır. Tetiklenmiş olsun olmasın
// her çıkış yolunda çağrılabilir; tekrarlanan çağrılar no-op'tur.
func (m *Monitor) Stop() {
	m.mu.Lock()
	source := m.source
	frame := m.frame
	m.source = nil
	m.frame = nil
	m.active = false
	m.mu.Unlock()

	if frame != nil {
		frame.Cancel()
	}
	if source != nil {
		source.Close()
	}
}

// Fired eşik olayı ateşlendi mi?
func (m *Monitor) Fired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fired
}

func (m *Monitor) sample() {
	m.mu.Lock()
	if !m.active || m.fired || m.source == nil {
		m.mu.Unlock()
		return
	}
	level := m.source.Level()
	if level > Threshold {
		m.fired = true
		m.active = false
		source := m.source
		m.source = nil
		m.frame = nil
		fn := m.onLoud
		m.mu.Unlock()

		source.Close()
		if fn != nil {
			fn()
		}
		return
	}
	// Eşik altı: bir sonraki kareyi planla.
	m.frame = m.clock.RequestFrame(m.sample)
	m.mu.Unlock()
}
