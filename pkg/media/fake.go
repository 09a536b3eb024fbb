// pkg/media/fake.go
package media

import "sync"

// Bu dosyadaki sahte implementasyonlar hem testlerde hem de medya API'si
// olmayan host ortamlarında (ör. sunucu tarafı render) kullanılır.

// FakeTrack Track arayüzünün bellek içi hali. Süre ve autoplay davranışı
// testten kontrol edilir.
type FakeTrack struct {
	mu sync.Mutex

	URL           string
	BlockAutoplay bool // true ise ilk Play ErrAutoplayBlocked döndürür

	playing    bool
	stopped    bool
	volume     float64
	muted      bool
	position   int // SeekStart sayacı değil; 0=başta
	PlayCalls  int
	StopCalls  int
	endedFuncs []func()
}

func NewFakeTrack(url string) *FakeTrack {
	return &FakeTrack{URL: url, volume: 1}
}

func (t *FakeTrack) Play() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.PlayCalls++
	if t.BlockAutoplay {
		return ErrAutoplayBlocked
	}
	if t.stopped {
		return nil
	}
	t.playing = true
	return nil
}

func (t *FakeTrack) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = false
}

func (t *FakeTrack) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.StopCalls++
	t.playing = false
	t.stopped = true
}

func (t *FakeTrack) SeekStart() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = 0
}

func (t *FakeTrack) SetVolume(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.volume = v
}

func (t *FakeTrack) Volume() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.volume
}

func (t *FakeTrack) SetMuted(m bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.muted = m
}

func (t *FakeTrack) Muted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.muted
}

func (t *FakeTrack) OnEnded(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endedFuncs = append(t.endedFuncs, fn)
}

// FireEnded parçanın doğal bitişini simüle eder.
func (t *FakeTrack) FireEnded() {
	t.mu.Lock()
	t.playing = false
	fns := append([]func(){}, t.endedFuncs...)
	t.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Playing parça şu anda çalıyor mu?
func (t *FakeTrack) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Stopped Stop çağrıldı mı?
func (t *FakeTrack) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// FakeTrackFactory üretilen tüm parçaları URL sırasıyla kaydeder.
type FakeTrackFactory struct {
	mu     sync.Mutex
	Tracks []*FakeTrack
}

func (f *FakeTrackFactory) NewTrack(url string) Track {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := NewFakeTrack(url)
	f.Tracks = append(f.Tracks, t)
	return t
}

// FakeLevelSource seviye değeri testten ayarlanan mikrofon kaynağı.
type FakeLevelSource struct {
	mu       sync.Mutex
	level    float64
	closed   bool
	CloseFns []func()
}

func (s *FakeLevelSource) SetLevel(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = v
}

func (s *FakeLevelSource) Level() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

func (s *FakeLevelSource) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	fns := append([]func(){}, s.CloseFns...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *FakeLevelSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// FakeCapture izin davranışı ayarlanabilir mikrofon portu.
type FakeCapture struct {
	Deny   bool
	Source *FakeLevelSource
}

func (c *FakeCapture) AcquireMicrophone() (LevelSource, error) {
	if c.Deny {
		return nil, ErrPermissionDenied
	}
	if c.Source == nil {
		c.Source = &FakeLevelSource{}
	}
	return c.Source, nil
}

// NoCapture medya yakalama desteği olmayan ortam (ör. sunucu tarafı render).
type NoCapture struct{}

func (NoCapture) AcquireMicrophone() (LevelSource, error) {
	return nil, ErrPermissionDenied
}
