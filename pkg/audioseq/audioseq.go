// pkg/audioseq/audioseq.go
package audioseq

import (
	"errors"
	"sync"

	"scrollwish.link/pkg/media"
)

// DefaultLoopLimit döngü parçasının toplam kaç kez çalacağı.
const DefaultLoopLimit = 3

// SequentialPlayer önce intro parçasını, bitince döngü parçasını çalar.
// Ses/mute durumu devirde (handoff) korunur; döngü parçası en fazla
// LoopLimit kez baştan çalar, sonra susar.
//
// "Aktif parça" referansı tek doğruluk kaynağıdır: mute, ses ve ducking
// hangi parça çalıyorsa ona uygulanır ve devirde yeniden atanır.
type SequentialPlayer struct {
	mu sync.Mutex

	intro media.Track
	loop  media.Track

	current   media.Track // şu an mantıksal olarak aktif parça
	loopLimit int
	loopCount int
	handedOff bool // intro "ended" sinyalinin ikinci kez işlenmesini önler
	closed    bool

	volume float64
	ducked bool
	duckTo float64
}

// New intro ve loop URL'lerinden oynatıcı kurar. volume 0..1 başlangıç sesi.
func New(factory media.TrackFactory, introURL, loopURL string, volume float64) *SequentialPlayer {
	p := &SequentialPlayer{
		intro:     factory.NewTrack(introURL),
		loop:      factory.NewTrack(loopURL),
		loopLimit: DefaultLoopLimit,
		volume:    volume,
	}
	p.current = p.intro
	p.intro.SetVolume(volume)
	p.loop.SetVolume(volume)

	p.intro.OnEnded(p.handleIntroEnded)
	p.loop.OnEnded(p.handleLoopEnded)
	return p
}

// Start oynatmayı başlatır. Autoplay engeli ölümcül değildir: oynatma
// başlamaz, bir sonraki kullanıcı hareketi Start'ı tekrar çağırabilir.
func (p *SequentialPlayer) Start() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	track := p.current
	p.mu.Unlock()

	if err := track.Play(); err != nil {
		if errors.Is(err, media.ErrAutoplayBlocked) {
			return nil // sessizce yut; log host tarafında
		}
		return err
	}
	return nil
}

// handleIntroEnded intro→loop devri. Mute/ses durumu intro'dan kopyalanır,
// aktif parça referansı döngüye çevrilir. Sinyal iki kez gözlenirse ikincisi
// no-op'tur (savunmacı idempotens).
func (p *SequentialPlayer) handleIntroEnded() {
	p.mu.Lock()
	if p.closed || p.handedOff {
		p.mu.Unlock()
		return
	}
	p.handedOff = true
	p.loop.SetMuted(p.intro.Muted())
	p.loop.SetVolume(p.intro.Volume())
	p.current = p.loop
	p.loopCount = 1
	loop := p.loop
	p.mu.Unlock()

	_ = loop.Play() // autoplay engeli yutularak geçilir
}

// handleLoopEnded döngü parçası her bittiğinde sayacı ilerletir; limit
// dolmadıysa baştan çalar.
func (p *SequentialPlayer) handleLoopEnded() {
	p.mu.Lock()
	if p.closed || p.loopCount >= p.loopLimit {
		p.mu.Unlock()
		return
	}
	p.loopCount++
	loop := p.loop
	p.mu.Unlock()

	loop.SeekStart()
	_ = loop.Play()
}

// Current aktif parçayı döndürür (test ve mute senkronu için).
func (p *SequentialPlayer) Current() media.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// SetMuted aktif parçayı susturur/açar.
func (p *SequentialPlayer) SetMuted(m bool) {
	p.mu.Lock()
	track := p.current
	p.mu.Unlock()
	track.SetMuted(m)
}

// Muted aktif parçanın mute durumu.
func (p *SequentialPlayer) Muted() bool {
	p.mu.Lock()
	track := p.current
	p.mu.Unlock()
	return track.Muted()
}

// SetVolume aktif parçanın sesini ayarlar ve taban sesi günceller.
func (p *SequentialPlayer) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	track := p.current
	ducked := p.ducked
	duckTo := p.duckTo
	p.mu.Unlock()
	if ducked {
		track.SetVolume(duckTo)
		return
	}
	track.SetVolume(v)
}

// Duck başka bir ses kaynağı (sesli mesaj) çalarken arka planı kısar.
func (p *SequentialPlayer) Duck(to float64) {
	p.mu.Lock()
	p.ducked = true
	p.duckTo = to
	track := p.current
	p.mu.Unlock()
	track.SetVolume(to)
}

// Unduck ducking'i kaldırır ve taban sesi geri yükler.
func (p *SequentialPlayer) Unduck() {
	p.mu.Lock()
	p.ducked = false
	track := p.current
	v := p.volume
	p.mu.Unlock()
	track.SetVolume(v)
}

// Close her iki parçayı da durdurur ve bırakır; hangisi aktifse fark etmez.
// Her çıkış yolunda çağrılmalıdır, birden fazla çağrı zararsızdır.
func (p *SequentialPlayer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	intro, loop := p.intro, p.loop
	p.mu.Unlock()

	intro.Stop()
	loop.Stop()
}
