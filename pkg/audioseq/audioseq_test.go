// pkg/audioseq/audioseq_test.go
package audioseq

import (
	"testing"

	"scrollwish.link/pkg/media"
)

func newPlayer(t *testing.T) (*SequentialPlayer, *media.FakeTrack, *media.FakeTrack) {
	t.Helper()
	factory := &media.FakeTrackFactory{}
	p := New(factory, "/intro.mp3", "/loop.mp3", 0.4)
	if len(factory.Tracks) != 2 {
		t.Fatalf("iki parca uretilmeliydi, %d var", len(factory.Tracks))
	}
	return p, factory.Tracks[0], factory.Tracks[1]
}

func TestHandoffMovesCurrentToLoop(t *testing.T) {
	p, intro, loop := newPlayer(t)
	defer p.Close()

	if err := p.Start(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if !intro.Playing() {
		t.Fatal("once intro calmali")
	}
	if p.Current() != media.Track(intro) {
		t.Fatal("aktif parca intro olmali")
	}

	intro.FireEnded()

	if p.Current() != media.Track(loop) {
		t.Fatal("devirden sonra aktif parca loop olmali")
	}
	if !loop.Playing() {
		t.Fatal("devirden sonra loop calmali")
	}

	// Devirden sonra mute aktif parcaya, yani loop'a gitmeli.
	p.SetMuted(true)
	if !loop.Muted() {
		t.Fatal("mute loop'a uygulanmali")
	}
	if intro.Muted() {
		t.Fatal("bitmis intro mute edilmemeli")
	}
}

func TestHandoffCarriesMuteAndVolume(t *testing.T) {
	p, intro, loop := newPlayer(t)
	defer p.Close()

	if err := p.Start(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	p.SetMuted(true)
	p.SetVolume(0.7)

	intro.FireEnded()

	if !loop.Muted() {
		t.Fatal("mute durumu devirde tasinmali")
	}
	if got := loop.Volume(); got != 0.7 {
		t.Fatalf("ses devirde tasinmali, %v geldi", got)
	}
	if !intro.Stopped() && intro.Playing() {
		t.Fatal("intro devirden sonra calmamali")
	}
}

func TestDoubleEndedSignalDoesNotDoubleStartLoop(t *testing.T) {
	p, intro, loop := newPlayer(t)
	defer p.Close()

	if err := p.Start(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	intro.FireEnded()
	intro.FireEnded()

	if got := loop.PlayCalls; got != 1 {
		t.Fatalf("loop tek kez baslamali, %d kez basladi", got)
	}
}

func TestLoopStopsAfterLimit(t *testing.T) {
	p, intro, loop := newPlayer(t)
	defer p.Close()

	if err := p.Start(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	intro.FireEnded() // 1. calis

	loop.FireEnded() // 2. calis
	loop.FireEnded() // 3. calis
	if got := loop.PlayCalls; got != 3 {
		t.Fatalf("uc calis bekleniyordu, %d oldu", got)
	}

	loop.FireEnded() // limit doldu, tekrar yok
	if got := loop.PlayCalls; got != 3 {
		t.Fatalf("limitten sonra tekrar baslamamali, %d cagri var", got)
	}
	if loop.Playing() {
		t.Fatal("limit dolunca loop susmali")
	}
}

func TestAutoplayBlockIsSwallowed(t *testing.T) {
	factory := &media.FakeTrackFactory{}
	p := New(factory, "/intro.mp3", "/loop.mp3", 0.4)
	defer p.Close()

	factory.Tracks[0].BlockAutoplay = true
	if err := p.Start(); err != nil {
		t.Fatalf("autoplay engeli hata olarak donmemeli: %v", err)
	}
	if factory.Tracks[0].Playing() {
		t.Fatal("engellenen parca calmamali")
	}

	// Kullanici jestinden sonra tekrar Start calismali.
	factory.Tracks[0].BlockAutoplay = false
	if err := p.Start(); err != nil {
		t.Fatalf("ikinci Start hatasiz olmali: %v", err)
	}
	if !factory.Tracks[0].Playing() {
		t.Fatal("ikinci Start intro'yu baslatmali")
	}
}

func TestDuckAndUnduck(t *testing.T) {
	p, intro, loop := newPlayer(t)
	defer p.Close()

	if err := p.Start(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	p.Duck(0.1)
	if got := intro.Volume(); got != 0.1 {
		t.Fatalf("duck aktif parcayi kismali, ses %v", got)
	}

	// Devir ducked durumdayken olursa loop da kisik baslamali.
	intro.FireEnded()
	if got := loop.Volume(); got != 0.1 {
		t.Fatalf("devirde duck korunmali, ses %v", got)
	}

	p.Unduck()
	if got := loop.Volume(); got != 0.4 {
		t.Fatalf("unduck eski sesi geri getirmeli, ses %v", got)
	}
}

func TestCloseStopsBothTracks(t *testing.T) {
	p, intro, loop := newPlayer(t)

	if err := p.Start(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	p.Close()
	p.Close() // tekrar cagri guvenli

	if !intro.Stopped() || !loop.Stopped() {
		t.Fatal("Close her iki parcayi da durdurmali")
	}
	if got := intro.StopCalls; got != 1 {
		t.Fatalf("tekrarlanan Close parcayi tekrar durdurmamali, %d cagri", got)
	}
}
