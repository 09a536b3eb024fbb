// pkg/viewer/birthdaycake.go
package viewer

import (
	"context"
	"errors"
	"sync"
	"time"

	"scrollwish.link/pkg/audioseq"
	"scrollwish.link/pkg/media"
	"scrollwish.link/pkg/miclevel"
	"scrollwish.link/pkg/sched"
)

// Birthday-Cake sahne sabitleri.
const (
	StagePrompt      = 0
	StageBlow        = 1
	StageCelebration = 2

	// BlowCountdownTicks stage 1'deki görünür geri sayımın adım sayısı.
	BlowCountdownTicks = 5

	blowCountdownInterval = time.Second

	// InitialMusicVolume arka plan müziğinin başlangıç sesi.
	InitialMusicVolume = 0.4

	// DuckedMusicVolume sesli mesaj çalarken arka planın indirildiği seviye.
	DuckedMusicVolume = 0.1

	// Kutlama parçalarının içerik URL vermediğinde düşülen varsayılanları.
	defaultIntroTrackURL = "/assets/audio/hbd-intro.mp3"
	defaultLoopTrackURL  = "/assets/audio/hbd-loop.mp3"
)

// BirthdayCakeViewer üç aşamalı kapılı açılış: 0 = istem, 1 = geri sayım /
// üfleme, 2 = kutlama. Stage 1 -> 2 geçişi üç bağımsız tetikleyicinin
// yarışıdır: geri sayımın bitmesi, mikrofon eşiği veya pastaya dokunma.
// Hangisi önce gelirse gelsin geçiş tam bir kez yaşanır.
type BirthdayCakeViewer struct {
	mu      sync.Mutex
	content CardContent
	vctx    Context

	stage     int
	countLeft int
	countdown sched.Handle

	mic          *miclevel.Monitor
	micAvailable bool

	player *audioseq.SequentialPlayer

	voice        media.Track
	voicePlaying bool

	response   *ResponsePayload
	submitting bool
	closed     bool
}

func NewBirthdayCakeViewer(content CardContent, vctx Context) *BirthdayCakeViewer {
	v := &BirthdayCakeViewer{
		content:   content,
		vctx:      vctx,
		stage:     StagePrompt,
		countLeft: BlowCountdownTicks,
		response:  vctx.Existing,
	}
	if content.AudioMessageURL != "" && vctx.Tracks != nil && !vctx.IsPreview {
		v.voice = vctx.Tracks.NewTrack(content.AudioMessageURL)
		v.voice.OnEnded(v.handleVoiceEnded)
	}
	return v
}

func (v *BirthdayCakeViewer) ContentLayout() Layout { return LayoutBirthdayCake }

// Stage 0, 1 veya 2.
func (v *BirthdayCakeViewer) Stage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stage
}

// CountdownRemaining stage 1 geri sayımında kalan adım.
func (v *BirthdayCakeViewer) CountdownRemaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.countLeft
}

// MicAvailable mikrofon edinimi başarılı oldu mu? İzin reddi yalnızca
// zamanlayıcı yolunu bırakır, hata değildir.
func (v *BirthdayCakeViewer) MicAvailable() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.micAvailable
}

// Tap tek dokunma aksiyonu: stage 0'da geri sayımı başlatır, stage 1'de
// mumları elle söndürür, stage 2'de no-op'tur.
func (v *BirthdayCakeViewer) Tap() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	switch v.stage {
	case StagePrompt:
		v.stage = StageBlow
		v.countLeft = BlowCountdownTicks
		v.countdown = v.vctx.Clock.SetInterval(blowCountdownInterval, v.countdownTick)
		startMic := !v.vctx.IsPreview
		v.mu.Unlock()
		if startMic {
			v.startMic()
		}
	case StageBlow:
		v.blowOutLocked()
	default:
		v.mu.Unlock()
	}
}

// startMic mikrofonu edinip izlemeyi başlatır. Edinim beklerken geri sayım
// akmaya devam eder; izin istemi hiçbir sahne mantığını bloklamaz.
func (v *BirthdayCakeViewer) startMic() {
	mon := miclevel.New(v.vctx.Clock, v.vctx.Capture, v.handleMicLoud)
	ok, err := mon.Start()

	v.mu.Lock()
	if v.closed || v.stage != StageBlow {
		// İzin istemi sürerken sahne değişmiş olabilir; akışı hemen bırak.
		v.mu.Unlock()
		mon.Stop()
		return
	}
	v.mic = mon
	v.micAvailable = ok && err == nil
	v.mu.Unlock()
}

func (v *BirthdayCakeViewer) countdownTick() {
	v.mu.Lock()
	if v.stage != StageBlow || v.closed {
		v.mu.Unlock()
		return
	}
	v.countLeft--
	if v.countLeft > 0 {
		v.mu.Unlock()
		return
	}
	v.countLeft = 0
	v.blowOutLocked()
}

func (v *BirthdayCakeViewer) handleMicLoud() {
	v.mu.Lock()
	if v.stage != StageBlow || v.closed {
		v.mu.Unlock()
		return
	}
	v.blowOutLocked()
}

// blowOutLocked stage 2 geçişinin tek giriş noktasıdır; kilit tutulurken
// çağrılır ve bırakılmış olarak döner. Stage kontrolü kilit altında
// yapıldığı için yarışan ikinci tetikleyici aynı tick'te bile no-op olur:
// kutlama müziği asla iki kez başlamaz.
func (v *BirthdayCakeViewer) blowOutLocked() {
	if v.stage == StageCelebration {
		v.mu.Unlock()
		return
	}
	v.stage = StageCelebration
	if v.countdown != nil {
		v.countdown.Cancel()
		v.countdown = nil
	}
	mic := v.mic
	v.mic = nil

	introURL := defaultIntroTrackURL
	loopURL := v.content.BackgroundMusicURL
	if loopURL == "" {
		loopURL = defaultLoopTrackURL
	}
	var player *audioseq.SequentialPlayer
	if v.vctx.Tracks != nil && !v.vctx.IsPreview {
		player = audioseq.New(v.vctx.Tracks, introURL, loopURL, InitialMusicVolume)
		v.player = player
	}
	v.mu.Unlock()

	// Mikrofon hiç ateşlememiş olsa da koşulsuz durdurulur.
	if mic != nil {
		mic.Stop()
	}
	if player != nil {
		// Autoplay reddi sessizce yutulur; dokunma zaten yeni gerçekleşti.
		_ = player.Start()
	}
}

// ToggleMute stage 2'de aktif arka plan parçasını (intro ya da loop,
// hangisi çalıyorsa) susturur veya açar.
func (v *BirthdayCakeViewer) ToggleMute() {
	v.mu.Lock()
	player := v.player
	active := v.stage == StageCelebration
	v.mu.Unlock()
	if !active || player == nil {
		return
	}
	player.SetMuted(!player.Muted())
}

// Muted arka plan müziği susturulmuş mu?
func (v *BirthdayCakeViewer) Muted() bool {
	v.mu.Lock()
	player := v.player
	v.mu.Unlock()
	if player == nil {
		return false
	}
	return player.Muted()
}

// PlayVoice sesli mesajı başlatır ve arka plan müziğini kısar.
func (v *BirthdayCakeViewer) PlayVoice() {
	v.mu.Lock()
	if v.voice == nil || v.voicePlaying || v.closed {
		v.mu.Unlock()
		return
	}
	v.voicePlaying = true
	voice := v.voice
	player := v.player
	v.mu.Unlock()

	if player != nil {
		player.Duck(DuckedMusicVolume)
	}
	if err := voice.Play(); err != nil {
		v.mu.Lock()
		v.voicePlaying = false
		v.mu.Unlock()
		if player != nil {
			player.Unduck()
		}
	}
}

// PauseVoice sesli mesajı durdurur ve arka planı eski seviyesine döndürür.
func (v *BirthdayCakeViewer) PauseVoice() {
	v.mu.Lock()
	if !v.voicePlaying {
		v.mu.Unlock()
		return
	}
	v.voicePlaying = false
	voice := v.voice
	player := v.player
	v.mu.Unlock()

	voice.Pause()
	if player != nil {
		player.Unduck()
	}
}

func (v *BirthdayCakeViewer) handleVoiceEnded() {
	v.mu.Lock()
	if !v.voicePlaying {
		v.mu.Unlock()
		return
	}
	v.voicePlaying = false
	player := v.player
	v.mu.Unlock()

	if player != nil {
		player.Unduck()
	}
}

// VoicePlaying sesli mesaj şu an çalıyor mu?
func (v *BirthdayCakeViewer) VoicePlaying() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.voicePlaying
}

// GiftSceneVisible timeline'daki hediye sahnesiyle aynı gating kuralı.
func (v *BirthdayCakeViewer) GiftSceneVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.vctx.IsOwner && v.response == nil {
		return false
	}
	return true
}

// GiftFormOpen yanıt yoksa form, varsa salt okunur özet.
func (v *BirthdayCakeViewer) GiftFormOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.response == nil && !v.vctx.IsOwner
}

// SavedResponse kaydedilmiş hediye tercihi.
func (v *BirthdayCakeViewer) SavedResponse() *ResponsePayload {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.response
}

// SubmitGift yanıtı kalıcılaştırır; hata dönerse form açık kalır.
func (v *BirthdayCakeViewer) SubmitGift(ctx context.Context, wants, dontWants string) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return errors.New("gorunum kapatildi")
	}
	if v.submitting {
		v.mu.Unlock()
		return errors.New("kayit zaten surede")
	}
	payload := ResponsePayload{
		GiftWants:     wants,
		GiftDontWants: dontWants,
		RespondedAt:   v.vctx.Clock.Now(),
	}
	if err := payload.Validate(LayoutBirthdayCake); err != nil {
		v.mu.Unlock()
		return err
	}
	v.submitting = true
	save := v.vctx.SaveResponse
	v.mu.Unlock()

	err := save(ctx, payload)

	v.mu.Lock()
	v.submitting = false
	if err == nil {
		v.response = &payload
	}
	v.mu.Unlock()
	return err
}

// Close her aşamadan güvenli teardown: geri sayım, mikrofon, müzik ve
// sesli mesaj hepsi bırakılır.
func (v *BirthdayCakeViewer) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	countdownHandle := v.countdown
	v.countdown = nil
	mic := v.mic
	v.mic = nil
	player := v.player
	voice := v.voice
	v.mu.Unlock()

	if countdownHandle != nil {
		countdownHandle.Cancel()
	}
	if mic != nil {
		mic.Stop()
	}
	if player != nil {
		player.Close()
	}
	if voice != nil {
		voice.Stop()
	}
}
