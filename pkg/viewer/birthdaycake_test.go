// pkg/viewer/birthdaycake_test.go
package viewer

import (
	"context"
	"testing"
	"time"

	"scrollwish.link/pkg/media"
)

func birthdayContent() CardContent {
	return CardContent{
		Layout:             LayoutBirthdayCake,
		RecipientName:      "Rohan",
		Images:             []string{"/rohan.jpg"},
		BackgroundMusicURL: "/music/party.mp3",
	}
}

func newBirthday(t *testing.T, env *testEnv) *BirthdayCakeViewer {
	t.Helper()
	raw, err := New(birthdayContent(), env.context(390))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	return raw.(*BirthdayCakeViewer)
}

// celebrationTracks stage 2'de kurulan intro/loop ciftini bulur.
func celebrationTracks(t *testing.T, env *testEnv) (intro, loop *media.FakeTrack) {
	t.Helper()
	n := len(env.factory.Tracks)
	if n < 2 {
		t.Fatalf("kutlama parcalari uretilmeliydi, %d parca var", n)
	}
	return env.factory.Tracks[n-2], env.factory.Tracks[n-1]
}

func TestBirthdayCountdownPathReachesCelebration(t *testing.T) {
	env := newTestEnv()
	v := newBirthday(t, env)
	defer v.Close()

	if got := v.Stage(); got != StagePrompt {
		t.Fatalf("baslangic stage 0 olmali, %d geldi", got)
	}

	v.Tap()
	if got := v.Stage(); got != StageBlow {
		t.Fatalf("ilk dokunus stage 1'e goturmeli, %d geldi", got)
	}
	if !v.MicAvailable() {
		t.Fatal("izin verilen ortamda mikrofon kullanilabilir olmali")
	}

	env.clock.Advance(3 * time.Second)
	if got := v.CountdownRemaining(); got != 2 {
		t.Fatalf("3 saniye sonra 2 adim kalmali, %d geldi", got)
	}
	if got := v.Stage(); got != StageBlow {
		t.Fatalf("geri sayim bitmeden stage degismemeli, %d geldi", got)
	}

	env.clock.Advance(2 * time.Second)
	if got := v.Stage(); got != StageCelebration {
		t.Fatalf("geri sayim bitince stage 2 bekleniyordu, %d geldi", got)
	}

	intro, _ := celebrationTracks(t, env)
	if got := intro.PlayCalls; got != 1 {
		t.Fatalf("kutlama muzigi tam bir kez baslamali, %d cagri var", got)
	}
}

func TestBirthdayMicPathStopsSampling(t *testing.T) {
	env := newTestEnv()
	v := newBirthday(t, env)
	defer v.Close()

	v.Tap()
	source := env.capture.Source
	if source == nil {
		t.Fatal("mikrofon edinilmeliydi")
	}

	// Ufleme: esik ustu seviye bir kare icinde stage 2'ye tasir.
	source.SetLevel(120)
	env.clock.Advance(20 * time.Millisecond)
	if got := v.Stage(); got != StageCelebration {
		t.Fatalf("mikrofon tetikleyicisi stage 2'ye goturmeli, %d geldi", got)
	}
	if !source.Closed() {
		t.Fatal("stage 2'de mikrofon akisi birakilmali")
	}
}

func TestBirthdayMicStoppedEvenIfNeverFired(t *testing.T) {
	env := newTestEnv()
	v := newBirthday(t, env)
	defer v.Close()

	v.Tap()
	source := env.capture.Source

	// Elle sondurme kazaninca mikrofon hic ateslememis olsa da durur.
	v.Tap()
	if got := v.Stage(); got != StageCelebration {
		t.Fatalf("pastaya dokunma stage 2'ye goturmeli, %d geldi", got)
	}
	if !source.Closed() {
		t.Fatal("mikrofon kosulsuz durdurulmali")
	}
}

func TestBirthdayRaceIsIdempotent(t *testing.T) {
	env := newTestEnv()
	v := newBirthday(t, env)
	defer v.Close()

	v.Tap()
	source := env.capture.Source

	// Dokunma ile ayni tick'te gelen mikrofon olayi ikinci bir stage 2
	// girisi veya ikinci bir muzik baslangici uretmemeli.
	v.Tap()
	source.SetLevel(200)
	env.clock.Advance(20 * time.Millisecond)
	env.clock.Advance(10 * time.Second) // geri sayim da olse tekrar yok

	if got := v.Stage(); got != StageCelebration {
		t.Fatalf("stage 2 bekleniyordu, %d geldi", got)
	}
	intro, loop := celebrationTracks(t, env)
	if got := intro.PlayCalls; got != 1 {
		t.Fatalf("kutlama muzigi tek kez baslamali, intro %d kez basladi", got)
	}
	if got := loop.PlayCalls; got != 0 {
		t.Fatalf("loop devirden once baslamamali, %d cagri var", got)
	}
	// Yalnizca kutlama cifti uretilmis olmali; ikinci bir kurulum yok.
	if got := len(env.factory.Tracks); got != 2 {
		t.Fatalf("iki parca bekleniyordu, %d var", got)
	}
}

func TestBirthdayPermissionDeniedFallsBackToTimer(t *testing.T) {
	env := newTestEnv()
	env.capture.Deny = true
	v := newBirthday(t, env)
	defer v.Close()

	v.Tap()
	if v.MicAvailable() {
		t.Fatal("izin reddinde mikrofon kullanilamaz olmali")
	}
	if got := v.Stage(); got != StageBlow {
		t.Fatalf("izin reddi geri sayimi engellememeli, %d geldi", got)
	}

	env.clock.Advance(5 * time.Second)
	if got := v.Stage(); got != StageCelebration {
		t.Fatalf("zamanlayici yolu tek basina yeterli olmali, %d geldi", got)
	}
}

func TestBirthdayMuteFollowsActiveTrack(t *testing.T) {
	env := newTestEnv()
	v := newBirthday(t, env)
	defer v.Close()

	v.Tap()
	v.Tap()
	intro, loop := celebrationTracks(t, env)

	v.ToggleMute()
	if !intro.Muted() {
		t.Fatal("devirden once mute intro'ya uygulanmali")
	}

	// Devirden sonra mute durumu loop'a tasinir ve toggle artik loop'u acar.
	intro.FireEnded()
	if !loop.Muted() {
		t.Fatal("mute durumu devirde tasinmali")
	}
	v.ToggleMute()
	if loop.Muted() {
		t.Fatal("toggle aktif parca olan loop'u acmali")
	}
	if !intro.Muted() {
		t.Fatal("bitmis intro'nun durumu degismemeli")
	}
}

func TestBirthdayVoiceDucksBackground(t *testing.T) {
	env := newTestEnv()
	content := birthdayContent()
	content.AudioMessageURL = "/voice/rohan.mp3"

	raw, err := New(content, env.context(390))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	v := raw.(*BirthdayCakeViewer)
	defer v.Close()

	voice := env.factory.Tracks[0]

	v.Tap()
	v.Tap()
	intro, _ := celebrationTracks(t, env)
	if got := intro.Volume(); got != InitialMusicVolume {
		t.Fatalf("arka plan %v ile baslamali, %v geldi", InitialMusicVolume, got)
	}

	v.PlayVoice()
	if !voice.Playing() {
		t.Fatal("sesli mesaj calmali")
	}
	if got := intro.Volume(); got != DuckedMusicVolume {
		t.Fatalf("sesli mesaj calarken arka plan %v olmali, %v geldi", DuckedMusicVolume, got)
	}

	// Mesaj bitince arka plan eski seviyesine doner.
	voice.FireEnded()
	if got := intro.Volume(); got != InitialMusicVolume {
		t.Fatalf("mesaj bitince arka plan %v olmali, %v geldi", InitialMusicVolume, got)
	}

	// Duraklatma da ayni geri yuklemeyi yapar.
	v.PlayVoice()
	v.PauseVoice()
	if voice.Playing() {
		t.Fatal("duraklatilan mesaj calmamali")
	}
	if got := intro.Volume(); got != InitialMusicVolume {
		t.Fatalf("duraklatmada arka plan %v olmali, %v geldi", InitialMusicVolume, got)
	}
}

func TestBirthdayGiftGatingMatchesTimeline(t *testing.T) {
	env := newTestEnv()
	ctx := env.context(390)
	ctx.IsOwner = true

	raw, err := New(birthdayContent(), ctx)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	owner := raw.(*BirthdayCakeViewer)
	defer owner.Close()

	if owner.GiftSceneVisible() {
		t.Fatal("yanitsiz kartta sahip hediye sahnesini gormemeli")
	}

	recipient := newBirthday(t, env)
	defer recipient.Close()
	if !recipient.GiftFormOpen() {
		t.Fatal("alici icin form acik olmali")
	}
	if err := recipient.SubmitGift(context.Background(), "saat", ""); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if recipient.GiftFormOpen() {
		t.Fatal("kayittan sonra form kapanmali")
	}
	if got := env.saves.last().GiftWants; got != "saat" {
		t.Fatalf("kayitli tercih 'saat' olmali, %q geldi", got)
	}
}

func TestBirthdayCloseFromBlowStage(t *testing.T) {
	env := newTestEnv()
	v := newBirthday(t, env)

	v.Tap()
	source := env.capture.Source
	v.Close()

	if !source.Closed() {
		t.Fatal("Close mikrofonu birakmali")
	}
	if got := env.clock.PendingCount(); got != 0 {
		t.Fatalf("Close sonrasi zamanlayici kalmamali, %d bekliyor", got)
	}

	// Kapali goruntude dokunus islenmez.
	v.Tap()
	if got := v.Stage(); got != StageBlow {
		t.Fatalf("kapali goruntu stage degistirmemeli, %d geldi", got)
	}
}
