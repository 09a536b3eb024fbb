// pkg/viewer/valentine_test.go
package viewer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func valentineContent() CardContent {
	return CardContent{Layout: LayoutValentine, RecipientName: "Meera", SenderName: "Arjun"}
}

func newValentine(t *testing.T, env *testEnv, width int) *ValentineViewer {
	t.Helper()
	v, err := New(valentineContent(), env.context(width))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	return v.(*ValentineViewer)
}

func TestValentineDesktopFork(t *testing.T) {
	env := newTestEnv()

	desktop := newValentine(t, env, 1024)
	defer desktop.Close()
	desktop.SelectYes()
	desktop.AdvanceFromCelebration()
	if got := desktop.Step(); got != StepSignature {
		t.Fatalf("genis viewport imza adimina gitmeli, %s geldi", got)
	}

	mobile := newValentine(t, env, 400)
	defer mobile.Close()
	mobile.SelectYes()
	mobile.AdvanceFromCelebration()
	if got := mobile.Step(); got != StepFingerprint {
		t.Fatalf("dar viewport parmak izi adimina gitmeli, %s geldi", got)
	}
}

func TestValentineForkReevaluatedOnResize(t *testing.T) {
	env := newTestEnv()
	vp := &mutableViewport{w: 400, h: 800}
	ctx := env.context(400)
	ctx.Viewport = vp

	raw, err := New(valentineContent(), ctx)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	v := raw.(*ValentineViewer)
	defer v.Close()

	v.SelectYes()
	v.AdvanceFromCelebration()
	if got := v.Step(); got != StepFingerprint {
		t.Fatalf("dar viewport parmak izi bekleniyordu, %s geldi", got)
	}

	// Yarim kalan basili tutma, viewport genisleyince sifirlanarak
	// imza koluna tasinir.
	v.HoldStart()
	env.clock.Advance(500 * time.Millisecond)
	vp.setWidth(1200)
	v.HandleResize()

	if got := v.Step(); got != StepSignature {
		t.Fatalf("resize sonrasi imza adimi bekleniyordu, %s geldi", got)
	}
	if got := v.HoldProgress(); got != 0 {
		t.Fatalf("kol degisince ilerleme sifirlanmali, %v geldi", got)
	}
}

func TestValentineNoButtonNeverSettles(t *testing.T) {
	env := newTestEnv()
	v := newValentine(t, env, 400)
	defer v.Close()

	for i := 0; i < 50; i++ {
		dx, dy := v.EvadeNo()
		if dx < -150 || dx > 150 || dy < -150 || dy > 150 {
			t.Fatalf("kacis araligi disinda ofset: (%d, %d)", dx, dy)
		}
	}
	if got := v.Step(); got != StepProposal {
		t.Fatalf("kacislar adimi degistirmemeli, %s geldi", got)
	}
}

func TestValentineHoldResetsOnEarlyRelease(t *testing.T) {
	env := newTestEnv()
	v := newValentine(t, env, 400)
	defer v.Close()

	v.SelectYes()
	v.AdvanceFromCelebration()

	v.HoldStart()
	env.clock.Advance(HoldDuration / 2)
	if got := v.HoldProgress(); got <= 0 || got >= 100 {
		t.Fatalf("yarida ilerleme 0-100 arasinda olmali, %v geldi", got)
	}

	// Erken birakma tum ilerlemeyi siler; kismi hak yok.
	v.HoldEnd()
	if got := v.HoldProgress(); got != 0 {
		t.Fatalf("erken birakmada ilerleme sifirlanmali, %v geldi", got)
	}

	// Bastan tam sure basili tutunca kisa gecikmeyle agreement'a gecilir.
	v.HoldStart()
	env.clock.Advance(HoldDuration)
	if got := v.HoldProgress(); got != 100 {
		t.Fatalf("tam surede ilerleme 100 olmali, %v geldi", got)
	}
	env.clock.Advance(time.Second)
	if got := v.Step(); got != StepAgreement {
		t.Fatalf("tamamlanan basili tutma agreement'a goturmeli, %s geldi", got)
	}
}

func TestValentineSignatureCarriesToAgreement(t *testing.T) {
	env := newTestEnv()
	v := newValentine(t, env, 1024)
	defer v.Close()

	v.SelectYes()
	v.AdvanceFromCelebration()

	pad := v.Pad()
	pad.PointerDown(10, 10)
	pad.PointerMove(60, 40)
	pad.PointerUp()

	if err := v.ConfirmSignature(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got := v.Step(); got != StepAgreement {
		t.Fatalf("onaylanan imza agreement'a goturmeli, %s geldi", got)
	}
	if v.SignatureImage() == nil {
		t.Fatal("imza goruntusu agreement'a tasinmali")
	}
}

func TestValentineFormRequiresChoice(t *testing.T) {
	env := newTestEnv()
	v := newValentine(t, env, 400)
	defer v.Close()

	walkToForm(t, env, v)

	if v.CanSubmit() {
		t.Fatal("secim yapilmadan submit acik olmamali")
	}
	if err := v.Submit(context.Background()); err == nil {
		t.Fatal("secimsiz submit reddedilmeli")
	}

	v.SetAvailability(true)
	v.SetFormTime("19:00")
	v.SetFormVenue("Marine Drive")
	if !v.CanSubmit() {
		t.Fatal("secimden sonra submit acilmali")
	}
	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got := v.Step(); got != StepSaved {
		t.Fatalf("basarili kayit saved'e goturmeli, %s geldi", got)
	}
	if got := env.saves.last().CustomDate; got != CustomDateFixed {
		t.Fatalf("14 Subat kolunda customDate %q olmali, %q geldi", CustomDateFixed, got)
	}
}

func TestValentineSubmitFailureStaysOnForm(t *testing.T) {
	env := newTestEnv()
	v := newValentine(t, env, 400)
	defer v.Close()

	walkToForm(t, env, v)
	v.SetAvailability(false)
	v.SetFormDate("2026-03-01")
	v.SetFormTime("18:00")
	v.SetFormVenue("Juhu")

	env.saves.setErr(errors.New("sunucu hatasi"))
	if err := v.Submit(context.Background()); err == nil {
		t.Fatal("kayit hatasi yuzeye cikmali")
	}
	if got := v.Step(); got != StepForm {
		t.Fatalf("hatali kayitta form adiminda kalinmali, %s geldi", got)
	}

	env.saves.setErr(nil)
	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("tekrar deneme basarili olmali: %v", err)
	}
	if got := v.Step(); got != StepSaved {
		t.Fatalf("tekrar denemeden sonra saved bekleniyordu, %s geldi", got)
	}
}

func TestValentineReplayOverwritesResponse(t *testing.T) {
	env := newTestEnv()
	v := newValentine(t, env, 400)
	defer v.Close()

	walkToForm(t, env, v)
	v.SetAvailability(true)
	v.SetFormTime("19:00")
	v.SetFormVenue("Marine Drive")
	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	// Replay akisi basa sarar ama kayitli yanit silinmez.
	v.Replay()
	if got := v.Step(); got != StepProposal {
		t.Fatalf("replay proposal'a donmeli, %s geldi", got)
	}

	walkToForm(t, env, v)
	v.SetAvailability(false)
	v.SetFormDate("2026-03-05")
	v.SetFormTime("20:00")
	v.SetFormVenue("Bandra")
	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	// Host'a iki cagri gider ama ikisi ayni kaydin uzerine yazar; makinenin
	// gordugu yanit her zaman son gonderimdir.
	last := env.saves.last()
	if last.CustomDate != "2026-03-05" || last.Venue != "Bandra" {
		t.Fatalf("son gonderimin degerleri saklanmali: %+v", last)
	}
	saved := v.SavedResponse()
	if saved == nil || saved.Venue != "Bandra" {
		t.Fatalf("makine son yaniti gostermeli: %+v", saved)
	}
}

func TestValentineRecipientWithResponseStartsSaved(t *testing.T) {
	env := newTestEnv()
	on14 := true
	ctx := env.context(400)
	ctx.Existing = &ResponsePayload{
		AvailableOn14: &on14,
		Time:          "19:00",
		Venue:         "Marine Drive",
		CustomDate:    CustomDateFixed,
		RespondedAt:   env.clock.Now(),
	}

	raw, err := New(valentineContent(), ctx)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	v := raw.(*ValentineViewer)
	defer v.Close()

	if got := v.Step(); got != StepSaved {
		t.Fatalf("yanitli alici saved'den baslamali, %s geldi", got)
	}

	// Sahip ayni kartla bastan baslar.
	ctx.IsOwner = true
	raw2, err := New(valentineContent(), ctx)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	owner := raw2.(*ValentineViewer)
	defer owner.Close()
	if got := owner.Step(); got != StepProposal {
		t.Fatalf("sahip proposal'dan baslamali, %s geldi", got)
	}
}

// walkToForm mobil koldan form adimina kadar yurur.
func walkToForm(t *testing.T, env *testEnv, v *ValentineViewer) {
	t.Helper()
	v.SelectYes()
	v.AdvanceFromCelebration()
	if v.Step() == StepFingerprint {
		v.HoldStart()
		env.clock.Advance(HoldDuration + time.Second)
	} else {
		if err := v.ConfirmSignature(); err != nil {
			t.Fatalf("imza onayi basarisiz: %v", err)
		}
	}
	v.AdvanceFromAgreement()
	v.AdvanceFromBouquet()
	if got := v.Step(); got != StepForm {
		t.Fatalf("form adimina ulasilmali, %s geldi", got)
	}
}

// mutableViewport testten boyutu degistirilebilen viewport.
type mutableViewport struct {
	w, h int
}

func (v *mutableViewport) Width() int  { return v.w }
func (v *mutableViewport) Height() int { return v.h }

func (v *mutableViewport) setWidth(w int) { v.w = w }
