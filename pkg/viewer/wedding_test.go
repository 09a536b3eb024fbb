// pkg/viewer/wedding_test.go
package viewer

import (
	"testing"
	"time"
)

func weddingContent() CardContent {
	return CardContent{
		Layout:      LayoutWedding,
		WeddingDate: "2026-02-02",
		WeddingTime: "18:00",
		VenueName:   "Taj Lands End",
	}
}

func TestWeddingSceneOrderFixed(t *testing.T) {
	env := newTestEnv()
	raw, err := New(weddingContent(), env.context(390))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	v := raw.(*WeddingViewer)
	defer v.Close()

	want := []SceneKind{SceneIntro, SceneSaveDate, SceneVenue, SceneEnding}
	got := v.Scenes()
	if len(got) != len(want) {
		t.Fatalf("4 sahne bekleniyordu, %d geldi", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sahne %d: %s bekleniyordu, %s geldi", i, want[i], got[i])
		}
	}
}

func TestWeddingCountdownCountsDown(t *testing.T) {
	env := newTestEnv() // saat 2026-02-01 12:00 yerel
	v := NewWeddingViewer(weddingContent(), env.context(390))
	defer v.Close()

	r := v.Remaining()
	if r.Days != 1 || r.Hours != 6 {
		t.Fatalf("1 gun 6 saat bekleniyordu, %+v geldi", r)
	}

	env.clock.Advance(time.Hour)
	r = v.Remaining()
	if r.Days != 1 || r.Hours != 5 {
		t.Fatalf("1 gun 5 saat bekleniyordu, %+v geldi", r)
	}

	// Dugun gecince sayac sifirda kalir.
	env.clock.Advance(60 * 24 * time.Hour)
	if r = v.Remaining(); !r.IsZero() {
		t.Fatalf("gecmis hedefte sifir bekleniyordu, %+v geldi", r)
	}
}

func TestWeddingEntrancePlaysOncePerScene(t *testing.T) {
	env := newTestEnv()
	v := NewWeddingViewer(weddingContent(), env.context(390))
	defer v.Close()

	if !v.EnterScene(SceneSaveDate) {
		t.Fatal("ilk giriste animasyon oynamali")
	}
	if v.EnterScene(SceneSaveDate) {
		t.Fatal("ayni sahneye ikinci giriste animasyon tekrarlanmamali")
	}
	if !v.EnterScene(SceneVenue) {
		t.Fatal("farkli sahnenin ilk girisi etkilenmemeli")
	}
}

func TestWeddingCloseStopsTracker(t *testing.T) {
	env := newTestEnv()
	v := NewWeddingViewer(weddingContent(), env.context(390))
	v.Close()

	if got := env.clock.PendingCount(); got != 0 {
		t.Fatalf("kapanista zamanlayici kalmamali, %d bekliyor", got)
	}
}
