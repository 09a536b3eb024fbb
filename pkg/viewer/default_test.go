// pkg/viewer/default_test.go
package viewer

import "testing"

func TestDefaultSceneListContentDependent(t *testing.T) {
	env := newTestEnv()

	bare, err := New(CardContent{Layout: LayoutDefault}, env.context(390))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	defer bare.Close()

	scenes := bare.(*DefaultViewer).Scenes()
	want := []SceneKind{SceneHero, SceneMessage, SceneSignOff}
	if len(scenes) != len(want) {
		t.Fatalf("3 sahne bekleniyordu, %d geldi: %v", len(scenes), scenes)
	}
	for i := range want {
		if scenes[i] != want[i] {
			t.Fatalf("sahne %d: %s bekleniyordu, %s geldi", i, want[i], scenes[i])
		}
	}

	full, err := New(CardContent{
		Layout:  LayoutDefault,
		Shayari: "dil se dil tak",
		Images:  []string{"/a.jpg", "/b.jpg"},
	}, env.context(390))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	defer full.Close()

	scenes = full.(*DefaultViewer).Scenes()
	want = []SceneKind{SceneHero, SceneMessage, SceneQuote, SceneGallery, SceneSignOff}
	if len(scenes) != len(want) {
		t.Fatalf("5 sahne bekleniyordu, %d geldi: %v", len(scenes), scenes)
	}
	for i := range want {
		if scenes[i] != want[i] {
			t.Fatalf("sahne %d: %s bekleniyordu, %s geldi", i, want[i], scenes[i])
		}
	}
}

func TestDefaultScrollIndexRoundsHalfUp(t *testing.T) {
	env := newTestEnv()
	v := NewDefaultViewer(CardContent{Layout: LayoutDefault, Images: []string{"/a.jpg"}}, env.context(390))
	defer v.Close()

	// Viewport yuksekligi 800: 399 -> 0, 400 -> 1, 1199 -> 1, 1200 -> 2.
	cases := []struct {
		scroll float64
		want   int
	}{
		{0, 0},
		{399, 0},
		{400, 1},
		{1199, 1},
		{1200, 2},
	}
	for _, c := range cases {
		if got := v.HandleScroll(c.scroll); got != c.want {
			t.Errorf("scroll=%v icin index %d bekleniyordu, %d geldi", c.scroll, c.want, got)
		}
	}

	// Sahne sayisinin otesine tasan scroll son sahneye kenetlenir.
	if got := v.HandleScroll(99999); got != 3 {
		t.Errorf("tasan scroll son sahneye kenetlenmeli, %d geldi", got)
	}
	if got := v.HandleScroll(-500); got != 0 {
		t.Errorf("negatif scroll ilk sahnede kalmali, %d geldi", got)
	}
}

func TestDefaultJumpToReturnsOffset(t *testing.T) {
	env := newTestEnv()
	v := NewDefaultViewer(CardContent{Layout: LayoutDefault}, env.context(390))
	defer v.Close()

	if got := v.JumpTo(2); got != 1600 {
		t.Fatalf("2. sahne icin 1600 bekleniyordu, %v geldi", got)
	}
	if got := v.ActiveIndex(); got != 2 {
		t.Fatalf("aktif index 2 olmali, %d geldi", got)
	}

	// Liste disi hedef kenetlenir.
	if got := v.JumpTo(99); got != 1600 {
		t.Fatalf("tasan hedef son sahneye kenetlenmeli, %v geldi", got)
	}
}
