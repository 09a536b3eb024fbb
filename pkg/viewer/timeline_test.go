// pkg/viewer/timeline_test.go
package viewer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func timelineContent() CardContent {
	return CardContent{
		Layout:          LayoutTimeline,
		RecipientName:   "Asha",
		Images:          []string{"/1.jpg", "/2.jpg", "/3.jpg"},
		FriendshipYears: &FriendshipYears{Start: 2022, End: 2026},
	}
}

func TestTimelineYearCounterStopsAtEnd(t *testing.T) {
	env := newTestEnv()
	v := NewTimelineViewer(timelineContent(), env.context(390))
	defer v.Close()

	if got := v.CounterValue(); got != 2022 {
		t.Fatalf("sayac baslangic yilindan baslamali, %d geldi", got)
	}

	// Gorunur olmadan tik akmaz.
	env.clock.Advance(time.Second)
	if got := v.CounterValue(); got != 2022 {
		t.Fatalf("gorunmeden sayac ilerlememeli, %d geldi", got)
	}

	v.EnterCounterView()
	env.clock.Advance(2 * YearTickInterval)
	if got := v.CounterValue(); got != 2024 {
		t.Fatalf("iki tik sonra 2024 bekleniyordu, %d geldi", got)
	}

	// Bitis yilina ulasir ve orada kalir; sarmaz, sifirlanmaz.
	env.clock.Advance(time.Minute)
	if got := v.CounterValue(); got != 2026 {
		t.Fatalf("sayac 2026'da durmali, %d geldi", got)
	}

	// Tekrar gorunur olmak sayaci yeniden baslatmaz.
	v.EnterCounterView()
	env.clock.Advance(time.Minute)
	if got := v.CounterValue(); got != 2026 {
		t.Fatalf("yeniden giris sayaci sifirlamamali, %d geldi", got)
	}
}

func TestTimelineCarouselWiredToImages(t *testing.T) {
	env := newTestEnv()
	v := NewTimelineViewer(timelineContent(), env.context(390))
	defer v.Close()

	c := v.Carousel()
	if c == nil {
		t.Fatal("gorselli icerikte karusel olmali")
	}
	env.clock.Advance(4 * time.Second)
	if got := c.Index(); got != 1 {
		t.Fatalf("otomatik ilerleme calismali, index %d", got)
	}

	noImages := timelineContent()
	noImages.Images = nil
	v2 := NewTimelineViewer(noImages, env.context(390))
	defer v2.Close()
	if v2.Carousel() != nil {
		t.Fatal("gorselsiz icerikte karusel olmamali")
	}
}

func TestTimelineOwnerGiftSceneSuppressed(t *testing.T) {
	env := newTestEnv()
	ctx := env.context(390)
	ctx.IsOwner = true

	v := NewTimelineViewer(timelineContent(), ctx)
	defer v.Close()

	if v.GiftSceneVisible() {
		t.Fatal("yanitsiz kartta sahip hediye sahnesini gormemeli")
	}
	for _, s := range v.Scenes() {
		if s == SceneGift {
			t.Fatal("sahne listesinde hediye sahnesi olmamali")
		}
	}

	// Yanit geldikten sonra sahip ozeti gorebilir, ama form acilmaz.
	resp := &ResponsePayload{GiftWants: "kitap", RespondedAt: env.clock.Now()}
	ctx.Existing = resp
	v2 := NewTimelineViewer(timelineContent(), ctx)
	defer v2.Close()

	if !v2.GiftSceneVisible() {
		t.Fatal("yanitli kartta hediye ozeti gorunmeli")
	}
	if v2.GiftFormOpen() {
		t.Fatal("sahip icin form acilmamali")
	}
}

func TestTimelineGiftSubmitFailureKeepsForm(t *testing.T) {
	env := newTestEnv()
	v := NewTimelineViewer(timelineContent(), env.context(390))
	defer v.Close()

	if !v.GiftFormOpen() {
		t.Fatal("alici icin form acik olmali")
	}

	env.saves.setErr(errors.New("ag hatasi"))
	if err := v.SubmitGift(context.Background(), "kitap", "mum"); err == nil {
		t.Fatal("kayit hatasi yuzeye cikmali")
	}
	if !v.GiftFormOpen() {
		t.Fatal("hatali kayittan sonra form acik kalmali")
	}

	// Tekrar deneme basarili olunca ozet durumuna gecilir.
	env.saves.setErr(nil)
	if err := v.SubmitGift(context.Background(), "kitap", "mum"); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if v.GiftFormOpen() {
		t.Fatal("basarili kayittan sonra form kapanmali")
	}
	if env.saves.count() != 1 {
		t.Fatalf("tek kayit bekleniyordu, %d var", env.saves.count())
	}
	if got := env.saves.last().GiftWants; got != "kitap" {
		t.Fatalf("kayitli tercih 'kitap' olmali, %q geldi", got)
	}
}

func TestTimelineEmptyGiftRejected(t *testing.T) {
	env := newTestEnv()
	v := NewTimelineViewer(timelineContent(), env.context(390))
	defer v.Close()

	if err := v.SubmitGift(context.Background(), "", ""); err == nil {
		t.Fatal("bos tercih kabul edilmemeli")
	}
	if env.saves.count() != 0 {
		t.Fatal("gecersiz istek host'a ulasmamali")
	}
}

func TestTimelineVideoPlaysOnceOnView(t *testing.T) {
	env := newTestEnv()
	content := timelineContent()
	content.VideoURL = "/clip.mp4"

	v := NewTimelineViewer(content, env.context(390))
	defer v.Close()

	if len(env.factory.Tracks) != 1 {
		t.Fatalf("video parcasi uretilmeliydi, %d parca var", len(env.factory.Tracks))
	}
	video := env.factory.Tracks[0]

	v.EnterVideoView()
	v.EnterVideoView()
	if got := video.PlayCalls; got != 1 {
		t.Fatalf("video tek kez baslamali, %d cagri var", got)
	}

	v.Close()
	if !video.Stopped() {
		t.Fatal("Close video parcasini durdurmali")
	}
}
