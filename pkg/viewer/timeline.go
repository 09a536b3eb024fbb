// pkg/viewer/timeline.go
package viewer

import (
	"context"
	"errors"
	"sync"
	"time"

	"scrollwish.link/pkg/carousel"
	"scrollwish.link/pkg/media"
	"scrollwish.link/pkg/sched"
)

// YearTickInterval yıl sayacının adım aralığı.
const YearTickInterval = 200 * time.Millisecond

// TimelineViewer arkadaşlık zaman çizelgesi: yıl sayaçlı hero, döngüsel
// görsel karuseli, uzun mesaj, görünür olunca oynayan video ve hediye
// tercihi formu.
type TimelineViewer struct {
	mu      sync.Mutex
	content CardContent
	vctx    Context

	counterValue   int
	counterEnd     int
	counterStarted bool
	counterHandle  sched.Handle

	carousel *carousel.Carousel

	video       media.Track
	videoPlayed bool

	response   *ResponsePayload
	submitting bool
	closed     bool
}

func NewTimelineViewer(content CardContent, vctx Context) *TimelineViewer {
	v := &TimelineViewer{
		content:  content,
		vctx:     vctx,
		response: vctx.Existing,
	}

	if content.FriendshipYears != nil {
		v.counterValue = content.FriendshipYears.Start
		v.counterEnd = content.FriendshipYears.End
	}

	if n := len(content.Images); n > 0 {
		v.carousel = carousel.New(vctx.Clock, n, nil)
		v.carousel.Start()
	}

	if content.VideoURL != "" && vctx.Tracks != nil && !vctx.IsPreview {
		v.video = vctx.Tracks.NewTrack(content.VideoURL)
	}

	return v
}

func (v *TimelineViewer) ContentLayout() Layout { return LayoutTimeline }

// Scenes sabit sıra; hediye sahnesi gating'e göre listeden düşer.
func (v *TimelineViewer) Scenes() []SceneKind {
	scenes := []SceneKind{SceneHero, SceneGallery, SceneMessage}
	if v.content.VideoURL != "" {
		scenes = append(scenes, SceneVideo)
	}
	if v.GiftSceneVisible() {
		scenes = append(scenes, SceneGift)
	}
	return append(scenes, SceneSignOff)
}

// EnterCounterView sayaç elemanı görünür olduğunda çağrılır. Sayaç bir kez
// başlar; sahne tekrar görünür olsa da yeniden başlamaz.
func (v *TimelineViewer) EnterCounterView() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.counterStarted || v.closed || v.content.FriendshipYears == nil {
		return
	}
	v.counterStarted = true
	if v.counterValue >= v.counterEnd {
		return
	}
	v.counterHandle = v.vctx.Clock.SetInterval(YearTickInterval, v.counterTick)
}

func (v *TimelineViewer) counterTick() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.counterValue < v.counterEnd {
		v.counterValue++
	}
	// Bitiş yılında dur; sarmaz, sıfırlanmaz.
	if v.counterValue >= v.counterEnd && v.counterHandle != nil {
		v.counterHandle.Cancel()
		v.counterHandle = nil
	}
}

// CounterValue sayacın o an gösterdiği yıl.
func (v *TimelineViewer) CounterValue() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counterValue
}

// Carousel görsel karuseli; görsel yoksa nil.
func (v *TimelineViewer) Carousel() *carousel.Carousel {
	return v.carousel
}

// EnterVideoView video sahnesi görünür olduğunda çağrılır; oynatma bir kez
// tetiklenir, autoplay reddi sessizce yutulur.
func (v *TimelineViewer) EnterVideoView() {
	v.mu.Lock()
	if v.videoPlayed || v.video == nil || v.closed {
		v.mu.Unlock()
		return
	}
	v.videoPlayed = true
	track := v.video
	v.mu.Unlock()

	// Autoplay reddi dahil oynatma hatası ölümcül değildir; bir sonraki
	// kullanıcı jesti oynatmayı tekrar tetikler.
	_ = track.Play()
}

// GiftSceneVisible sahip henüz yanıtlanmamış bir kartına bakıyorsa hediye
// sahnesi hiç çizilmez; alıcıya yönelik boş bir istem görmemelidir.
func (v *TimelineViewer) GiftSceneVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.vctx.IsOwner && v.response == nil {
		return false
	}
	return true
}

// GiftFormOpen yanıt yoksa form, varsa salt okunur özet gösterilir.
func (v *TimelineViewer) GiftFormOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.response == nil && !v.vctx.IsOwner
}

// SavedResponse kaydedilmiş yanıt; özet gösterimi için.
func (v *TimelineViewer) SavedResponse() *ResponsePayload {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.response
}

// SubmitGift hediye tercihini kalıcılaştırır. Kayıt başarısız olursa form
// açık kalır ve tekrar denenebilir; başarı onaylanmadan özet durumuna
// geçilmez.
func (v *TimelineViewer) SubmitGift(ctx context.Context, wants, dontWants string) error {
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
	if err := payload.Validate(LayoutTimeline); err != nil {
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

// Close tüm zamanlayıcıları ve medya kaynaklarını bırakır.
func (v *TimelineViewer) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	handle := v.counterHandle
	v.counterHandle = nil
	video := v.video
	v.mu.Unlock()

	if handle != nil {
		handle.Cancel()
	}
	if v.carousel != nil {
		v.carousel.Close()
	}
	if video != nil {
		video.Stop()
	}
}
