// pkg/viewer/wedding.go
package viewer

import (
	"sync"

	"scrollwish.link/pkg/countdown"
)

// WeddingViewer pasif dört sahne: Intro, Save-the-Date (canlı geri sayım),
// Venue ve Ending. Yanıt toplamaz; sahne giriş koreografisi sahne başına
// bir kez oynar.
type WeddingViewer struct {
	mu      sync.Mutex
	content CardContent
	vctx    Context

	scenes  []SceneKind
	entered map[SceneKind]bool

	tracker *countdown.Tracker
	closed  bool
}

func NewWeddingViewer(content CardContent, vctx Context) *WeddingViewer {
	v := &WeddingViewer{
		content: content,
		vctx:    vctx,
		scenes:  []SceneKind{SceneIntro, SceneSaveDate, SceneVenue, SceneEnding},
		entered: make(map[SceneKind]bool, 4),
	}
	v.tracker = countdown.NewTracker(vctx.Clock, content.WeddingDate, content.WeddingTime, nil)
	v.tracker.Start()
	return v
}

func (v *WeddingViewer) ContentLayout() Layout { return LayoutWedding }

func (v *WeddingViewer) Scenes() []SceneKind {
	out := make([]SceneKind, len(v.scenes))
	copy(out, v.scenes)
	return out
}

// Remaining düğüne kalan süre; hedef geçtiyse tamamen sıfırdır.
func (v *WeddingViewer) Remaining() countdown.Remaining {
	return v.tracker.Current()
}

// EnterScene sahne viewport'a girdiğinde çağrılır. Giriş animasyonu
// oynatılmalıysa true döner; aynı sahneye sonraki girişlerde false.
// Görünürlük seviye tetiklidir, tekrar ateşlemeyi burada bastırırız.
func (v *WeddingViewer) EnterScene(scene SceneKind) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.entered[scene] {
		return false
	}
	v.entered[scene] = true
	return true
}

func (v *WeddingViewer) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()
	v.tracker.Stop()
}
