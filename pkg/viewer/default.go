// pkg/viewer/default.go
package viewer

import (
	"math"
	"sync"
)

// DefaultViewer pasif scroll galerisi. Sahne listesi içeriğe bağlıdır:
// shayari varsa Quote, en az bir görsel varsa Gallery listeye girer.
// Yanıt toplamaz; test edilebilir mantığı sahne türetimi ve aktif nokta
// takibidir.
type DefaultViewer struct {
	mu       sync.Mutex
	content  CardContent
	viewport Viewport
	scenes   []SceneKind
	active   int
}

func NewDefaultViewer(content CardContent, vctx Context) *DefaultViewer {
	scenes := []SceneKind{SceneHero, SceneMessage}
	if content.Shayari != "" {
		scenes = append(scenes, SceneQuote)
	}
	if len(content.Images) > 0 {
		scenes = append(scenes, SceneGallery)
	}
	scenes = append(scenes, SceneSignOff)

	return &DefaultViewer{
		content:  content,
		viewport: vctx.Viewport,
		scenes:   scenes,
	}
}

func (v *DefaultViewer) ContentLayout() Layout { return LayoutDefault }

// Scenes türetilmiş sahne listesinin kopyası.
func (v *DefaultViewer) Scenes() []SceneKind {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]SceneKind, len(v.scenes))
	copy(out, v.scenes)
	return out
}

// ActiveIndex son scroll olayından türetilen sahne indeksi.
func (v *DefaultViewer) ActiveIndex() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// HandleScroll scroll ofsetini sahne indeksine çevirir. Tam sınırda nokta
// göstergesi titremesin diye yarım yukarı yuvarlanır; sonuç sahne sayısına
// kenetlenir.
func (v *DefaultViewer) HandleScroll(scrollTop float64) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	height := float64(v.viewport.Height())
	if height <= 0 {
		return v.active
	}
	idx := int(math.Floor(scrollTop/height + 0.5))
	if idx < 0 {
		idx = 0
	}
	if idx > len(v.scenes)-1 {
		idx = len(v.scenes) - 1
	}
	v.active = idx
	return idx
}

// JumpTo hedef sahnenin scroll ofsetini döner; host bu ofsete yumuşak
// kaydırır. Aktif indeks hemen güncellenir.
func (v *DefaultViewer) JumpTo(n int) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(v.scenes)-1 {
		n = len(v.scenes) - 1
	}
	v.active = n
	return float64(n) * float64(v.viewport.Height())
}

func (v *DefaultViewer) Close() {}
