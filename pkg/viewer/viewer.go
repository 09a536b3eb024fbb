// pkg/viewer/viewer.go
package viewer

import "fmt"

// SceneKind bir görüntüleyicinin tam ekran sahnelerinden birinin adı.
type SceneKind string

const (
	SceneHero     SceneKind = "hero"
	SceneMessage  SceneKind = "message"
	SceneQuote    SceneKind = "quote"
	SceneGallery  SceneKind = "gallery"
	SceneSignOff  SceneKind = "signoff"
	SceneVideo    SceneKind = "video"
	SceneGift     SceneKind = "gift"
	SceneIntro    SceneKind = "intro"
	SceneSaveDate SceneKind = "save_the_date"
	SceneVenue    SceneKind = "venue"
	SceneEnding   SceneKind = "ending"
)

// Viewer beş layout makinesinin ortak yüzeyidir. Layout'a özgü event'ler
// somut tiplerde durur; ortak sözleşme yalnızca kimlik ve teardown'dur.
type Viewer interface {
	ContentLayout() Layout
	Close()
}

// New content'in layout alanına göre doğru makineyi kurar. Dispatch tek
// switch'tir; makineler arasında paylaşılan taban davranış yoktur.
func New(content CardContent, vctx Context) (Viewer, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	vctx = vctx.normalize()

	switch content.Layout {
	case LayoutDefault:
		return NewDefaultViewer(content, vctx), nil
	case LayoutTimeline:
		return NewTimelineViewer(content, vctx), nil
	case LayoutValentine:
		return NewValentineViewer(content, vctx), nil
	case LayoutWedding:
		return NewWeddingViewer(content, vctx), nil
	case LayoutBirthdayCake:
		return NewBirthdayCakeViewer(content, vctx), nil
	default:
		return nil, fmt.Errorf("bilinmeyen layout: %q", content.Layout)
	}
}
