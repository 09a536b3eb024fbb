// pkg/viewer/context.go
package viewer

import (
	"context"

	"scrollwish.link/pkg/media"
	"scrollwish.link/pkg/sched"
)

// DesktopMinWidth bu genişliğin üzeri "desktop" sayılır; valentine akışının
// fingerprint/signature çatalı buna bakar.
const DesktopMinWidth = 768

// Viewport görüntüleyicinin çalıştığı pencerenin boyut kapısıdır. Global
// pencere durumu yerine enjekte edilir ki state machine'ler tarayıcısız
// test edilebilsin.
type Viewport interface {
	Width() int
	Height() int
}

// StaticViewport sabit boyutlu viewport; testlerde ve önizleme çerçevesinde.
type StaticViewport struct {
	W int
	H int
}

func (v StaticViewport) Width() int  { return v.W }
func (v StaticViewport) Height() int { return v.H }

// SaveResponseFunc host'un yanıt kalıcılaştırma callback'i. Görüntüleyici
// başarılı dönüşü bekler; hata dönerse kendi state'ini değiştirmez.
type SaveResponseFunc func(ctx context.Context, payload ResponsePayload) error

// Context bir render oturumunun host tarafından sağlanan ortamıdır.
type Context struct {
	// IsOwner bakan kişi kartın sahibi mi? Sahip, alıcıya yönelik giriş
	// formlarını görmez ama akışı baştan oynatabilir.
	IsOwner bool

	// IsPreview editör önizleme çerçevesinde mi? Canlı medya edinimi
	// (mikrofon, otomatik ses) önizlemede bastırılır.
	IsPreview bool

	// Existing daha önce kaydedilmiş yanıt; nil değilse alıcı görünümü
	// "teşekkürler" terminal state'inden başlar.
	Existing *ResponsePayload

	SaveResponse SaveResponseFunc

	Viewport Viewport
	Clock    sched.Scheduler
	Tracks   media.TrackFactory
	Capture  media.Capture
}

// normalize eksik portları zararsız varsayılanlarla doldurur; görüntüleyici
// kodunda nil kontrolü dağılmasın.
func (c Context) normalize() Context {
	if c.Viewport == nil {
		c.Viewport = StaticViewport{W: 390, H: 844}
	}
	if c.Clock == nil {
		c.Clock = sched.New()
	}
	if c.Capture == nil {
		c.Capture = media.NoCapture{}
	}
	if c.SaveResponse == nil {
		c.SaveResponse = func(context.Context, ResponsePayload) error { return nil }
	}
	return c
}
