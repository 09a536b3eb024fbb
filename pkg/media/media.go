// pkg/media/media.go
package media

import "errors"

// Tarayıcı tarafında karşılığı olan, engine'in kendisinin üretmediği hatalar.
var (
	// ErrAutoplayBlocked kullanıcı etkileşimi olmadan oynatma engellendi.
	// Ölümcül değildir; sonraki bir kullanıcı hareketi oynatmayı tekrar dener.
	ErrAutoplayBlocked = errors.New("media: autoplay engellendi")

	// ErrPermissionDenied mikrofon izni reddedildi. Çağıran taraf zamanlayıcı
	// yoluna düşmek zorundadır, asla kullanıcıya hata olarak yansıtılmaz.
	ErrPermissionDenied = errors.New("media: mikrofon izni reddedildi")
)

// Track tek bir ses kaynağının kontrol yüzeyi (HTMLAudioElement karşılığı).
type Track interface {
	Play() error
	Pause()
	// Stop oynatmayı durdurur ve kaynağı bırakır; Stop sonrası Play çağrılmaz.
	Stop()
	SeekStart()
	SetVolume(v float64)
	Volume() float64
	SetMuted(m bool)
	Muted() bool
	// OnEnded parça doğal olarak bittiğinde çağrılacak callback'i kaydeder.
	OnEnded(fn func())
}

// TrackFactory URL'den Track üretir; host ortamı sağlar.
type TrackFactory interface {
	NewTrack(url string) Track
}

// LevelSource canlı mikrofon akışının anlık seviye okuması.
type LevelSource interface {
	// Level 0-255 aralığında ortalama frekans genliği döndürür
	// (8-bit frekans bin'lerinin ortalaması).
	Level() float64
	// Close akışı ve izleri (tracks) serbest bırakır. Birden fazla kez
	// çağrılabilir.
	Close()
}

// Capture mikrofon edinim portu.
type Capture interface {
	// AcquireMicrophone izin isteyip canlı seviye kaynağı döndürür.
	// İzin reddi ErrPermissionDenied ile bildirilir.
	AcquireMicrophone() (LevelSource, error)
}
