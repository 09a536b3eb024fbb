// pkg/viewer/content.go
package viewer

import (
	"fmt"
	"time"
)

// Layout hangi görüntüleyici state machine'inin bu içeriği çizeceğini seçer.
type Layout string

const (
	LayoutDefault      Layout = "default"
	LayoutTimeline     Layout = "timeline"
	LayoutValentine    Layout = "valentine"
	LayoutWedding      Layout = "wedding"
	LayoutBirthdayCake Layout = "birthday_cake"
)

// ValidLayouts seed ve form validasyonunda kullanılan tam liste.
var ValidLayouts = []Layout{
	LayoutDefault,
	LayoutTimeline,
	LayoutValentine,
	LayoutWedding,
	LayoutBirthdayCake,
}

// IsValid layout bilinen beş değerden biri mi?
func (l Layout) IsValid() bool {
	for _, v := range ValidLayouts {
		if l == v {
			return true
		}
	}
	return false
}

// Theme renk ve desen paketi seçicisi; davranışsal sözleşmenin parçası değildir.
type Theme string

const (
	ThemeRose       Theme = "rose"
	ThemeOcean      Theme = "ocean"
	ThemeSunset     Theme = "sunset"
	ThemeLavender   Theme = "lavender"
	ThemeFriendship Theme = "friendship"
	ThemeGold       Theme = "gold"
)

// FriendshipYears timeline yıl sayacının başlangıç ve bitiş yılları.
type FriendshipYears struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CardContent bir kart örneğini tanımlayan kanonik yapı. Görüntüleyici için
// salt okunurdur; render oturumu boyunca değişmez.
type CardContent struct {
	Layout        Layout `json:"layout"`
	Title         string `json:"title"`
	RecipientName string `json:"recipientName"`
	SenderName    string `json:"senderName"`
	Message       string `json:"message"`
	Shayari       string `json:"shayari,omitempty"`

	Images []string `json:"images"`
	Theme  Theme    `json:"theme"`

	VideoURL           string `json:"videoUrl,omitempty"`
	AudioMessageURL    string `json:"audioMessageUrl,omitempty"`
	BackgroundMusicURL string `json:"backgroundMusicUrl,omitempty"`

	FriendshipYears *FriendshipYears `json:"friendshipYears,omitempty"`

	// Wedding layout'una özel alanlar.
	WeddingDate    string `json:"weddingDate,omitempty"`
	WeddingTime    string `json:"weddingTime,omitempty"`
	VenueName      string `json:"venueName,omitempty"`
	VenueAddress   string `json:"venueAddress,omitempty"`
	VenueMapURL    string `json:"venueMapUrl,omitempty"`
	InvitationNote string `json:"invitationNote,omitempty"`
}

// Validate içerik layout'un asgari gereksinimlerini karşılıyor mu? Eksik
// medya hata değildir (placeholder'a düşülür); yalnızca layout'u bozan
// eksiklikler hata sayılır.
func (c CardContent) Validate() error {
	if !c.Layout.IsValid() {
		return fmt.Errorf("gecersiz layout: %q", c.Layout)
	}
	if c.Layout == LayoutTimeline && c.FriendshipYears != nil {
		if c.FriendshipYears.Start > c.FriendshipYears.End {
			return fmt.Errorf("friendshipYears baslangici bitisten buyuk: %d > %d",
				c.FriendshipYears.Start, c.FriendshipYears.End)
		}
	}
	return nil
}

// CustomDateFixed 14 Şubat'ta müsait olan yanıtlarda customDate alanına
// yazılan sabit değer; orijinal kayıt biçimiyle uyum için literaldir.
const CustomDateFixed = "14th Feb"

// ResponsePayload alıcının tek yanıtının düz biçimi. Valentine ve hediye
// tercihi varyantları aynı yapıyı paylaşır; hangi alanların zorunlu olduğu
// layout'a bağlıdır, kurallar Validate'te.
type ResponsePayload struct {
	AvailableOn14 *bool     `json:"availableOn14,omitempty"`
	Time          string    `json:"time,omitempty"`
	Venue         string    `json:"venue,omitempty"`
	CustomDate    string    `json:"customDate,omitempty"`
	GiftWants     string    `json:"giftWants,omitempty"`
	GiftDontWants string    `json:"giftDontWants,omitempty"`
	RespondedAt   time.Time `json:"respondedAt"`
}

// Validate yanıtı layout'un varyant kurallarına göre denetler.
//   - valentine: availableOn14 zorunlu; true ise customDate "14th Feb"
//     literali, false ise kullanıcı seçimi bir tarih olmalı.
//   - diğer layout'lar: hediye tercihi varyantı; valentine alanları boş olmalı.
func (p ResponsePayload) Validate(layout Layout) error {
	if layout == LayoutValentine {
		if p.AvailableOn14 == nil {
			return fmt.Errorf("valentine yaniti icin availableOn14 zorunlu")
		}
		if *p.AvailableOn14 && p.CustomDate != CustomDateFixed {
			return fmt.Errorf("availableOn14 true iken customDate %q olmali", CustomDateFixed)
		}
		if !*p.AvailableOn14 && p.CustomDate == "" {
			return fmt.Errorf("availableOn14 false iken customDate zorunlu")
		}
		return nil
	}
	if p.AvailableOn14 != nil {
		return fmt.Errorf("%s yaniti valentine alani tasiyamaz", layout)
	}
	if p.GiftWants == "" && p.GiftDontWants == "" {
		return fmt.Errorf("hediye tercihi yaniti bos olamaz")
	}
	return nil
}
