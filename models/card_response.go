// models/card_response.go
package models

import (
	"time"

	"scrollwish.link/pkg/viewer"
)

// CardResponse bir kartın tek alıcı yanıtı. CardID üzerindeki unique index
// "kart başına en fazla bir yanıt" kuralını şemada da zorlar; tekrar gönderim
// mevcut satırın üzerine yazar. Alanlar düz tutulur, orijinal kayıt biçimiyle
// bire bir uyumludur; hangi alanların dolu olacağı kartın layout'una bağlıdır.
type CardResponse struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null"`

	// Valentine varyantı.
	AvailableOn14 *bool  `gorm:"type:boolean"`
	Time          string `gorm:"type:varchar(20)"`
	Venue         string `gorm:"type:varchar(255)"`
	CustomDate    string `gorm:"type:varchar(50)"`

	// Hediye tercihi varyantı.
	GiftWants     string `gorm:"type:text"`
	GiftDontWants string `gorm:"type:text"`

	RespondedAt time.Time `gorm:"not null"`
}

// ToPayload kaydı görüntüleyicinin beklediği biçime çevirir.
func (r *CardResponse) ToPayload() viewer.ResponsePayload {
	return viewer.ResponsePayload{
		AvailableOn14: r.AvailableOn14,
		Time:          r.Time,
		Venue:         r.Venue,
		CustomDate:    r.CustomDate,
		GiftWants:     r.GiftWants,
		GiftDontWants: r.GiftDontWants,
		RespondedAt:   r.RespondedAt,
	}
}

// ApplyPayload gelen yanıtı kaydın üzerine yazar.
func (r *CardResponse) ApplyPayload(p viewer.ResponsePayload) {
	r.AvailableOn14 = p.AvailableOn14
	r.Time = p.Time
	r.Venue = p.Venue
	r.CustomDate = p.CustomDate
	r.GiftWants = p.GiftWants
	r.GiftDontWants = p.GiftDontWants
	r.RespondedAt = p.RespondedAt
}
