// models/template.go
package models

import "scrollwish.link/pkg/viewer"

// Template hazır kart taslağı: layout, tema ve editörde başlangıç olarak
// sunulan örnek içerik. Premium şablonlar ödeme ile açılır.
type Template struct {
	BaseModel
	CategoryID uint   `gorm:"index;not null"`
	Name       string `gorm:"type:varchar(150);not null"`
	Slug       string `gorm:"type:varchar(150);uniqueIndex;not null"`

	Layout viewer.Layout `gorm:"type:varchar(30);not null;index"`
	Theme  viewer.Theme  `gorm:"type:varchar(30);not null"`

	PreviewImageURL string `gorm:"type:varchar(500)"`

	// PriceINR rupi cinsinden; 0 ise ücretsiz. Ödeme sağlayıcısına
	// paisa (x100) olarak gönderilir.
	PriceINR  int  `gorm:"default:0"`
	IsPremium bool `gorm:"default:false;index"`
	IsEnabled bool `gorm:"default:true;index"`

	// DefaultContent editörün başlangıç değerleri; JSON kolonunda tutulur.
	DefaultContent viewer.CardContent `gorm:"serializer:json;type:jsonb"`

	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
