// models/card.go
package models

import "scrollwish.link/pkg/viewer"

// Card kişiselleştirilmiş bir kartın ana kaydıdır. ShareKey paylaşım
// linkinin kimliğidir; içerik JSON kolonunda viewer.CardContent olarak durur.
type Card struct {
	BaseModel
	OwnerUserID uint  `gorm:"index;not null"`
	TemplateID  *uint `gorm:"index"`

	ShareKey string `gorm:"type:varchar(12);uniqueIndex;not null"`

	Content viewer.CardContent `gorm:"serializer:json;type:jsonb;not null"`

	// IsLocked premium şablon bedeli ödenene kadar true kalır; kilitli
	// kartın paylaşım sayfası içerik vermez.
	IsLocked  bool `gorm:"default:false;index"`
	IsEnabled bool `gorm:"default:true;index"`

	ViewCount int `gorm:"default:0"`

	Owner    User           `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Template *Template      `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Response *CardResponse  `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Payments []PaymentOrder `gorm:"foreignKey:CardID"`
}
