// models/category.go
package models

// Category kart şablonlarının üst grubu (doğum günü, sevgililer günü,
// düğün, arkadaşlık...). Slug URL ve filtrelemede kullanılır.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Icon        string `gorm:"type:varchar(50)"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"default:0"`
	IsEnabled   bool   `gorm:"default:true;index"`

	Templates []Template `gorm:"foreignKey:CategoryID"`
}
