// models/user.go
package models

import "time"

// AuthProvider kullanıcının hangi yolla giriş yaptığı.
type AuthProvider string

const (
	AuthProviderPhone  AuthProvider = "phone"
	AuthProviderGoogle AuthProvider = "google"
)

// User kart sahipleri ve yöneticiler. Telefon OTP akışında telefon numarası
// kimliğin kendisidir; Google girişinde e-posta doldurulur.
type User struct {
	BaseModel
	Phone    string       `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name     string       `gorm:"type:varchar(100)"`
	Email    string       `gorm:"type:varchar(100);index"`
	Provider AuthProvider `gorm:"type:varchar(20);not null;default:'phone'"`
	IsAdmin  bool         `gorm:"default:false;index"`

	LastLoginAt *time.Time

	Cards []Card `gorm:"foreignKey:OwnerUserID"`
}
