// models/otp_code.go
package models

import "time"

// OTPCode telefon doğrulaması için üretilen tek kullanımlık kod. Kodun
// kendisi saklanmaz, bcrypt özeti saklanır.
type OTPCode struct {
	BaseModel
	Phone     string    `gorm:"type:varchar(20);index;not null"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Used      bool      `gorm:"default:false;index"`
	Attempts  int       `gorm:"default:0"`
}
