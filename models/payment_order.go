// models/payment_order.go
package models

import "time"

// PaymentStatus sipariş yaşam döngüsü.
type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentOrder premium bir kartın kilidini açan Razorpay siparişi.
// AmountPaisa paisa cinsindendir (INR x 100).
type PaymentOrder struct {
	BaseModel
	CardID uint `gorm:"index;not null"`
	UserID uint `gorm:"index;not null"`

	ProviderOrderID string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Receipt         string `gorm:"type:varchar(100)"`

	AmountPaisa int    `gorm:"not null"`
	Currency    string `gorm:"type:varchar(10);not null;default:'INR'"`

	Status PaymentStatus `gorm:"type:varchar(20);not null;default:'created';index"`

	// Doğrulama sonrası sağlayıcıdan dönen kimlikler.
	ProviderPaymentID string `gorm:"type:varchar(100)"`
	SignatureVerified bool   `gorm:"default:false"`
	PaidAt            *time.Time
}
