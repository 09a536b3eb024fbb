// models/base.go
package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// userIDKey audit alanları için context anahtarı.
const userIDKey contextKey = "current_user_id"

// ContextWithUserID işlemi yapan kullanıcıyı context'e koyar; GORM hook'ları
// CreatedBy/UpdatedBy alanlarını buradan doldurur.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext context'teki kullanıcıyı okur; yoksa 0 döner.
func UserIDFromContext(ctx context.Context) uint {
	if v, ok := ctx.Value(userIDKey).(uint); ok {
		return v
	}
	return 0
}

// BaseModel tüm tablolarda ortak kimlik ve audit alanları.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uint          `gorm:"index"`
	UpdatedBy *uint
	DeletedBy *uint
}

// BeforeCreate audit: kaydı oluşturan kullanıcı context'ten alınır.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if uid := UserIDFromContext(tx.Statement.Context); uid != 0 {
		b.CreatedBy = &uid
		b.UpdatedBy = &uid
	}
	return nil
}

// BeforeUpdate audit: son güncelleyen kullanıcı.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if uid := UserIDFromContext(tx.Statement.Context); uid != 0 {
		b.UpdatedBy = &uid
	}
	return nil
}
