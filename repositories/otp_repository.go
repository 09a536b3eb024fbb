// repositories/otp_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/models"
)

// IOTPRepository tek kullanımlık kod kayıtları için arayüz.
type IOTPRepository interface {
	Create(ctx context.Context, code *models.OTPCode) error
	FindActiveByPhone(phone string, now time.Time) (*models.OTPCode, error)
	MarkUsed(ctx context.Context, id uint) error
	IncrementAttempts(ctx context.Context, id uint) error
	InvalidateForPhone(ctx context.Context, phone string) error
}

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository() IOTPRepository {
	return &OTPRepository{db: configsdatabase.GetDB()}
}

func (r *OTPRepository) Create(ctx context.Context, code *models.OTPCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// FindActiveByPhone telefonun süresi geçmemiş, kullanılmamış son kodunu bulur.
func (r *OTPRepository) FindActiveByPhone(phone string, now time.Time) (*models.OTPCode, error) {
	var code models.OTPCode
	err := r.db.
		Where("phone = ? AND used = false AND expires_at > ?", phone, now).
		Order("created_at desc").
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (r *OTPRepository) MarkUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.OTPCode{}).
		Where("id = ?", id).
		Update("used", true).Error
}

func (r *OTPRepository) IncrementAttempts(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.OTPCode{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}

// InvalidateForPhone yeni kod üretilmeden önce eski kodları geçersiz kılar.
func (r *OTPRepository) InvalidateForPhone(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).
		Model(&models.OTPCode{}).
		Where("phone = ? AND used = false", phone).
		Update("used", true).Error
}
