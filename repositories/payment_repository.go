// repositories/payment_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/models"
)

// IPaymentRepository ödeme siparişi kayıtları için arayüz.
type IPaymentRepository interface {
	Create(ctx context.Context, order *models.PaymentOrder) error
	FindByProviderOrderID(providerOrderID string) (*models.PaymentOrder, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	FindAllByCardID(cardID uint) ([]models.PaymentOrder, error)
}

type PaymentRepository struct {
	base IBaseRepository[models.PaymentOrder]
	db   *gorm.DB
}

func NewPaymentRepository() IPaymentRepository {
	db := configsdatabase.GetDB()
	return &PaymentRepository{base: NewBaseRepository[models.PaymentOrder](db), db: db}
}

// NewPaymentRepositoryTx doğrulama transaction'ı için tx kapsamlı kopya.
func NewPaymentRepositoryTx(tx *gorm.DB) IPaymentRepository {
	return &PaymentRepository{base: NewBaseRepository[models.PaymentOrder](tx), db: tx}
}

func (r *PaymentRepository) Create(ctx context.Context, order *models.PaymentOrder) error {
	return r.base.Create(ctx, order)
}

func (r *PaymentRepository) FindByProviderOrderID(providerOrderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	err := r.db.Where("provider_order_id = ?", providerOrderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *PaymentRepository) FindAllByCardID(cardID uint) ([]models.PaymentOrder, error) {
	var orders []models.PaymentOrder
	err := r.db.Where("card_id = ?", cardID).Order("created_at desc").Find(&orders).Error
	return orders, err
}
