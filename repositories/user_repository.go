// repositories/user_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/models"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	TouchLastLogin(ctx context.Context, id uint) error
	GetCount() (int64, error)
}

type UserRepository struct {
	base IBaseRepository[models.User]
	db   *gorm.DB
}

func NewUserRepository() IUserRepository {
	db := configsdatabase.GetDB()
	return &UserRepository{base: NewBaseRepository[models.User](db), db: db}
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	return r.base.GetByID(id)
}

func (r *UserRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	err := r.db.Where("phone = ?", phone).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.base.Create(ctx, user)
}

func (r *UserRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

// TouchLastLogin başarılı girişte zaman damgasını günceller.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	now := time.Now()
	return r.base.Update(ctx, id, map[string]interface{}{"last_login_at": &now})
}

func (r *UserRepository) GetCount() (int64, error) {
	return r.base.GetCount()
}
