// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/models"
	"scrollwish.link/pkg/queryparams"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	GetAllCards(params queryparams.ListParams) ([]models.Card, int64, error)
	GetCardByID(id uint) (*models.Card, error)
	FindByShareKey(key string) (*models.Card, error)
	ShareKeyExists(key string) (bool, error)
	CreateCard(ctx context.Context, card *models.Card) error
	UpdateCard(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteCard(ctx context.Context, id uint) error
	GetCardCount() (int64, error)
	FindAllCardsByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	CountCardsByUserID(userID uint) (int64, error)
	IncrementViewCount(ctx context.Context, id uint) error
	UpsertResponse(ctx context.Context, response *models.CardResponse) error
}

// CardRepository ICardRepository arayüzünü uygular. Generik base'i kullanır,
// paylaşım anahtarı ve yanıt işlemlerini özelleştirir.
type CardRepository struct {
	base IBaseRepository[models.Card]
	db   *gorm.DB
}

func NewCardRepository() ICardRepository {
	db := configsdatabase.GetDB()
	return newCardRepositoryWithDB(db)
}

// NewCardRepositoryTx servis transaction'ları için tx kapsamlı kopya.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return newCardRepositoryWithDB(tx)
}

func newCardRepositoryWithDB(db *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "is_enabled", "view_count"})
	return &CardRepository{base: base, db: db}
}

func (r *CardRepository) GetAllCards(params queryparams.ListParams) ([]models.Card, int64, error) {
	return r.base.GetAll(params)
}

// GetCardByID kartı yanıtı ve şablonuyla birlikte getirir.
func (r *CardRepository) GetCardByID(id uint) (*models.Card, error) {
	var card models.Card
	err := r.db.
		Preload("Response").
		Preload("Template").
		First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

// FindByShareKey paylaşım linkinin açılışında kullanılır; yanıt preload edilir.
func (r *CardRepository) FindByShareKey(key string) (*models.Card, error) {
	var card models.Card
	err := r.db.
		Preload("Response").
		Where("share_key = ?", key).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

// ShareKeyExists anahtar üretiminde çakışma kontrolü.
func (r *CardRepository) ShareKeyExists(key string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Card{}).
		Unscoped(). // soft-delete edilmiş kartın anahtarı da yeniden kullanılamaz
		Where("share_key = ?", key).
		Count(&count).Error
	return count > 0, err
}

func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	return r.base.Create(ctx, card)
}

func (r *CardRepository) UpdateCard(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

func (r *CardRepository) GetCardCount() (int64, error) {
	return r.base.GetCount()
}

func (r *CardRepository) FindAllCardsByUserIDPaginated(userID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.db.Model(&models.Card{}).Where("owner_user_id = ?", userID)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	err := query.
		Preload("Response").
		Order("created_at desc").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}

func (r *CardRepository) CountCardsByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Card{}).
		Where("owner_user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// IncrementViewCount paylaşım sayfası her açılışta sayacı artırır.
func (r *CardRepository) IncrementViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// UpsertResponse kart başına tek yanıt kuralını veritabanında uygular:
// card_id çakışırsa mevcut satırın alanları yeni gönderimle güncellenir.
func (r *CardRepository) UpsertResponse(ctx context.Context, response *models.CardResponse) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "card_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"available_on14", "time", "venue", "custom_date",
				"gift_wants", "gift_dont_wants", "responded_at", "updated_at",
			}),
		}).
		Create(response).Error
}
