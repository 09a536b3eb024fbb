// repositories/base_repository.go
package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"scrollwish.link/pkg/queryparams"
)

// ErrNotFound kayıt bulunamadığında tüm repository'lerin döndürdüğü hata.
var ErrNotFound = errors.New("kayit bulunamadi")

// IBaseRepository tüm tablolar için ortak CRUD arayüzü.
type IBaseRepository[T any] interface {
	GetAll(params queryparams.ListParams) ([]T, int64, error)
	GetByID(id uint) (*T, error)
	Create(ctx context.Context, model *T) error
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	GetCount() (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository generik GORM tabanlı implementasyon. Tipobazlı
// repository'ler bunu gömmek yerine alan olarak kullanır ve gerekirse
// metodları özelleştirir.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository verilen DB bağlantısıyla base repo oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true},
	}
}

// SetAllowedSortColumns sıralamaya açık sütunları belirler; dışarıdan gelen
// sortBy bu listede yoksa varsayılana düşülür.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	r.allowedSortColumns = allowed
}

// GetAll sayfalama ve sıralama ile tüm kayıtları listeler.
func (r *BaseRepository[T]) GetAll(params queryparams.ListParams) ([]T, int64, error) {
	var results []T
	var totalCount int64

	var model T
	query := r.db.Model(&model)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	sortBy := params.SortBy
	if !r.allowedSortColumns[sortBy] {
		sortBy = queryparams.DefaultSortBy
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}

// GetByID tek kayıt getirir; bulunamazsa ErrNotFound.
func (r *BaseRepository[T]) GetByID(id uint) (*T, error) {
	var model T
	err := r.db.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model, nil
}

// Create yeni kayıt ekler; audit alanları context'ten doldurulur.
func (r *BaseRepository[T]) Create(ctx context.Context, model *T) error {
	return r.db.WithContext(ctx).Create(model).Error
}

// Update verilen alanları günceller; kayıt yoksa ErrNotFound.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	var model T
	result := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete kaydı soft-delete eder; kayıt yoksa ErrNotFound.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var model T
	result := r.db.WithContext(ctx).Delete(&model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCount toplam kayıt sayısı.
func (r *BaseRepository[T]) GetCount() (int64, error) {
	var model T
	var count int64
	err := r.db.Model(&model).Count(&count).Error
	return count, err
}
