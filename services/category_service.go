// services/category_service.go
package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/pkg/queryparams"
	"scrollwish.link/repositories"
)

// CategoryServiceError özel servis hataları
type CategoryServiceError string

func (e CategoryServiceError) Error() string { return string(e) }

const (
	ErrCategoryNotFound     CategoryServiceError = "kategori bulunamadı"
	ErrCategorySlugRequired CategoryServiceError = "kategori adı ve slug zorunludur"
	ErrCategorySlugTaken    CategoryServiceError = "bu slug zaten kullanımda"
)

// ICategoryService kategori işlemleri için arayüz.
type ICategoryService interface {
	GetPublicCategories(ctx context.Context) ([]models.Category, error)
	GetCategoriesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, userID uint, category *models.Category) error
	UpdateCategory(ctx context.Context, id uint, userID uint, data map[string]interface{}) error
	DeleteCategory(ctx context.Context, id uint, userID uint) error
}

type CategoryService struct {
	repo repositories.ICategoryRepository
}

func NewCategoryService() ICategoryService {
	return &CategoryService{repo: repositories.NewCategoryRepository()}
}

// GetPublicCategories vitrinde listelenen aktif kategoriler.
func (s *CategoryService) GetPublicCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAllEnabled()
}

func (s *CategoryService) GetCategoriesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	categories, total, err := s.repo.GetAll(params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: categories,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID uint, category *models.Category) error {
	if category.Name == "" || category.Slug == "" {
		return ErrCategorySlugRequired
	}
	if _, err := s.repo.FindBySlug(category.Slug); err == nil {
		return ErrCategorySlugTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	ctx = models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(ctx, category); err != nil {
		configslog.Log.Error("Kategori oluşturulamadı", zap.String("slug", category.Slug), zap.Error(err))
		return err
	}
	return nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, userID uint, data map[string]interface{}) error {
	ctx = models.ContextWithUserID(ctx, userID)
	err := s.repo.Update(ctx, id, data)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint, userID uint) error {
	ctx = models.ContextWithUserID(ctx, userID)
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
