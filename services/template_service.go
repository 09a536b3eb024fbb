// services/template_service.go
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

// TemplateServiceError özel servis hataları
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound      TemplateServiceError = "şablon bulunamadı"
	ErrTemplateInvalidLayout TemplateServiceError = "şablonun layout değeri geçersiz"
	ErrTemplateSlugTaken     TemplateServiceError = "bu şablon slug'ı zaten kullanımda"
	ErrTemplateNameRequired  TemplateServiceError = "şablon adı ve slug zorunludur"
)

// ITemplateService şablon işlemleri için arayüz.
type ITemplateService interface {
	GetPublicTemplates(ctx context.Context, categorySlug string) ([]models.Template, error)
	GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetTemplateByID(ctx context.Context, id uint) (*models.Template, error)
	CreateTemplate(ctx context.Context, userID uint, template *models.Template) error
	UpdateTemplate(ctx context.Context, id uint, userID uint, data map[string]interface{}) error
	DeleteTemplate(ctx context.Context, id uint, userID uint) error
}

type TemplateService struct {
	repo repositories.ITemplateRepository
}

func NewTemplateService() ITemplateService {
	return &TemplateService{repo: repositories.NewTemplateRepository()}
}

// GetPublicTemplates vitrin listesi; categorySlug boşsa tüm aktif şablonlar.
func (s *TemplateService) GetPublicTemplates(ctx context.Context, categorySlug string) ([]models.Template, error) {
	if categorySlug == "" {
		return s.repo.GetAllEnabled()
	}
	return s.repo.GetEnabledByCategorySlug(categorySlug)
}

func (s *TemplateService) GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	templates, total, err := s.repo.GetAll(params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: templates,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *TemplateService) GetTemplateByID(ctx context.Context, id uint) (*models.Template, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) CreateTemplate(ctx context.Context, userID uint, template *models.Template) error {
	if template.Name == "" || template.Slug == "" {
		return ErrTemplateNameRequired
	}
	if !template.Layout.IsValid() {
		return ErrTemplateInvalidLayout
	}
	if _, err := s.repo.FindBySlug(template.Slug); err == nil {
		return ErrTemplateSlugTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	// Şablonun örnek içeriği kendi layout'u ile tutarlı olmalı.
	template.DefaultContent.Layout = template.Layout
	template.IsPremium = template.PriceINR > 0

	ctx = models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(ctx, template); err != nil {
		configslog.Log.Error("Şablon oluşturulamadı", zap.String("slug", template.Slug), zap.Error(err))
		return err
	}
	return nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id uint, userID uint, data map[string]interface{}) error {
	ctx = models.ContextWithUserID(ctx, userID)
	err := s.repo.Update(ctx, id, data)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id uint, userID uint) error {
	ctx = models.ContextWithUserID(ctx, userID)
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}
