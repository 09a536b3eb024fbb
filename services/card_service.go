// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scrollwish.link/configs"
	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/pkg/keygen"
	"scrollwish.link/pkg/queryparams"
	"scrollwish.link/pkg/viewer"
	"scrollwish.link/repositories"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "kart bulunamadı"
	ErrCardCreationFailed CardServiceError = "kart oluşturulamadı"
	ErrCardUpdateFailed   CardServiceError = "kart güncellenemedi"
	ErrCardDeletionFailed CardServiceError = "kart silinemedi"
	ErrCardForbidden      CardServiceError = "bu işlem için yetkiniz yok"
	ErrCardLocked         CardServiceError = "kartın kilidi henüz açılmamış"
	ErrCardDisabled       CardServiceError = "kart yayında değil"
	ErrCardInvalidInput   CardServiceError = "geçersiz girdi verisi"
	ErrCardKeyGeneration  CardServiceError = "paylaşım anahtarı üretilemedi"
	ErrResponseInvalid    CardServiceError = "alıcı yanıtı geçersiz"
)

// CardShareView paylaşım sayfasının gördüğü kart: kilitliyse içerik verilmez.
type CardShareView struct {
	ShareKey    string                  `json:"shareKey"`
	OwnerUserID uint                    `json:"ownerUserId"`
	Locked      bool                    `json:"isLocked"`
	Content     *viewer.CardContent     `json:"content,omitempty"`
	Response    *viewer.ResponsePayload `json:"existingResponse,omitempty"`
}

// ICardService kart işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, ownerUserID uint, templateID *uint, content viewer.CardContent) (*models.Card, error)
	GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error)
	GetCardByKey(ctx context.Context, key string) (*CardShareView, error)
	GetCardsForUserPaginated(ctx context.Context, ownerUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	AdminSetCardStatus(ctx context.Context, id uint, adminUserID uint, isEnabled, isLocked *bool) error
	UpdateCardContent(ctx context.Context, id uint, updatingUserID uint, content viewer.CardContent, isEnabled bool) error
	DeleteCard(ctx context.Context, id uint, deletingUserID uint) error
	SaveRecipientResponse(ctx context.Context, key string, payload viewer.ResponsePayload) (*viewer.ResponsePayload, error)
	GetCardCountForUser(ctx context.Context, ownerUserID uint) (int64, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo         repositories.ICardRepository
	templateRepo repositories.ITemplateRepository
	db           *gorm.DB
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		repo:         repositories.NewCardRepository(),
		templateRepo: repositories.NewTemplateRepository(),
		db:           configs.GetDB(),
	}
}

// CreateCard içerik validasyonu, benzersiz paylaşım anahtarı üretimi ve
// kart kaydını tek transaction içinde yapar. Premium şablondan üretilen
// kart, bedeli ödenene kadar kilitli başlar.
func (s *CardService) CreateCard(ctx context.Context, ownerUserID uint, templateID *uint, content viewer.CardContent) (*models.Card, error) {
	// 1. Girdi validasyonu
	if ownerUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı", ErrCardInvalidInput)
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
	}

	// 2. Şablon kontrolü (varsa)
	locked := false
	if templateID != nil {
		template, err := s.templateRepo.GetByID(*templateID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: şablon bulunamadı", ErrCardInvalidInput)
			}
			return nil, err
		}
		locked = template.IsPremium
	}

	// 3. Transaction: anahtar üret + kaydet
	var createdCard *models.Card
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, ownerUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		// a. Benzersiz paylaşım anahtarı (çakışmada yeniden dene)
		var shareKey string
		const maxKeyAttempts = 5
		for i := 0; i < maxKeyAttempts; i++ {
			attempt, keyErr := keygen.NewShareKey()
			if keyErr != nil {
				return ErrCardKeyGeneration
			}
			exists, checkErr := cardRepoTx.ShareKeyExists(attempt)
			if checkErr != nil {
				configslog.Log.Error("Anahtar benzersizlik kontrolü hatası", zap.Error(checkErr))
				return ErrCardKeyGeneration
			}
			if !exists {
				shareKey = attempt
				break
			}
			configslog.Log.Warn("Paylaşım anahtarı çakışması, yeniden deneniyor", zap.String("key", attempt))
		}
		if shareKey == "" {
			return ErrCardKeyGeneration
		}

		// b. Kartı oluştur
		card := models.Card{
			OwnerUserID: ownerUserID,
			TemplateID:  templateID,
			ShareKey:    shareKey,
			Content:     content,
			IsLocked:    locked,
			IsEnabled:   true,
		}
		if err := cardRepoTx.CreateCard(txCtx, &card); err != nil {
			configslog.Log.Error("Kart kaydı başarısız", zap.Error(err))
			return ErrCardCreationFailed
		}
		createdCard = &card
		return nil
	})
	if txErr != nil {
		var svcErr CardServiceError
		if errors.As(txErr, &svcErr) {
			return nil, svcErr
		}
		return nil, ErrCardCreationFailed
	}

	configslog.SLog.Infof("Kart oluşturuldu: id=%d key=%s", createdCard.ID, createdCard.ShareKey)
	return createdCard, nil
}

// GetCardByID sahiplik kontrolü ile kartı getirir (editör).
func (s *CardService) GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error) {
	card, err := s.repo.GetCardByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if card.OwnerUserID != requestingUserID {
		return nil, ErrCardForbidden
	}
	return card, nil
}

// GetCardByKey paylaşım sayfasının açılışı. Kilitli kartın içeriği ve
// yanıtı gönderilmez; alıcı yalnızca kilit ekranını görür. Görüntülenme
// sayacı her açılışta artar.
func (s *CardService) GetCardByKey(ctx context.Context, key string) (*CardShareView, error) {
	card, err := s.repo.FindByShareKey(key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if !card.IsEnabled {
		return nil, ErrCardDisabled
	}

	if err := s.repo.IncrementViewCount(ctx, card.ID); err != nil {
		configslog.Log.Warn("Görüntülenme sayacı artırılamadı", zap.Uint("card_id", card.ID), zap.Error(err))
	}

	view := &CardShareView{
		ShareKey:    card.ShareKey,
		OwnerUserID: card.OwnerUserID,
		Locked:      card.IsLocked,
	}
	if card.IsLocked {
		return view, nil
	}
	content := card.Content
	view.Content = &content
	if card.Response != nil {
		payload := card.Response.ToPayload()
		view.Response = &payload
	}
	return view, nil
}

func (s *CardService) GetCardsForUserPaginated(ctx context.Context, ownerUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	cards, total, err := s.repo.FindAllCardsByUserIDPaginated(ownerUserID, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// GetAllCardsPaginated tüm kartları listeler (yönetim paneli).
func (s *CardService) GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	cards, total, err := s.repo.GetAllCards(params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// AdminSetCardStatus yayın ve kilit bayraklarını yönetici adına değiştirir.
// Sahiplik kontrolü yapılmaz.
func (s *CardService) AdminSetCardStatus(ctx context.Context, id uint, adminUserID uint, isEnabled, isLocked *bool) error {
	if isEnabled == nil && isLocked == nil {
		return ErrCardInvalidInput
	}
	if _, err := s.repo.GetCardByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		return err
	}

	data := map[string]interface{}{}
	if isEnabled != nil {
		data["is_enabled"] = *isEnabled
	}
	if isLocked != nil {
		data["is_locked"] = *isLocked
	}

	txCtx := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.UpdateCard(txCtx, id, data); err != nil {
		configslog.Log.Error("Kart durumu güncellenemedi", zap.Uint("card_id", id), zap.Error(err))
		return ErrCardUpdateFailed
	}
	return nil
}

// UpdateCardContent içerik ve yayın durumunu günceller. Layout oluşturmadan
// sonra değiştirilemez.
func (s *CardService) UpdateCardContent(ctx context.Context, id uint, updatingUserID uint, content viewer.CardContent, isEnabled bool) error {
	card, err := s.GetCardByID(ctx, id, updatingUserID)
	if err != nil {
		return err
	}
	if content.Layout != card.Content.Layout {
		return fmt.Errorf("%w: layout sonradan değiştirilemez", ErrCardInvalidInput)
	}
	if err := content.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
	}

	txCtx := models.ContextWithUserID(ctx, updatingUserID)
	err = s.repo.UpdateCard(txCtx, id, map[string]interface{}{
		"content":    content,
		"is_enabled": isEnabled,
	})
	if err != nil {
		configslog.Log.Error("Kart güncellenemedi", zap.Uint("card_id", id), zap.Error(err))
		return ErrCardUpdateFailed
	}
	return nil
}

func (s *CardService) DeleteCard(ctx context.Context, id uint, deletingUserID uint) error {
	if _, err := s.GetCardByID(ctx, id, deletingUserID); err != nil {
		return err
	}
	txCtx := models.ContextWithUserID(ctx, deletingUserID)
	if err := s.repo.DeleteCard(txCtx, id); err != nil {
		configslog.Log.Error("Kart silinemedi", zap.Uint("card_id", id), zap.Error(err))
		return ErrCardDeletionFailed
	}
	return nil
}

// SaveRecipientResponse alıcı yanıtını kaydeder. Kart başına tek yanıt
// vardır; tekrar gönderim mevcut yanıtın üzerine yazar, ikinci bir kayıt
// üretmez. Yanıt satırı transaction içinde kart kilitlenerek yazılır ki
// eşzamanlı iki gönderim tek satırda buluşsun.
func (s *CardService) SaveRecipientResponse(ctx context.Context, key string, payload viewer.ResponsePayload) (*viewer.ResponsePayload, error) {
	if payload.RespondedAt.IsZero() {
		payload.RespondedAt = time.Now()
	}

	var saved viewer.ResponsePayload
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("share_key = ?", key).
			First(&card).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}
		if !card.IsEnabled {
			return ErrCardDisabled
		}
		if card.IsLocked {
			return ErrCardLocked
		}
		if err := payload.Validate(card.Content.Layout); err != nil {
			return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
		}

		response := &models.CardResponse{CardID: card.ID}
		response.ApplyPayload(payload)

		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		if err := cardRepoTx.UpsertResponse(ctx, response); err != nil {
			configslog.Log.Error("Yanıt kaydedilemedi", zap.Uint("card_id", card.ID), zap.Error(err))
			return err
		}
		saved = response.ToPayload()
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &saved, nil
}

func (s *CardService) GetCardCountForUser(ctx context.Context, ownerUserID uint) (int64, error) {
	return s.repo.CountCardsByUserID(ownerUserID)
}
