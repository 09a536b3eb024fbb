// services/payment_service.go
package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scrollwish.link/configs"
	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/repositories"
)

// PaymentServiceError özel servis hataları
type PaymentServiceError string

func (e PaymentServiceError) Error() string { return string(e) }

const (
	ErrPaymentNotConfigured  PaymentServiceError = "ödeme sağlayıcısı yapılandırılmamış"
	ErrPaymentCardNotLocked  PaymentServiceError = "kart zaten açık, ödeme gerekmiyor"
	ErrPaymentOrderFailed    PaymentServiceError = "ödeme siparişi oluşturulamadı"
	ErrPaymentOrderNotFound  PaymentServiceError = "ödeme siparişi bulunamadı"
	ErrPaymentBadSignature   PaymentServiceError = "ödeme imzası doğrulanamadı"
	ErrPaymentAlreadyPaid    PaymentServiceError = "sipariş zaten ödendi"
	ErrPaymentNoPriceOnCard  PaymentServiceError = "kartın şablonunda fiyat tanımlı değil"
	ErrPaymentForbiddenOrder PaymentServiceError = "bu sipariş için yetkiniz yok"
)

// OrderInfo istemcinin Razorpay checkout'una vereceği bilgiler.
type OrderInfo struct {
	OrderID     string `json:"orderId"`
	AmountPaisa int    `json:"amount"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
}

// IPaymentService premium kart kilidinin ödeme ile açılması.
type IPaymentService interface {
	CreateOrder(ctx context.Context, userID, cardID uint) (*OrderInfo, error)
	VerifyPayment(ctx context.Context, userID uint, orderID, paymentID, signature string) error
}

// PaymentService IPaymentService arayüzünü uygular. Sipariş Razorpay'de
// açılır; doğrulama imzası HMAC-SHA256 ile kontrol edilir ve kartın kilidi
// tek transaction içinde açılır.
type PaymentService struct {
	paymentRepo  repositories.IPaymentRepository
	cardRepo     repositories.ICardRepository
	templateRepo repositories.ITemplateRepository
	db           *gorm.DB

	client    *razorpay.Client
	keyID     string
	keySecret string
}

// NewPaymentService yeni bir PaymentService örneği oluşturur.
func NewPaymentService() IPaymentService {
	s := &PaymentService{
		paymentRepo:  repositories.NewPaymentRepository(),
		cardRepo:     repositories.NewCardRepository(),
		templateRepo: repositories.NewTemplateRepository(),
		db:           configs.GetDB(),
		keyID:        os.Getenv("RAZORPAY_KEY_ID"),
		keySecret:    os.Getenv("RAZORPAY_KEY_SECRET"),
	}
	if s.keyID != "" && s.keySecret != "" {
		s.client = razorpay.NewClient(s.keyID, s.keySecret)
	}
	return s
}

// CreateOrder kilitli kart için Razorpay siparişi açar ve yerel kaydını tutar.
func (s *PaymentService) CreateOrder(ctx context.Context, userID, cardID uint) (*OrderInfo, error) {
	if s.client == nil {
		return nil, ErrPaymentNotConfigured
	}

	// 1. Kart ve sahiplik kontrolü
	card, err := s.cardRepo.GetCardByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if card.OwnerUserID != userID {
		return nil, ErrCardForbidden
	}
	if !card.IsLocked {
		return nil, ErrPaymentCardNotLocked
	}
	if card.TemplateID == nil {
		return nil, ErrPaymentNoPriceOnCard
	}
	template, err := s.templateRepo.GetByID(*card.TemplateID)
	if err != nil || template.PriceINR <= 0 {
		return nil, ErrPaymentNoPriceOnCard
	}

	// 2. Razorpay siparişi (tutar paisa cinsinden)
	amountPaisa := template.PriceINR * 100
	receipt := fmt.Sprintf("order_%d", time.Now().Unix())
	body, err := s.client.Order.Create(map[string]interface{}{
		"amount":   amountPaisa,
		"currency": "INR",
		"receipt":  receipt,
	}, nil)
	if err != nil {
		configslog.Log.Error("Razorpay siparişi açılamadı", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, ErrPaymentOrderFailed
	}
	providerOrderID, _ := body["id"].(string)
	if providerOrderID == "" {
		configslog.Log.Error("Razorpay yanıtı sipariş kimliği içermiyor", zap.Any("body", body))
		return nil, ErrPaymentOrderFailed
	}

	// 3. Yerel sipariş kaydı
	order := &models.PaymentOrder{
		CardID:          cardID,
		UserID:          userID,
		ProviderOrderID: providerOrderID,
		Receipt:         receipt,
		AmountPaisa:     amountPaisa,
		Currency:        "INR",
		Status:          models.PaymentStatusCreated,
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.paymentRepo.Create(txCtx, order); err != nil {
		configslog.Log.Error("Sipariş kaydı başarısız", zap.String("order_id", providerOrderID), zap.Error(err))
		return nil, ErrPaymentOrderFailed
	}

	return &OrderInfo{
		OrderID:     providerOrderID,
		AmountPaisa: amountPaisa,
		Currency:    "INR",
		KeyID:       s.keyID,
	}, nil
}

// VerifyPayment imzayı doğrular, siparişi öder ve kartın kilidini açar.
func (s *PaymentService) VerifyPayment(ctx context.Context, userID uint, orderID, paymentID, signature string) error {
	if s.keySecret == "" {
		return ErrPaymentNotConfigured
	}

	// 1. İmza kontrolü: HMAC-SHA256(orderID|paymentID, keySecret)
	if !verifyRazorpaySignature(orderID, paymentID, signature, s.keySecret) {
		configslog.Log.Warn("Geçersiz ödeme imzası", zap.String("order_id", orderID))
		return ErrPaymentBadSignature
	}

	// 2. Transaction: sipariş + kart güncelle
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.PaymentOrder
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("provider_order_id = ?", orderID).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentOrderNotFound
			}
			return err
		}
		if order.UserID != userID {
			return ErrPaymentForbiddenOrder
		}
		if order.Status == models.PaymentStatusPaid {
			return ErrPaymentAlreadyPaid
		}

		now := time.Now()
		txCtx := models.ContextWithUserID(ctx, userID)
		err = tx.WithContext(txCtx).Model(&order).Updates(map[string]interface{}{
			"status":              models.PaymentStatusPaid,
			"provider_payment_id": paymentID,
			"signature_verified":  true,
			"paid_at":             &now,
		}).Error
		if err != nil {
			return err
		}

		// Kartın kilidini aç
		err = tx.WithContext(txCtx).Model(&models.Card{}).
			Where("id = ?", order.CardID).
			Update("is_locked", false).Error
		if err != nil {
			return err
		}

		configslog.SLog.Infof("Ödeme doğrulandı, kart açıldı: card=%d order=%s", order.CardID, orderID)
		return nil
	})
}

// verifyRazorpaySignature sağlayıcının checkout dönüşünde verdiği imzayı
// sabit zamanlı karşılaştırma ile doğrular.
func verifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
