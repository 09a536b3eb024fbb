// services/auth_service.go
package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/repositories"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrOTPSendFailed    AuthServiceError = "doğrulama kodu gönderilemedi"
	ErrOTPNotFound      AuthServiceError = "geçerli bir doğrulama kodu yok"
	ErrOTPExpired       AuthServiceError = "doğrulama kodunun süresi doldu"
	ErrOTPMismatch      AuthServiceError = "doğrulama kodu hatalı"
	ErrOTPTooManyTries  AuthServiceError = "çok fazla hatalı deneme"
	ErrPhoneRequired    AuthServiceError = "telefon numarası zorunludur"
	ErrUserUpsertFailed AuthServiceError = "kullanıcı kaydı oluşturulamadı"
)

const (
	otpLength      = 4
	otpTTL         = 10 * time.Minute
	otpMaxAttempts = 5
)

// IAuthService telefon OTP giriş akışı.
type IAuthService interface {
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular. SMS gönderimi Twilio ile;
// kimlik bilgisi yoksa kod yalnızca loglanır (geliştirme modu).
type AuthService struct {
	otpRepo  repositories.IOTPRepository
	userRepo repositories.IUserRepository

	twilioClient *twilio.RestClient
	twilioFrom   string
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	s := &AuthService{
		otpRepo:  repositories.NewOTPRepository(),
		userRepo: repositories.NewUserRepository(),
	}
	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	s.twilioFrom = os.Getenv("TWILIO_FROM_NUMBER")
	if sid != "" && token != "" && s.twilioFrom != "" {
		s.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: sid,
			Password: token,
		})
	}
	return s
}

// RequestOTP yeni bir kod üretir, eskileri geçersiz kılar ve SMS gönderir.
func (s *AuthService) RequestOTP(ctx context.Context, phone string) error {
	if phone == "" {
		return ErrPhoneRequired
	}

	code, err := generateOTPCode(otpLength)
	if err != nil {
		configslog.Log.Error("OTP üretilemedi", zap.Error(err))
		return ErrOTPSendFailed
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("OTP hash'lenemedi", zap.Error(err))
		return ErrOTPSendFailed
	}

	// 1. Önceki kodları geçersiz kıl
	if err := s.otpRepo.InvalidateForPhone(ctx, phone); err != nil {
		configslog.Log.Error("Eski OTP kayıtları geçersiz kılınamadı", zap.Error(err))
		return ErrOTPSendFailed
	}

	// 2. Yeni kodu kaydet
	record := &models.OTPCode{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepo.Create(ctx, record); err != nil {
		configslog.Log.Error("OTP kaydedilemedi", zap.String("phone", phone), zap.Error(err))
		return ErrOTPSendFailed
	}

	// 3. SMS gönder
	if s.twilioClient == nil {
		// Geliştirme modu: SMS sağlayıcısı yapılandırılmamış.
		configslog.SLog.Infof("OTP (dev modu) %s -> %s", phone, code)
		return nil
	}
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.twilioFrom)
	params.SetBody(fmt.Sprintf("ScrollWish dogrulama kodunuz: %s", code))
	if _, err := s.twilioClient.Api.CreateMessage(params); err != nil {
		configslog.Log.Error("OTP SMS gönderilemedi", zap.String("phone", phone), zap.Error(err))
		return ErrOTPSendFailed
	}
	return nil
}

// VerifyOTP kodu doğrular, kullanıcıyı bulur veya oluşturur.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, code string) (*models.User, error) {
	if phone == "" || code == "" {
		return nil, ErrOTPMismatch
	}

	// 1. Aktif kodu bul
	record, err := s.otpRepo.FindActiveByPhone(phone, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOTPNotFound
		}
		configslog.Log.Error("OTP sorgusu başarısız", zap.Error(err))
		return nil, err
	}
	if record.Attempts >= otpMaxAttempts {
		return nil, ErrOTPTooManyTries
	}

	// 2. Kodu karşılaştır
	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		if err := s.otpRepo.IncrementAttempts(ctx, record.ID); err != nil {
			configslog.Log.Error("OTP deneme sayacı güncellenemedi", zap.Error(err))
		}
		return nil, ErrOTPMismatch
	}

	// 3. Kodu tek kullanımlık yap
	if err := s.otpRepo.MarkUsed(ctx, record.ID); err != nil {
		configslog.Log.Error("OTP kullanıldı olarak işaretlenemedi", zap.Error(err))
		return nil, err
	}

	// 4. Kullanıcıyı bul veya oluştur
	user, err := s.userRepo.FindByPhone(phone)
	if errors.Is(err, repositories.ErrNotFound) {
		user = &models.User{Phone: phone, Provider: models.AuthProviderPhone}
		if err := s.userRepo.Create(ctx, user); err != nil {
			configslog.Log.Error("Kullanıcı oluşturulamadı", zap.String("phone", phone), zap.Error(err))
			return nil, ErrUserUpsertFailed
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		configslog.Log.Warn("Son giriş zamanı güncellenemedi", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return user, nil
}

// generateOTPCode n haneli rakam kodu üretir.
func generateOTPCode(n int) (string, error) {
	digits := make([]byte, n)
	ten := big.NewInt(10)
	for i := range digits {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
