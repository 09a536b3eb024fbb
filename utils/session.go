// utils/session.go
package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var (
	ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")
	ErrUserIDMissing       = errors.New("session içinde kullanıcı kimliği yok")
)

// SessionStart locals'a konmuş store üzerinden isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession session'dan kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get("user_id")
	switch v := raw.(type) {
	case uint:
		return v, nil
	case int:
		if v > 0 {
			return uint(v), nil
		}
	case int64:
		if v > 0 {
			return uint(v), nil
		}
	case float64:
		if v > 0 {
			return uint(v), nil
		}
	}
	return 0, ErrUserIDMissing
}

// GetIsAdminFromSession session'dan admin bayrağını okur.
func GetIsAdminFromSession(sess *session.Session) (bool, error) {
	isAdmin, ok := sess.Get("is_admin").(bool)
	if !ok {
		return false, errors.New("session içinde admin bilgisi yok")
	}
	return isAdmin, nil
}

// SetUserSession giriş sonrası session'a kullanıcı bilgilerini yazar.
func SetUserSession(sess *session.Session, userID uint, phone string, isAdmin bool) error {
	sess.Set("user_id", userID)
	sess.Set("user_phone", phone)
	sess.Set("is_admin", isAdmin)
	return sess.Save()
}

// DestroySession çıkışta session'ı tamamen temizler.
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
