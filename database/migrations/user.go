package migrations

import (
	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating users & otp_codes tables...")
	err := db.AutoMigrate(&models.User{}, &models.OTPCode{})
	if err != nil {
		configslog.Log.Error("Failed to migrate users & otp_codes tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Users & otp_codes tables migrated successfully")
	return nil
}
