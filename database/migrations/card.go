package migrations

import (
	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards & card_responses tables...")
	err := db.AutoMigrate(&models.Card{}, &models.CardResponse{})
	if err != nil {
		configslog.Log.Error("Failed to migrate cards & card_responses tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards & card_responses tables migrated successfully")
	return nil
}
