package migrations

import (
	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCatalogTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating categories & templates tables...")
	err := db.AutoMigrate(&models.Category{}, &models.Template{})
	if err != nil {
		configslog.Log.Error("Failed to migrate categories & templates tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Categories & templates tables migrated successfully")
	return nil
}
