package migrations

import (
	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePaymentOrdersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating payment_orders table...")
	err := db.AutoMigrate(&models.PaymentOrder{})
	if err != nil {
		configslog.Log.Error("Failed to migrate payment_orders table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Payment_orders table migrated successfully")
	return nil
}
