// configs/db.go
package configs

import (
	"scrollwish.link/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB servis katmanının kısa yoldan eriştiği bağlantı.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
