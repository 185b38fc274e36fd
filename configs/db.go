package configs

import (
	"gorm.io/gorm"

	"kuvert.link/configs/configsdatabase"
)

// GetDB servis katmanının kullandığı kısayol.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
