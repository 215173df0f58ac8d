package migration

import (
	"presence/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PersonalInfoModel{},
		&models.HotelInfoModel{},
		&models.AgencyInfoModel{},
		&models.SocialMediaInfoModel{},
		&models.PlatformInfoModel{},
	}
}
