package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Activities     *ActivityRepository
	Plantings      *PlantingRepository
	PlantingEvents *PlantingEventRepository
	Locations      *LocationRepository
	Crops          *CropRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Activities:     NewActivityRepository(database),
		Plantings:      NewPlantingRepository(database),
		PlantingEvents: NewPlantingEventRepository(database),
		Locations:      NewLocationRepository(database),
		Crops:          NewCropRepository(database),
	}
}
