package db

import (
	"errors"

	"github.com/terraincognita07/furrow/internal/models"
	"gorm.io/gorm"
)

type LocationRepository struct {
	database *gorm.DB
}

func NewLocationRepository(database *gorm.DB) *LocationRepository {
	return &LocationRepository{database: database}
}

func (repo *LocationRepository) ListAll() ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := repo.database.Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (repo *LocationRepository) FindByID(id uint) (models.Location, bool, error) {
	var location models.Location
	err := repo.database.First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Location{}, false, nil
		}
		return models.Location{}, false, err
	}
	return location, true, nil
}

func (repo *LocationRepository) Create(location *models.Location) error {
	return repo.database.Create(location).Error
}

func (repo *LocationRepository) Save(location *models.Location) error {
	return repo.database.Save(location).Error
}

func (repo *LocationRepository) DeleteByID(id uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location_id = ?", id).Delete(&models.Bed{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Location{}, id).Error
	})
}

func (repo *LocationRepository) ListBeds(locationID uint) ([]models.Bed, error) {
	beds := make([]models.Bed, 0)
	if err := repo.database.Where("location_id = ?", locationID).Order("label ASC").Find(&beds).Error; err != nil {
		return nil, err
	}
	return beds, nil
}

func (repo *LocationRepository) CreateBed(bed *models.Bed) error {
	return repo.database.Create(bed).Error
}

func (repo *LocationRepository) DeleteBedByID(id uint) error {
	return repo.database.Delete(&models.Bed{}, id).Error
}
