package db

import (
	"errors"

	"github.com/terraincognita07/furrow/internal/models"
	"gorm.io/gorm"
)

type CropRepository struct {
	database *gorm.DB
}

func NewCropRepository(database *gorm.DB) *CropRepository {
	return &CropRepository{database: database}
}

func (repo *CropRepository) ListAll() ([]models.Crop, error) {
	crops := make([]models.Crop, 0)
	if err := repo.database.Order("name ASC, variety ASC").Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

func (repo *CropRepository) FindByID(id uint) (models.Crop, bool, error) {
	var crop models.Crop
	err := repo.database.First(&crop, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Crop{}, false, nil
		}
		return models.Crop{}, false, err
	}
	return crop, true, nil
}

func (repo *CropRepository) FindByNameVariety(name string, variety string) (models.Crop, bool, error) {
	var crop models.Crop
	err := repo.database.Where("name = ? AND variety = ?", name, variety).First(&crop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Crop{}, false, nil
		}
		return models.Crop{}, false, err
	}
	return crop, true, nil
}

func (repo *CropRepository) Create(crop *models.Crop) error {
	return repo.database.Create(crop).Error
}

func (repo *CropRepository) Save(crop *models.Crop) error {
	return repo.database.Save(crop).Error
}

func (repo *CropRepository) DeleteByID(id uint) error {
	return repo.database.Delete(&models.Crop{}, id).Error
}
