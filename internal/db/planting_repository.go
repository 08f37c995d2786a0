package db

import (
	"errors"

	"github.com/terraincognita07/furrow/internal/models"
	"gorm.io/gorm"
)

type PlantingRepository struct {
	database *gorm.DB
}

func NewPlantingRepository(database *gorm.DB) *PlantingRepository {
	return &PlantingRepository{database: database}
}

func (repo *PlantingRepository) ListAll() ([]models.Planting, error) {
	plantings := make([]models.Planting, 0)
	if err := repo.database.Order("id ASC").Find(&plantings).Error; err != nil {
		return nil, err
	}
	return plantings, nil
}

func (repo *PlantingRepository) ListByStatus(status string) ([]models.Planting, error) {
	plantings := make([]models.Planting, 0)
	if err := repo.database.Where("status = ?", status).Order("id ASC").Find(&plantings).Error; err != nil {
		return nil, err
	}
	return plantings, nil
}

func (repo *PlantingRepository) FindByID(id uint) (models.Planting, bool, error) {
	var planting models.Planting
	err := repo.database.First(&planting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Planting{}, false, nil
		}
		return models.Planting{}, false, err
	}
	return planting, true, nil
}

func (repo *PlantingRepository) Create(planting *models.Planting) error {
	return repo.database.Create(planting).Error
}

func (repo *PlantingRepository) Save(planting *models.Planting) error {
	return repo.database.Save(planting).Error
}

func (repo *PlantingRepository) DeleteByID(id uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planting_id = ?", id).Delete(&models.PlantingEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Planting{}, id).Error
	})
}
