package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/furrow/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) ListAll() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Order("started_at ASC, id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("started_at >= ? AND started_at < ?", fromStart, toEnd).
		Order("started_at ASC, id ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) FindByID(id uint) (models.Activity, bool, error) {
	var activity models.Activity
	err := repo.database.First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, false, nil
		}
		return models.Activity{}, false, err
	}
	return activity, true, nil
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}

func (repo *ActivityRepository) Save(activity *models.Activity) error {
	return repo.database.Save(activity).Error
}

func (repo *ActivityRepository) DeleteByID(id uint) error {
	return repo.database.Delete(&models.Activity{}, id).Error
}
