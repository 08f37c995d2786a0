package db

import (
	"github.com/terraincognita07/furrow/internal/models"
	"gorm.io/gorm"
)

type PlantingEventRepository struct {
	database *gorm.DB
}

func NewPlantingEventRepository(database *gorm.DB) *PlantingEventRepository {
	return &PlantingEventRepository{database: database}
}

// ListLifecycle returns every row whose type the calendar engine understands,
// oldest first. The engine re-checks types anyway; the filter keeps the
// payload small once historical rows accumulate.
func (repo *PlantingEventRepository) ListLifecycle() ([]models.PlantingEvent, error) {
	events := make([]models.PlantingEvent, 0)
	if err := repo.database.
		Where("event_type IN ?", models.LifecycleEventTypes).
		Order("event_date ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *PlantingEventRepository) ListByPlanting(plantingID uint) ([]models.PlantingEvent, error) {
	events := make([]models.PlantingEvent, 0)
	if err := repo.database.
		Where("planting_id = ?", plantingID).
		Order("event_date ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *PlantingEventRepository) Create(event *models.PlantingEvent) error {
	return repo.database.Create(event).Error
}

func (repo *PlantingEventRepository) DeleteByID(id uint) error {
	return repo.database.Delete(&models.PlantingEvent{}, id).Error
}
