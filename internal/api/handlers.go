package api

import (
	"time"

	"github.com/terraincognita07/furrow/internal/db"
	"github.com/terraincognita07/furrow/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	database     *gorm.DB
	repos        *db.Repositories
	calendar     *services.CalendarService
	plantings    *services.PlantingService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	loginLimiter *loginLimiter
}

func NewHandler(database *gorm.DB, secretKey []byte, location *time.Location, cookieSecure bool) *Handler {
	repos := db.NewRepositories(database)
	return &Handler{
		database:     database,
		repos:        repos,
		calendar:     services.NewCalendarService(repos.Activities, repos.Plantings, repos.PlantingEvents),
		plantings:    services.NewPlantingService(repos.Plantings, repos.PlantingEvents, repos.Crops),
		secretKey:    secretKey,
		location:     location,
		cookieSecure: cookieSecure,
		loginLimiter: newLoginLimiter(loginAttemptLimit, loginAttemptWindow),
	}
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type activityPayload struct {
	Subtype    string   `json:"subtype"`
	Date       string   `json:"date"`
	EndDate    string   `json:"end_date"`
	Crop       string   `json:"crop"`
	AssetName  string   `json:"asset_name"`
	Amendments []string `json:"amendments"`
	Notes      string   `json:"notes"`
}

type plantingPayload struct {
	Crop               string `json:"crop"`
	Variety            string `json:"variety"`
	BedLabel           string `json:"bed_label"`
	Quantity           int    `json:"quantity"`
	DTMDirectSeedMin   int    `json:"dtm_direct_seed_min"`
	DTMDirectSeedMax   int    `json:"dtm_direct_seed_max"`
	DTMTransplantMin   int    `json:"dtm_transplant_min"`
	DTMTransplantMax   int    `json:"dtm_transplant_max"`
	PlantedDate        string `json:"planted_date"`
	NurseryStartedDate string `json:"nursery_started_date"`
	Notes              string `json:"notes"`
}

type lifecycleEventPayload struct {
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	Qty         int    `json:"qty"`
	WeightGrams int    `json:"weight_grams"`
	BedLabel    string `json:"bed_label"`
}

type locationPayload struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

type bedPayload struct {
	Label string `json:"label"`
}

type cropPayload struct {
	Name             string `json:"name"`
	Variety          string `json:"variety"`
	DTMDirectSeedMin int    `json:"dtm_direct_seed_min"`
	DTMDirectSeedMax int    `json:"dtm_direct_seed_max"`
	DTMTransplantMin int    `json:"dtm_transplant_min"`
	DTMTransplantMax int    `json:"dtm_transplant_max"`
	Notes            string `json:"notes"`
}
