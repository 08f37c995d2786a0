package api

import (
	"net/http"
	"testing"
)

func TestCropCatalogRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerOwner(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/crops", map[string]any{
		"name":                "Carrot",
		"variety":             "Nantes",
		"dtm_direct_seed_max": 70,
	}, cookie))
	if err != nil {
		t.Fatalf("create crop: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", response.StatusCode)
	}

	// A single bound collapses to a degenerate range.
	var crop struct {
		ID               uint `json:"ID"`
		DTMDirectSeedMin int  `json:"DTMDirectSeedMin"`
		DTMDirectSeedMax int  `json:"DTMDirectSeedMax"`
	}
	decodeJSON(t, response, &crop)
	if crop.DTMDirectSeedMin != 70 || crop.DTMDirectSeedMax != 70 {
		t.Fatalf("normalized range = %d..%d, want 70..70", crop.DTMDirectSeedMin, crop.DTMDirectSeedMax)
	}

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/crops", map[string]any{
		"name":    "Carrot",
		"variety": "Nantes",
	}, cookie))
	if err != nil {
		t.Fatalf("create duplicate crop: %v", err)
	}
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want %d", response.StatusCode, http.StatusConflict)
	}

	response, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/crops/1", nil, cookie))
	if err != nil {
		t.Fatalf("delete crop: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", response.StatusCode)
	}
}

func TestLocationWithBeds(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerOwner(t, app)

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/locations", map[string]any{
		"name":      "North plot",
		"latitude":  51.9,
		"longitude": 4.5,
	}, cookie))
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", response.StatusCode)
	}

	for _, label := range []string{"Bed 1", "Bed 2"} {
		response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/locations/1/beds", map[string]any{
			"label": label,
		}, cookie))
		if err != nil {
			t.Fatalf("create bed: %v", err)
		}
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("create bed status = %d", response.StatusCode)
		}
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/locations/1/beds", nil, cookie))
	if err != nil {
		t.Fatalf("list beds: %v", err)
	}
	var beds []struct {
		Label string `json:"Label"`
	}
	decodeJSON(t, response, &beds)
	if len(beds) != 2 {
		t.Fatalf("beds = %d, want 2", len(beds))
	}

	response, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/locations/1", nil, cookie))
	if err != nil {
		t.Fatalf("delete location: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", response.StatusCode)
	}

	var bedCount int64
	if err := database.Table("beds").Count(&bedCount).Error; err != nil {
		t.Fatalf("count beds: %v", err)
	}
	if bedCount != 0 {
		t.Fatalf("orphaned beds = %d, want 0", bedCount)
	}
}
