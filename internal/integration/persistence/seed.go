// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/internal/integration/persistence/model"
)

// defaultMetrics is the built-in emissions metric catalog. Seeding is
// idempotent: existing codes are left untouched.
var defaultMetrics = []struct {
	Name     string
	Code     string
	Scope    string
	Unit     string
	Category string
}{
	{"Natural Gas Consumption", "natural_gas", "scope_1", "m3", "stationary_combustion"},
	{"Fleet Diesel", "fleet_diesel", "scope_1", "L", "mobile_combustion"},
	{"Fleet Petrol", "fleet_petrol", "scope_1", "L", "mobile_combustion"},
	{"Refrigerant Leakage", "refrigerant_leakage", "scope_1", "kg", "fugitive_emissions"},
	{"Purchased Electricity", "purchased_electricity", "scope_2", "kWh", "purchased_energy"},
	{"Purchased Heat and Steam", "purchased_heat", "scope_2", "kWh", "purchased_energy"},
	{"Business Travel - Air", "business_travel_air", "scope_3", "km", "business_travel"},
	{"Business Travel - Rail", "business_travel_rail", "scope_3", "km", "business_travel"},
	{"Employee Commuting", "employee_commuting", "scope_3", "km", "commuting"},
	{"Purchased Goods and Services", "purchased_goods", "scope_3", "spend_eur", "upstream"},
	{"Upstream Freight", "upstream_freight", "scope_3", "tonne_km", "upstream"},
	{"Waste Generated", "waste_generated", "scope_3", "tonnes", "waste"},
	{"Water Consumption", "water_consumption", "scope_3", "m3", "water"},
}

// SeedMetricCatalog inserts the default metric catalog rows that are not
// already present.
func SeedMetricCatalog(db *gorm.DB) error {
	now := time.Now().UTC()
	for _, m := range defaultMetrics {
		metric := model.MetricModel{
			ID:        uuid.New(),
			Name:      m.Name,
			Code:      m.Code,
			Scope:     m.Scope,
			Unit:      m.Unit,
			Category:  m.Category,
			CreatedAt: now,
		}
		if err := db.Where("code = ?", m.Code).FirstOrCreate(&metric).Error; err != nil {
			return err
		}
	}
	return nil
}
