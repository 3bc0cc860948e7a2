package model

import (
	"osam/shared/model"
)

const (
	TableName  = "places"
	EntityName = "place"

	FieldID                        = "id"
	FieldName                      = "name"
	FieldDescription               = "description"
	FieldCategory                  = "category"
	FieldLocation                  = "location"
	FieldLatitude                  = "latitude"
	FieldLongitude                 = "longitude"
	FieldElevationMeters           = "elevation_meters"
	FieldEntryFee                  = "entry_fee"
	FieldEntryFeeCurrency          = "entry_fee_currency"
	FieldBestTimeToVisit           = "best_time_to_visit"
	FieldAverageVisitDurationHours = "average_visit_duration_hours"
	FieldAccessibility             = "accessibility"
	FieldParkingAvailable          = "parking_available"
	FieldPublicRestrooms           = "public_restrooms"
	FieldFoodNearby                = "food_nearby"
	FieldIsFeatured                = "is_featured"
	FieldViewCount                 = "view_count"
)

const (
	CategoryPlace     = "place"
	CategoryLandmark  = "landmark"
	CategoryViewpoint = "viewpoint"
	CategoryParking   = "parking"
)

const (
	AccessibilityEasy      = "easily_accessible"
	AccessibilityModerate  = "moderate"
	AccessibilityDifficult = "difficult"
)

type Place struct {
	ID                        string   `db:"id"`
	Name                      string   `db:"name"`
	Description               string   `db:"description"`
	Category                  string   `db:"category"`
	Location                  string   `db:"location"`
	Latitude                  *float64 `db:"latitude"`
	Longitude                 *float64 `db:"longitude"`
	ElevationMeters           *float64 `db:"elevation_meters"`
	EntryFee                  float64  `db:"entry_fee"`
	EntryFeeCurrency          string   `db:"entry_fee_currency"`
	BestTimeToVisit           *string  `db:"best_time_to_visit"`
	AverageVisitDurationHours *float64 `db:"average_visit_duration_hours"`
	Accessibility             string   `db:"accessibility"`
	ParkingAvailable          bool     `db:"parking_available"`
	PublicRestrooms           bool     `db:"public_restrooms"`
	FoodNearby                bool     `db:"food_nearby"`
	IsFeatured                bool     `db:"is_featured"`
	ViewCount                 int      `db:"view_count"`
	model.Metadata
}
