package dto

import (
	"osam/internal/domains/place/model"
	"osam/shared"
	gDto "osam/shared/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"

	"github.com/google/uuid"
)

const defaultEntryFeeCurrency = "INR"

type CreatePlaceRequest struct {
	Name                      string   `json:"name"                         validate:"required,max=200"`
	Description               string   `json:"description"                  validate:"required"`
	Category                  string   `json:"category"                     validate:"required,oneof=place landmark viewpoint parking"`
	Location                  string   `json:"location"                     validate:"required,max=200"`
	Latitude                  *float64 `json:"latitude"                     validate:"omitempty,latitude"`
	Longitude                 *float64 `json:"longitude"                    validate:"omitempty,longitude"`
	ElevationMeters           *float64 `json:"elevation_meters"             validate:"omitempty,gte=0"`
	EntryFee                  float64  `json:"entry_fee"                    validate:"omitempty,gte=0"`
	EntryFeeCurrency          string   `json:"entry_fee_currency"           validate:"omitempty,len=3"`
	BestTimeToVisit           *string  `json:"best_time_to_visit"           validate:"omitempty,max=200"`
	AverageVisitDurationHours *float64 `json:"average_visit_duration_hours" validate:"omitempty,gt=0"`
	Accessibility             string   `json:"accessibility"                validate:"omitempty,oneof=easily_accessible moderate difficult"`
	ParkingAvailable          bool     `json:"parking_available"`
	PublicRestrooms           bool     `json:"public_restrooms"`
	FoodNearby                bool     `json:"food_nearby"`
	IsFeatured                bool     `json:"is_featured"`
}

func (c *CreatePlaceRequest) ToModel(user string) model.Place {
	currency := c.EntryFeeCurrency
	if currency == "" {
		currency = defaultEntryFeeCurrency
	}

	accessibility := c.Accessibility
	if accessibility == "" {
		accessibility = model.AccessibilityEasy
	}

	return model.Place{
		ID:                        uuid.NewString(),
		Name:                      c.Name,
		Description:               c.Description,
		Category:                  c.Category,
		Location:                  c.Location,
		Latitude:                  c.Latitude,
		Longitude:                 c.Longitude,
		ElevationMeters:           c.ElevationMeters,
		EntryFee:                  c.EntryFee,
		EntryFeeCurrency:          currency,
		BestTimeToVisit:           c.BestTimeToVisit,
		AverageVisitDurationHours: c.AverageVisitDurationHours,
		Accessibility:             accessibility,
		ParkingAvailable:          c.ParkingAvailable,
		PublicRestrooms:           c.PublicRestrooms,
		FoodNearby:                c.FoodNearby,
		IsFeatured:                c.IsFeatured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePlaceRequest struct {
	Name                      string   `db:"name"                         json:"name"                         validate:"omitempty,max=200"`
	Description               string   `db:"description"                  json:"description"                  validate:"omitempty"`
	Category                  string   `db:"category"                     json:"category"                     validate:"omitempty,oneof=place landmark viewpoint parking"`
	Location                  string   `db:"location"                     json:"location"                     validate:"omitempty,max=200"`
	Latitude                  *float64 `db:"latitude"                     json:"latitude"                     validate:"omitempty,latitude"`
	Longitude                 *float64 `db:"longitude"                    json:"longitude"                    validate:"omitempty,longitude"`
	ElevationMeters           *float64 `db:"elevation_meters"             json:"elevation_meters"             validate:"omitempty,gte=0"`
	EntryFee                  *float64 `db:"entry_fee"                    json:"entry_fee"                    validate:"omitempty,gte=0"`
	EntryFeeCurrency          string   `db:"entry_fee_currency"           json:"entry_fee_currency"           validate:"omitempty,len=3"`
	BestTimeToVisit           *string  `db:"best_time_to_visit"           json:"best_time_to_visit"           validate:"omitempty,max=200"`
	AverageVisitDurationHours *float64 `db:"average_visit_duration_hours" json:"average_visit_duration_hours" validate:"omitempty,gt=0"`
	Accessibility             string   `db:"accessibility"                json:"accessibility"                validate:"omitempty,oneof=easily_accessible moderate difficult"`
	ParkingAvailable          *bool    `db:"parking_available"            json:"parking_available"`
	PublicRestrooms           *bool    `db:"public_restrooms"             json:"public_restrooms"`
	FoodNearby                *bool    `db:"food_nearby"                  json:"food_nearby"`
	IsFeatured                *bool    `db:"is_featured"                  json:"is_featured"`
}

type PlaceResponse struct {
	ID                        string   `json:"id"`
	Name                      string   `json:"name"`
	Description               string   `json:"description"`
	Category                  string   `json:"category"`
	Location                  string   `json:"location"`
	Latitude                  *float64 `json:"latitude"`
	Longitude                 *float64 `json:"longitude"`
	ElevationMeters           *float64 `json:"elevation_meters"`
	EntryFee                  float64  `json:"entry_fee"`
	EntryFeeCurrency          string   `json:"entry_fee_currency"`
	BestTimeToVisit           *string  `json:"best_time_to_visit"`
	AverageVisitDurationHours *float64 `json:"average_visit_duration_hours"`
	Accessibility             string   `json:"accessibility"`
	ParkingAvailable          bool     `json:"parking_available"`
	PublicRestrooms           bool     `json:"public_restrooms"`
	FoodNearby                bool     `json:"food_nearby"`
	IsFeatured                bool     `json:"is_featured"`
	ViewCount                 int      `json:"view_count"`
	gDto.Metadata
}

func (r *PlaceResponse) FromModel(mod model.Place) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Category = mod.Category
	r.Location = mod.Location
	r.Latitude = mod.Latitude
	r.Longitude = mod.Longitude
	r.ElevationMeters = mod.ElevationMeters
	r.EntryFee = mod.EntryFee
	r.EntryFeeCurrency = mod.EntryFeeCurrency
	r.BestTimeToVisit = mod.BestTimeToVisit
	r.AverageVisitDurationHours = mod.AverageVisitDurationHours
	r.Accessibility = mod.Accessibility
	r.ParkingAvailable = mod.ParkingAvailable
	r.PublicRestrooms = mod.PublicRestrooms
	r.FoodNearby = mod.FoodNearby
	r.IsFeatured = mod.IsFeatured
	r.ViewCount = mod.ViewCount
	r.Metadata.FromModel(mod.Metadata)
}

type GetPlacesResponse struct {
	Places    []PlaceResponse `json:"places"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPlacesResponse) FromModels(models []model.Place, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Places = make([]PlaceResponse, len(models))
	for i, mod := range models {
		r.Places[i].FromModel(mod)
	}
}
