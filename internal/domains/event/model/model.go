package model

import (
	"osam/shared/model"
	"time"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID                  = "id"
	FieldName                = "name"
	FieldEventType           = "event_type"
	FieldDescription         = "description"
	FieldStartDate           = "start_date"
	FieldEndDate             = "end_date"
	FieldStartTime           = "start_time"
	FieldEndTime             = "end_time"
	FieldIsAnnual            = "is_annual"
	FieldExpectedAttendance  = "expected_attendance"
	FieldLocation            = "location"
	FieldLatitude            = "latitude"
	FieldLongitude           = "longitude"
	FieldOrganizingBody      = "organizing_body"
	FieldContactPerson       = "contact_person"
	FieldContactPhone        = "contact_phone"
	FieldContactEmail        = "contact_email"
	FieldEntryFee            = "entry_fee"
	FieldIsFree              = "is_free"
	FieldParkingAvailable    = "parking_available"
	FieldAccommodationNearby = "accommodation_nearby"
	FieldWebsite             = "website"
	FieldIsFeatured          = "is_featured"
	FieldStatus              = "status"
)

const (
	TypeFestival = "festival"
	TypeFair     = "fair"
	TypeCeremony = "ceremony"
	TypeCultural = "cultural"
)

const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

type Event struct {
	ID                  string     `db:"id"`
	Name                string     `db:"name"`
	EventType           string     `db:"event_type"`
	Description         string     `db:"description"`
	StartDate           time.Time  `db:"start_date"`
	EndDate             *time.Time `db:"end_date"`
	StartTime           *time.Time `db:"start_time"`
	EndTime             *time.Time `db:"end_time"`
	IsAnnual            bool       `db:"is_annual"`
	ExpectedAttendance  *int       `db:"expected_attendance"`
	Location            string     `db:"location"`
	Latitude            *float64   `db:"latitude"`
	Longitude           *float64   `db:"longitude"`
	OrganizingBody      *string    `db:"organizing_body"`
	ContactPerson       *string    `db:"contact_person"`
	ContactPhone        *string    `db:"contact_phone"`
	ContactEmail        *string    `db:"contact_email"`
	EntryFee            float64    `db:"entry_fee"`
	IsFree              bool       `db:"is_free"`
	ParkingAvailable    bool       `db:"parking_available"`
	AccommodationNearby bool       `db:"accommodation_nearby"`
	Website             *string    `db:"website"`
	IsFeatured          bool       `db:"is_featured"`
	Status              string     `db:"status"`
	model.Metadata
}

// DeriveStatus classifies an event by comparing calendar dates, ignoring
// the time of day. A missing end date means a single-day event.
func DeriveStatus(startDate time.Time, endDate *time.Time, now time.Time) string {
	today := truncateToDate(now)
	start := truncateToDate(startDate)

	end := start
	if endDate != nil {
		end = truncateToDate(*endDate)
	}

	switch {
	case today.Before(start):
		return StatusUpcoming
	case today.After(end):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
