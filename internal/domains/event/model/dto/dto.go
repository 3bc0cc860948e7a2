package dto

import (
	"osam/internal/domains/event/model"
	"osam/shared"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name                string   `json:"name"                 validate:"required,max=200"`
	EventType           string   `json:"event_type"           validate:"required,oneof=festival fair ceremony cultural"`
	Description         string   `json:"description"          validate:"required"`
	StartDate           string   `json:"start_date"           validate:"required"`
	EndDate             string   `json:"end_date"             validate:"omitempty"`
	StartTime           string   `json:"start_time"           validate:"omitempty"`
	EndTime             string   `json:"end_time"             validate:"omitempty"`
	IsAnnual            bool     `json:"is_annual"`
	ExpectedAttendance  *int     `json:"expected_attendance"  validate:"omitempty,gt=0"`
	Location            string   `json:"location"             validate:"required,max=200"`
	Latitude            *float64 `json:"latitude"             validate:"omitempty,latitude"`
	Longitude           *float64 `json:"longitude"            validate:"omitempty,longitude"`
	OrganizingBody      *string  `json:"organizing_body"      validate:"omitempty,max=200"`
	ContactPerson       *string  `json:"contact_person"       validate:"omitempty,max=100"`
	ContactPhone        *string  `json:"contact_phone"        validate:"omitempty,max=20"`
	ContactEmail        *string  `json:"contact_email"        validate:"omitempty,email,max=100"`
	EntryFee            float64  `json:"entry_fee"            validate:"omitempty,gte=0"`
	IsFree              bool     `json:"is_free"`
	ParkingAvailable    bool     `json:"parking_available"`
	AccommodationNearby bool     `json:"accommodation_nearby"`
	Website             *string  `json:"website"              validate:"omitempty,url,max=300"`
	IsFeatured          bool     `json:"is_featured"`
	Status              string   `json:"status"               validate:"omitempty,oneof=upcoming ongoing completed"`
}

func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Event{}, err
	}

	endDate, err := parseOptionalDate(c.EndDate, constant.DateOnlyFormat)
	if err != nil {
		return model.Event{}, err
	}

	startTime, err := parseOptionalDate(c.StartTime, constant.TimeOnlyFormat)
	if err != nil {
		return model.Event{}, err
	}

	endTime, err := parseOptionalDate(c.EndTime, constant.TimeOnlyFormat)
	if err != nil {
		return model.Event{}, err
	}

	status := c.Status
	if status == "" {
		status = model.DeriveStatus(startDate, endDate, timezone.Now())
	}

	return model.Event{
		ID:                  uuid.NewString(),
		Name:                c.Name,
		EventType:           c.EventType,
		Description:         c.Description,
		StartDate:           startDate,
		EndDate:             endDate,
		StartTime:           startTime,
		EndTime:             endTime,
		IsAnnual:            c.IsAnnual,
		ExpectedAttendance:  c.ExpectedAttendance,
		Location:            c.Location,
		Latitude:            c.Latitude,
		Longitude:           c.Longitude,
		OrganizingBody:      c.OrganizingBody,
		ContactPerson:       c.ContactPerson,
		ContactPhone:        c.ContactPhone,
		ContactEmail:        c.ContactEmail,
		EntryFee:            c.EntryFee,
		IsFree:              c.IsFree || c.EntryFee == 0,
		ParkingAvailable:    c.ParkingAvailable,
		AccommodationNearby: c.AccommodationNearby,
		Website:             c.Website,
		IsFeatured:          c.IsFeatured,
		Status:              status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

func parseOptionalDate(value, layout string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(layout, value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

type UpdateEventRequest struct {
	Name                string   `db:"name"                 json:"name"                 validate:"omitempty,max=200"`
	EventType           string   `db:"event_type"           json:"event_type"           validate:"omitempty,oneof=festival fair ceremony cultural"`
	Description         string   `db:"description"          json:"description"          validate:"omitempty"`
	StartDate           string   `json:"start_date"          validate:"omitempty"`
	EndDate             string   `json:"end_date"            validate:"omitempty"`
	StartTime           string   `json:"start_time"          validate:"omitempty"`
	EndTime             string   `json:"end_time"            validate:"omitempty"`
	IsAnnual            *bool    `db:"is_annual"            json:"is_annual"`
	ExpectedAttendance  *int     `db:"expected_attendance"  json:"expected_attendance"  validate:"omitempty,gt=0"`
	Location            string   `db:"location"             json:"location"             validate:"omitempty,max=200"`
	Latitude            *float64 `db:"latitude"             json:"latitude"             validate:"omitempty,latitude"`
	Longitude           *float64 `db:"longitude"            json:"longitude"            validate:"omitempty,longitude"`
	OrganizingBody      *string  `db:"organizing_body"      json:"organizing_body"      validate:"omitempty,max=200"`
	ContactPerson       *string  `db:"contact_person"       json:"contact_person"       validate:"omitempty,max=100"`
	ContactPhone        *string  `db:"contact_phone"        json:"contact_phone"        validate:"omitempty,max=20"`
	ContactEmail        *string  `db:"contact_email"        json:"contact_email"        validate:"omitempty,email,max=100"`
	EntryFee            *float64 `db:"entry_fee"            json:"entry_fee"            validate:"omitempty,gte=0"`
	IsFree              *bool    `db:"is_free"              json:"is_free"`
	ParkingAvailable    *bool    `db:"parking_available"    json:"parking_available"`
	AccommodationNearby *bool    `db:"accommodation_nearby" json:"accommodation_nearby"`
	Website             *string  `db:"website"              json:"website"              validate:"omitempty,url,max=300"`
	IsFeatured          *bool    `db:"is_featured"          json:"is_featured"`
	Status              string   `db:"status"               json:"status"               validate:"omitempty,oneof=upcoming ongoing completed"`
}

// DateFields resolves the date/time strings into the column map the generic
// repository expects. Returns an error on a malformed value.
func (u *UpdateEventRequest) DateFields() (map[string]any, error) {
	fields := map[string]any{}

	if u.StartDate != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, u.StartDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldStartDate] = parsed
	}

	if u.EndDate != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, u.EndDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldEndDate] = parsed
	}

	if u.StartTime != "" {
		parsed, err := time.Parse(constant.TimeOnlyFormat, u.StartTime)
		if err != nil {
			return nil, err
		}

		fields[model.FieldStartTime] = parsed
	}

	if u.EndTime != "" {
		parsed, err := time.Parse(constant.TimeOnlyFormat, u.EndTime)
		if err != nil {
			return nil, err
		}

		fields[model.FieldEndTime] = parsed
	}

	return fields, nil
}

type EventResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	EventType           string   `json:"event_type"`
	Description         string   `json:"description"`
	StartDate           string   `json:"start_date"`
	EndDate             *string  `json:"end_date"`
	StartTime           *string  `json:"start_time"`
	EndTime             *string  `json:"end_time"`
	IsAnnual            bool     `json:"is_annual"`
	ExpectedAttendance  *int     `json:"expected_attendance"`
	Location            string   `json:"location"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	OrganizingBody      *string  `json:"organizing_body"`
	ContactPerson       *string  `json:"contact_person"`
	ContactPhone        *string  `json:"contact_phone"`
	ContactEmail        *string  `json:"contact_email"`
	EntryFee            float64  `json:"entry_fee"`
	IsFree              bool     `json:"is_free"`
	ParkingAvailable    bool     `json:"parking_available"`
	AccommodationNearby bool     `json:"accommodation_nearby"`
	Website             *string  `json:"website"`
	IsFeatured          bool     `json:"is_featured"`
	Status              string   `json:"status"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(mod model.Event) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.EventType = mod.EventType
	r.Description = mod.Description
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = formatOptional(mod.EndDate, constant.DateOnlyFormat)
	r.StartTime = formatOptional(mod.StartTime, constant.TimeOnlyFormat)
	r.EndTime = formatOptional(mod.EndTime, constant.TimeOnlyFormat)
	r.IsAnnual = mod.IsAnnual
	r.ExpectedAttendance = mod.ExpectedAttendance
	r.Location = mod.Location
	r.Latitude = mod.Latitude
	r.Longitude = mod.Longitude
	r.OrganizingBody = mod.OrganizingBody
	r.ContactPerson = mod.ContactPerson
	r.ContactPhone = mod.ContactPhone
	r.ContactEmail = mod.ContactEmail
	r.EntryFee = mod.EntryFee
	r.IsFree = mod.IsFree
	r.ParkingAvailable = mod.ParkingAvailable
	r.AccommodationNearby = mod.AccommodationNearby
	r.Website = mod.Website
	r.IsFeatured = mod.IsFeatured
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

func formatOptional(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(layout)

	return &formatted
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
