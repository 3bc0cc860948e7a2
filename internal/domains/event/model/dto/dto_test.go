package dto_test

import (
	"testing"
	"time"

	"osam/internal/domains/event/model"
	"osam/internal/domains/event/model/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateEventRequest_ToModel(t *testing.T) {
	req := dto.CreateEventRequest{
		Name:        "Chichod Fair",
		EventType:   model.TypeFair,
		Description: "Annual village fair",
		StartDate:   "2026-11-02",
		EndDate:     "2026-11-05",
		StartTime:   "09:00:00",
		IsAnnual:    true,
		Location:    "Chichod",
		EntryFee:    50,
	}

	event, err := req.ToModel("test-user-id")

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, event.Name)
	assert.Equal(t, 2026, event.StartDate.Year())
	assert.Equal(t, time.November, event.StartDate.Month())
	assert.NotNil(t, event.EndDate)
	assert.NotNil(t, event.StartTime)
	assert.Nil(t, event.EndTime)
	assert.True(t, event.IsAnnual)
	assert.False(t, event.IsFree, "paid event should not be marked free")
	assert.Equal(t, "test-user-id", event.CreatedBy)
}

func TestCreateEventRequest_ToModel_FreeWhenNoFee(t *testing.T) {
	req := dto.CreateEventRequest{
		Name:        "Temple Ceremony",
		EventType:   model.TypeCeremony,
		Description: "Morning ceremony",
		StartDate:   "2026-11-02",
		Location:    "Chichod",
	}

	event, err := req.ToModel("test-user-id")

	assert.NoError(t, err)
	assert.True(t, event.IsFree, "zero entry fee implies a free event")
}

func TestCreateEventRequest_ToModel_DerivesStatus(t *testing.T) {
	tests := []struct {
		name       string
		startDate  string
		status     string
		wantStatus string
	}{
		{
			name:       "future event defaults to upcoming",
			startDate:  timezone.Now().AddDate(0, 2, 0).Format("2006-01-02"),
			wantStatus: model.StatusUpcoming,
		},
		{
			name:       "past event defaults to completed",
			startDate:  timezone.Now().AddDate(0, -2, 0).Format("2006-01-02"),
			wantStatus: model.StatusCompleted,
		},
		{
			name:       "explicit status wins",
			startDate:  timezone.Now().AddDate(0, 2, 0).Format("2006-01-02"),
			status:     model.StatusOngoing,
			wantStatus: model.StatusOngoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateEventRequest{
				Name:        "Chichod Fair",
				EventType:   model.TypeFair,
				Description: "Annual village fair",
				StartDate:   tt.startDate,
				Location:    "Chichod",
				Status:      tt.status,
			}

			event, err := req.ToModel("test-user-id")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, event.Status)
		})
	}
}

func TestCreateEventRequest_ToModel_InvalidDates(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{
			name: "bad start date",
			req:  dto.CreateEventRequest{StartDate: "02-11-2026"},
		},
		{
			name: "bad end date",
			req:  dto.CreateEventRequest{StartDate: "2026-11-02", EndDate: "05/11/2026"},
		},
		{
			name: "bad start time",
			req:  dto.CreateEventRequest{StartDate: "2026-11-02", StartTime: "9am"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToModel("test-user-id")
			assert.Error(t, err)
		})
	}
}

func TestUpdateEventRequest_DateFields(t *testing.T) {
	req := dto.UpdateEventRequest{
		StartDate: "2026-12-20",
		EndTime:   "18:30:00",
	}

	fields, err := req.DateFields()

	assert.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, model.FieldStartDate)
	assert.Contains(t, fields, model.FieldEndTime)
	assert.NotContains(t, fields, model.FieldEndDate)
}

func TestUpdateEventRequest_DateFields_Invalid(t *testing.T) {
	req := dto.UpdateEventRequest{
		EndDate: "next week",
	}

	_, err := req.DateFields()
	assert.Error(t, err)
}

func TestEventResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	endDate := now.AddDate(0, 0, 3)
	eventModel := model.Event{
		ID:          "test-id",
		Name:        "Chichod Fair",
		EventType:   model.TypeFair,
		Description: "Annual village fair",
		StartDate:   now,
		EndDate:     &endDate,
		Location:    "Chichod",
		IsFree:      true,
		Status:      model.StatusOngoing,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.EventResponse
	response.FromModel(eventModel)

	assert.Equal(t, eventModel.ID, response.ID)
	assert.Equal(t, now.Format("2006-01-02"), response.StartDate)
	assert.NotNil(t, response.EndDate)
	assert.Equal(t, endDate.Format("2006-01-02"), *response.EndDate)
	assert.Nil(t, response.StartTime)
	assert.Equal(t, model.StatusOngoing, response.Status)
}

func TestGetEventsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	eventsList := []model.Event{
		{ID: "test-id-1", Name: "Chichod Fair", StartDate: now},
		{ID: "test-id-2", Name: "Temple Ceremony", StartDate: now},
	}

	var response dto.GetEventsResponse
	response.FromModels(eventsList, 12, 5)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Events, 2)
	assert.Equal(t, "test-id-1", response.Events[0].ID)
}
