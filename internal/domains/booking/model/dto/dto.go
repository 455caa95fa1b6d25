package dto

import (
	"time"

	"chiclon/internal/domains/booking/model"
)

type BookRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	HaircutType string `json:"haircutType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
}

func (r *BookRequest) ToModel() model.Request {
	return model.RequestFromFields(model.Request{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		HaircutType: r.HaircutType,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}.Fields())
}

func (r *BookRequest) FromModel(req model.Request) {
	r.Name = req.Name
	r.Phone = req.Phone
	r.Email = req.Email
	r.HaircutType = req.HaircutType
	r.Date = req.Date
	r.Time = req.Time
	r.Notes = req.Notes
}

type AppointmentResponse struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	HaircutType string `json:"haircutType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	TimeLabel   string `json:"timeLabel,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

func (r *AppointmentResponse) FromModel(confirmation model.Confirmation) {
	r.ID = confirmation.ID
	r.Name = confirmation.Name
	r.Phone = confirmation.Phone
	r.Email = confirmation.Email
	r.HaircutType = confirmation.HaircutType
	r.Date = confirmation.Date
	r.Time = confirmation.Time
	r.TimeLabel = confirmation.TimeLabel
	r.Notes = confirmation.Notes
	r.Timestamp = confirmation.Timestamp.UTC().Format(time.RFC3339)
}

// ToModel reads an echoed appointment back into a request. Empty echoed fields keep the submitted value.
func (r *AppointmentResponse) ToModel(submitted model.Request) model.Request {
	merged := submitted.Fields()

	for key, value := range (model.Request{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		HaircutType: r.HaircutType,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}).Fields() {
		if value != "" {
			merged[key] = value
		}
	}

	return model.RequestFromFields(merged)
}

type BookResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message,omitempty"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}
