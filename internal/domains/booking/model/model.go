package model

import (
	"time"

	"chiclon/shared/validator"
)

const (
	EntityName = "appointment"

	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldHaircutType = "haircutType"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldNotes       = "notes"

	MessageBooked = "Appointment booked successfully!"
)

// DefaultRequiredFields is the order in which missing fields are reported.
var DefaultRequiredFields = []string{FieldName, FieldPhone, FieldHaircutType, FieldDate, FieldTime}

// Schema builds the form schema for a booking. An empty required list falls back to DefaultRequiredFields.
func Schema(required []string) validator.FormSchema {
	if len(required) == 0 {
		required = DefaultRequiredFields
	}

	return validator.FormSchema{
		Required: required,
		Email:    []string{FieldEmail},
		Phone:    []string{FieldPhone},
	}
}

// Request is a booking as the client submitted it.
type Request struct {
	Name        string
	Phone       string
	Email       string
	HaircutType string
	Date        string
	Time        string
	Notes       string
}

func (r Request) Fields() map[string]string {
	return map[string]string{
		FieldName:        r.Name,
		FieldPhone:       r.Phone,
		FieldEmail:       r.Email,
		FieldHaircutType: r.HaircutType,
		FieldDate:        r.Date,
		FieldTime:        r.Time,
		FieldNotes:       r.Notes,
	}
}

// RequestFromFields is the inverse of Request.Fields. Values are trimmed.
func RequestFromFields(fields map[string]string) Request {
	fields = validator.Normalize(fields)

	return Request{
		Name:        fields[FieldName],
		Phone:       fields[FieldPhone],
		Email:       fields[FieldEmail],
		HaircutType: fields[FieldHaircutType],
		Date:        fields[FieldDate],
		Time:        fields[FieldTime],
		Notes:       fields[FieldNotes],
	}
}

// Confirmation is an accepted booking as it is handed to the delivery backend.
type Confirmation struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	HaircutType string
	HaircutCode string
	Date        string
	Time        string
	TimeLabel   string
	Notes       string
	Start       time.Time
	Timestamp   time.Time
}
