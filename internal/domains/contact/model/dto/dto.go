package dto

import (
	"strings"

	"chiclon/internal/domains/contact/model"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactRequest) ToModel() model.Message {
	return model.Message{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Body:    strings.TrimSpace(r.Message),
	}
}
