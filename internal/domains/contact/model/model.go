package model

import "chiclon/shared/validator"

const (
	EntityName = "contact message"

	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"

	MessageSent = "Message sent! We'll get back to you soon."
)

var Schema = validator.FormSchema{
	Required: []string{FieldName, FieldEmail, FieldSubject, FieldMessage},
	Email:    []string{FieldEmail},
}

type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (m Message) Fields() map[string]string {
	return map[string]string{
		FieldName:    m.Name,
		FieldEmail:   m.Email,
		FieldSubject: m.Subject,
		FieldMessage: m.Body,
	}
}
