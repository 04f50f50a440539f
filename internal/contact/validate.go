package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"naukariwala-site/internal/domain"
)

// FieldErrors maps a form field name to what is wrong with it.
type FieldErrors map[string]string

func (fe FieldErrors) OK() bool { return len(fe) == 0 }

// Normalize trims every field.
func Normalize(m domain.Message) domain.Message {
	return domain.Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate expects an already normalized message.
func Validate(m domain.Message, maxMessageLen int) FieldErrors {
	fe := FieldErrors{}

	if m.Name == "" {
		fe["name"] = "Please enter your name."
	}
	if m.Email == "" {
		fe["email"] = "Please enter your email address."
	} else if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		fe["email"] = "Please enter a valid email address."
	}
	if m.Subject == "" {
		fe["subject"] = "Please enter a subject."
	}
	switch {
	case m.Message == "":
		fe["message"] = "Please enter a message."
	case maxMessageLen > 0 && utf8.RuneCountInString(m.Message) > maxMessageLen:
		fe["message"] = "Message is too long."
	}
	return fe
}
