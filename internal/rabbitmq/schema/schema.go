package schema

import (
	"encoding/json"
	"fmt"
)

type EmailKind string

const (
	EmailConfirmation  EmailKind = "confirmation"
	EmailPasswordReset EmailKind = "password_reset"
)

// Email is a request to deliver a token to an address.
type Email struct {
	Kind  EmailKind `json:"kind"`
	To    string    `json:"to"`
	Token string    `json:"token"`
}

func (e *Email) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Email) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, e); err != nil {
		return err
	}
	switch e.Kind {
	case EmailConfirmation, EmailPasswordReset:
	default:
		return fmt.Errorf("unknown email kind %q", e.Kind)
	}
	if e.To == "" || e.Token == "" {
		return fmt.Errorf("email message is incomplete")
	}
	return nil
}
