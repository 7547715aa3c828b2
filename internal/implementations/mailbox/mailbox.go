// Package mailbox delivers emails to a server-sent events stream instead of
// real inboxes. It is used in test mode.
package mailbox

import (
	"context"
	"encoding/json"
	"net/http"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/token"

	"github.com/r3labs/sse/v2"
)

const DefaultStream = "mailbox"

const (
	KindConfirmation  = "confirmation"
	KindPasswordReset = "password_reset"
)

type Message struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type Mailbox struct {
	sseServer *sse.Server
	stream    string
}

func New(sseServer *sse.Server, stream string) *Mailbox {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	sseServer.CreateStream(stream)
	return &Mailbox{sseServer: sseServer, stream: stream}
}

func (m *Mailbox) SendConfirmationToken(ctx context.Context, email c.Email, t token.Value) error {
	return m.publish(Message{Kind: KindConfirmation, Email: email.String(), Token: string(t)})
}

func (m *Mailbox) SendPasswordResetToken(ctx context.Context, email c.Email, t token.Value) error {
	return m.publish(Message{Kind: KindPasswordReset, Email: email.String(), Token: string(t)})
}

func (m *Mailbox) publish(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	m.sseServer.Publish(m.stream, &sse.Event{Data: data})
	return nil
}

// Handler subscribes the client to the mailbox stream.
func (m *Mailbox) Handler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		r = r.Clone(r.Context())
		query := r.URL.Query()
		query.Set("stream", m.stream)
		r.URL.RawQuery = query.Encode()
		m.sseServer.ServeHTTP(rw, r)
	})
}
