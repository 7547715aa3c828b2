package email

import (
	"context"
	"encoding/json"
	"net/url"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/token"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesClient interface {
	SendTemplatedEmail(
		ctx context.Context,
		params *ses.SendTemplatedEmailInput,
		optFns ...func(*ses.Options),
	) (*ses.SendTemplatedEmailOutput, error)
}

type Settings struct {
	// This address must be verified with Amazon SES.
	Sender                string
	ConfirmationTemplate  string
	ConfirmationUrl       url.URL
	PasswordResetTemplate string
	PasswordResetBaseUrl  url.URL
}

type EmailSender struct {
	ses      sesClient
	settings Settings
}

func NewEmailSender(awsConfig aws.Config, settings Settings) *EmailSender {
	return newEmailSender(ses.NewFromConfig(awsConfig), settings)
}

func newEmailSender(client sesClient, settings Settings) *EmailSender {
	return &EmailSender{ses: client, settings: settings}
}

func (s *EmailSender) SendConfirmationToken(ctx context.Context, email c.Email, t token.Value) error {
	confirmationUrl := s.settings.ConfirmationUrl
	query := confirmationUrl.Query()
	query.Set("email", email.String())
	query.Set("token", string(t))
	confirmationUrl.RawQuery = query.Encode()

	return s.send(
		ctx,
		email,
		s.settings.ConfirmationTemplate,
		confirmationTemplateParams{
			ConfirmationCode: string(t),
			ConfirmationUrl:  confirmationUrl.String(),
		},
	)
}

func (s *EmailSender) SendPasswordResetToken(ctx context.Context, email c.Email, t token.Value) error {
	resetUrl := s.settings.PasswordResetBaseUrl.JoinPath(string(t))
	query := resetUrl.Query()
	query.Set("email", email.String())
	resetUrl.RawQuery = query.Encode()

	return s.send(
		ctx,
		email,
		s.settings.PasswordResetTemplate,
		passwordResetTemplateParams{PasswordResetUrl: resetUrl.String()},
	)
}

func (s *EmailSender) send(ctx context.Context, email c.Email, template string, params interface{}) error {
	templateParamsBytes, err := json.Marshal(params)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: aws.String(s.settings.Sender),
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email.String()},
			},
			Template:     aws.String(template),
			TemplateData: &templateParams,
		},
	)
	return err
}

type confirmationTemplateParams struct {
	ConfirmationCode string `json:"confirmationCode"`
	ConfirmationUrl  string `json:"confirmationUrl"`
}

type passwordResetTemplateParams struct {
	PasswordResetUrl string `json:"passwordResetUrl"`
}
