package main

import "onboarding/internal/config"

type template struct {
	name    string
	subject string
	html    string
	text    string
}

// Placeholders must match the params sent by the email sender.
func templates(cfg *config.Config) []template {
	return []template{
		{
			name:    cfg.AwsEmailConfirmationTemplate,
			subject: "Confirm your email",
			html: `<p>Welcome!</p>
<p>Your confirmation code is <b>{{confirmationCode}}</b>.</p>
<p>Or just follow the link: <a href="{{confirmationUrl}}">{{confirmationUrl}}</a></p>
<p>The code is valid for 24 hours.</p>`,
			text: "Welcome! Your confirmation code is {{confirmationCode}}.\n" +
				"Or just follow the link: {{confirmationUrl}}\n" +
				"The code is valid for 24 hours.",
		},
		{
			name:    cfg.AwsEmailPasswordResetTemplate,
			subject: "Reset your password",
			html: `<p>Somebody requested a password reset for your account.</p>
<p>Follow the link to choose a new password: <a href="{{passwordResetUrl}}">{{passwordResetUrl}}</a></p>
<p>If it was not you, just ignore this email.</p>`,
			text: "Somebody requested a password reset for your account.\n" +
				"Follow the link to choose a new password: {{passwordResetUrl}}\n" +
				"If it was not you, just ignore this email.",
		},
	}
}
