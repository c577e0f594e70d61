package email

import (
	c "blogapi/internal/core/domain/common"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"context"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/goccy/go-json"
)

type templatedEmailSender interface {
	SendTemplatedEmail(ctx context.Context, params *ses.SendTemplatedEmailInput, optFns ...func(*ses.Options)) (*ses.SendTemplatedEmailOutput, error)
}

// EmailSender delivers password reset secrets through an SES template.
type EmailSender struct {
	ses templatedEmailSender
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return newEmailSender(ses.NewFromConfig(awsConfig), sender, passwordResetTemplate, passwordResetBaseUrl)
}

func newEmailSender(
	client templatedEmailSender,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                   client,
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *EmailSender) Notify(ctx context.Context, email c.Email, secret passwordreset.Secret) error {
	resetUrl := s.passwordResetBaseUrl
	query := resetUrl.Query()
	query.Set("email", string(email))
	query.Set("token", string(secret))
	resetUrl.RawQuery = query.Encode()

	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			Token:            string(secret),
			PasswordResetUrl: resetUrl.String(),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(email)},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type passwordResetTemplateParams struct {
	Token            string `json:"token"`
	PasswordResetUrl string `json:"passwordResetUrl"`
}
