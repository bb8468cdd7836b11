package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog"

	"eventbooking/internal/domain"
)

// Providers accepted by NewMailer.
const (
	ProviderSES  = "ses"
	ProviderNoop = "noop"
)

// SESConfig holds the AWS settings of the SES provider.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig selects and configures a mail provider.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// sender returns the Source header, with the display name when one is set.
func (c MailerConfig) sender() string {
	if c.FromName == "" {
		return c.FromAddress
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromAddress)
}

// sesAPI is the part of the SES client the mailer calls.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer builds the mailer for cfg.Provider. An empty or unknown provider
// falls back to a mailer that only logs.
func NewMailer(cfg MailerConfig, logger zerolog.Logger) (domain.Mailer, error) {
	logger = logger.With().Str("component", "mailer").Logger()
	switch cfg.Provider {
	case ProviderSES:
		if cfg.FromAddress == "" {
			return nil, fmt.Errorf("ses mailer: from address is required")
		}
		return &sesMailer{
			client: ses.NewFromConfig(awsConfig(cfg.SES, logger)),
			source: cfg.sender(),
			logger: logger,
		}, nil
	case ProviderNoop, "":
	default:
		logger.Warn().Str("provider", cfg.Provider).Msg("unknown email provider, using noop")
	}
	return &noopMailer{logger: logger}, nil
}

func awsConfig(c SESConfig, logger zerolog.Logger) aws.Config {
	if c.InsecureSkipVerify {
		logger.Warn().Msg("TLS certificate verification is disabled for SES, use only in development")
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.InsecureSkipVerify,
			MinVersion:         tls.VersionTLS12,
		},
	}
	return aws.Config{
		Region:      c.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")),
		HTTPClient:  &http.Client{Transport: transport},
	}
}

type sesMailer struct {
	client sesAPI
	source string
	logger zerolog.Logger
}

func utf8(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}

func (m *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = utf8(html)
	}
	if text != "" {
		body.Text = utf8(text)
	}
	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message:     &types.Message{Subject: utf8(subject), Body: body},
	})
	if err != nil {
		return fmt.Errorf("send email via SES: %w", err)
	}
	m.logger.Info().Str("message_id", aws.ToString(out.MessageId)).Msg("email sent")
	return nil
}

type noopMailer struct {
	logger zerolog.Logger
}

func (m *noopMailer) Send(_ context.Context, to, subject, _, _ string) error {
	m.logger.Debug().Str("to", to).Str("subject", subject).Msg("email not sent (noop provider)")
	return nil
}
