package email

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/dangerclosesec/ukmhub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFor(t *testing.T) {
	cfg := &config.Config{}
	_, err := ProviderFor(cfg)
	assert.ErrorIs(t, err, ErrNotConfigured)

	cfg.SMTP.Host = "smtp.example.com"
	p, err := ProviderFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, ProviderSMTP, p)

	cfg.Sendgrid.APIKey = "SG.key"
	p, err = ProviderFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, ProviderSendgrid, p)
}

func TestRenderRegistrationDecision(t *testing.T) {
	s, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	html, text, err := s.renderTemplate("registration_decision", map[string]interface{}{
		"Nama":     "Budi",
		"Accepted": true,
		"Type":     "anggota",
		"UKMNama":  "Pecinta Alam",
		"WAGroup":  "https://chat.whatsapp.com/abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Halo Budi")
	assert.Contains(t, html, "diterima")
	assert.Contains(t, text, "https://chat.whatsapp.com/abc")
	assert.NotContains(t, text, "&lt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	s, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	_, _, err = s.renderTemplate("missing", nil)
	assert.Error(t, err)
}

func TestLoadTemplatesRequiresBothParts(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/emails/broken/html.tmpl": {Data: []byte("<p>{{.}}</p>")},
	}

	s := &Service{Templates: make(map[string]*Template)}
	assert.Error(t, s.loadTemplates(fsys))
}

func TestSMTPRequiresSender(t *testing.T) {
	s, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	err = s.SendEmail(context.Background(), EmailData{
		To:           "budi@example.com",
		TemplateName: "registration_decision",
		TemplateData: map[string]interface{}{"Nama": "Budi"},
	})
	assert.EqualError(t, err, "missing sender email address (From)")
}
