package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r := NewTemplateRenderer()
	subject, html, text, err := r.Render(TemplateWelcome, &domain.WelcomeMessageEmailData{
		Email:     "ada@example.com",
		FirstName: "Ada <script>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Berlin Dancemode, Ada <script>", subject)
	assert.Contains(t, html, "Ada &lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, text, "ada@example.com")
}

func TestTemplateRenderer_RegistrationConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.RegistrationEmailData{
		Email:          "ada@example.com",
		FirstName:      "Ada",
		RegistrationID: "reg-1",
		EventTitle:     "Berghain Masterclass",
		Status:         "Pending",
	}
	subject, html, text, err := r.Render(TemplateRegistrationConfirmation, data)
	require.NoError(t, err)
	assert.Equal(t, "Registration received: Berghain Masterclass", subject)
	assert.Contains(t, html, "reg-1")
	assert.Contains(t, text, "Event: Berghain Masterclass")
	assert.NotContains(t, text, "Package:")

	data.EventTitle = ""
	data.PackageName = "VIP Scene Access"
	subject, _, text, err = r.Render(TemplateRegistrationConfirmation, data)
	require.NoError(t, err)
	assert.Equal(t, "Registration received", subject)
	assert.Contains(t, text, "Package: VIP Scene Access")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
}
