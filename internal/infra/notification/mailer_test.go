package notification

import (
	"testing"

	"medishare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate_ApprovedRequester(t *testing.T) {
	subject, body, err := renderTemplate(service.TemplateRequestApprovedRequester, map[string]string{
		"requester_name": "Amira",
		"medicine_name":  "Paracetamol 500mg",
		"quantity":       "20",
		"donor_name":     "City Pharmacy",
		"donor_email":    "pharmacy@example.com",
		"donor_phone":    "+30 210 0000000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Your medicine request was approved", subject)
	assert.Contains(t, body, "Paracetamol 500mg")
	assert.Contains(t, body, "pharmacy@example.com")
	assert.Contains(t, body, "+30 210 0000000")
}

func TestRenderTemplate_OmitsEmptyOptionalFields(t *testing.T) {
	_, body, err := renderTemplate(service.TemplateRequestApprovedDonor, map[string]string{
		"donor_name":      "City Pharmacy",
		"medicine_name":   "Insulin",
		"requester_name":  "Amira",
		"requester_email": "amira@example.com",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "Phone:")
}

func TestRenderTemplate_UnknownKind(t *testing.T) {
	_, _, err := renderTemplate(service.TemplateKind("bogus"), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mail template")
}
