package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	verr, ok := As(err)
	require.True(t, ok, "expected a *ValidationError, got %v", err)

	names := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		names = append(names, fe.Field)
	}

	return names
}

func TestStructValid(t *testing.T) {
	err := Struct(&models.InsertContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hello there",
		Message: "This message is long enough to pass.",
	})
	assert.NoError(t, err)
}

func TestStructContactMessageFields(t *testing.T) {
	testCases := []struct {
		name         string
		insert       models.InsertContactMessage
		wantedFields []string
	}{
		{
			name:         "everything missing",
			insert:       models.InsertContactMessage{},
			wantedFields: []string{"name", "email", "subject", "message"},
		},
		{
			name: "short name",
			insert: models.InsertContactMessage{
				Name:    "A",
				Email:   "a@example.com",
				Subject: "Subject",
				Message: "A message that is long enough.",
			},
			wantedFields: []string{"name"},
		},
		{
			name: "bad email",
			insert: models.InsertContactMessage{
				Name:    "Alice",
				Email:   "not-an-email",
				Subject: "Subject",
				Message: "A message that is long enough.",
			},
			wantedFields: []string{"email"},
		},
		{
			name: "short message",
			insert: models.InsertContactMessage{
				Name:    "Alice",
				Email:   "a@example.com",
				Subject: "Subject",
				Message: "short",
			},
			wantedFields: []string{"message"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(&tc.insert)
			require.Error(t, err)
			assert.ElementsMatch(t, tc.wantedFields, fieldNames(t, err))
		})
	}
}

func TestStructSkillConstraints(t *testing.T) {
	testCases := []struct {
		name        string
		insert      models.InsertSkill
		wantedField string
		wantedMsg   string
	}{
		{
			name:        "unknown type",
			insert:      models.InsertSkill{Name: "Go", Percentage: 50, Type: "wizardry"},
			wantedField: "type",
			wantedMsg:   "must be one of: technical, soft",
		},
		{
			name:        "percentage too high",
			insert:      models.InsertSkill{Name: "Go", Percentage: 120, Type: "technical"},
			wantedField: "percentage",
			wantedMsg:   "must be 100 or less",
		},
		{
			name:        "percentage negative",
			insert:      models.InsertSkill{Name: "Go", Percentage: -5, Type: "technical"},
			wantedField: "percentage",
			wantedMsg:   "must be 0 or more",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(&tc.insert)
			require.Error(t, err)

			verr, ok := As(err)
			require.True(t, ok)
			require.Len(t, verr.Errors, 1)
			assert.Equal(t, tc.wantedField, verr.Errors[0].Field)
			assert.Equal(t, tc.wantedMsg, verr.Errors[0].Message)
		})
	}
}

func TestStructPartialUpdateSkipsUnsetFields(t *testing.T) {
	// a fully empty partial update is valid
	assert.NoError(t, Struct(&models.UpdateSkill{}))

	// but a set field still gets checked
	bad := "wizardry"
	err := Struct(&models.UpdateSkill{Type: &bad})
	require.Error(t, err)
	assert.Equal(t, []string{"type"}, fieldNames(t, err))
}

func TestValidationErrorMessage(t *testing.T) {
	err := Struct(&models.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed:")
	assert.Contains(t, err.Error(), "username is required")
}
