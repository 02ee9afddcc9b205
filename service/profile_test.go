package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	name, err := ValidateUsername("John Smith", "  Jane Doe ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	_, err = ValidateUsername("John Smith", "   ")
	assert.ErrorIs(t, err, ErrUsernameEmpty)
	_, err = ValidateUsername("John Smith", "John Smith")
	assert.ErrorIs(t, err, ErrUsernameUnchanged)
	_, err = ValidateUsername("John Smith", "John Smith ")
	assert.ErrorIs(t, err, ErrUsernameUnchanged)
}

func TestValidatePasswordChange(t *testing.T) {
	assert.NoError(t, ValidatePasswordChange("old", "sunshine1", "sunshine1"))
	assert.ErrorIs(t, ValidatePasswordChange("", "sunshine1", "sunshine1"), ErrCurrentPassword)
	assert.ErrorIs(t, ValidatePasswordChange("old", "short", "short"), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePasswordChange("old", "sunshine1", "sunshine2"), ErrPasswordMismatch)
	assert.NoError(t, ValidatePasswordChange("old", "12345678", "12345678"))
}

func TestDoNotDisturb(t *testing.T) {
	dnd := DefaultDoNotDisturb()
	assert.NoError(t, dnd.Validate())
	assert.Equal(t, "Currently inactive", dnd.Summary())

	dnd.Enabled = true
	assert.Equal(t, "Active from 14:00 to 16:00", dnd.Summary())

	dnd.Until = "13:00"
	assert.ErrorIs(t, dnd.Validate(), ErrQuietHours)
	dnd.Until = "25:00"
	assert.Error(t, dnd.Validate())
}
