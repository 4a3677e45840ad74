// api/model/enums_test.go
package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"ADMIN", "FACULTY", "STUDENT"} {
		role, err := model.ParseRole(raw)
		assert.NoError(t, err)
		assert.True(t, role.Valid())
	}

	_, err := model.ParseRole("admin")
	assert.Error(t, err, "role parsing is case sensitive")

	_, err = model.ParseRole("SUPERUSER")
	assert.Error(t, err)
}

func TestParseSensitivity(t *testing.T) {
	for _, raw := range []string{"PUBLIC", "INTERNAL", "CONFIDENTIAL"} {
		sensitivity, err := model.ParseSensitivity(raw)
		assert.NoError(t, err)
		assert.True(t, sensitivity.Valid())
	}

	_, err := model.ParseSensitivity("SECRET")
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"VIEW", "DOWNLOAD", "DELETE", "UPLOAD"} {
		_, err := model.ParseAction(raw)
		assert.NoError(t, err)
	}

	_, err := model.ParseAction("READ")
	assert.Error(t, err)
}

func TestGrantActive(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	grant := model.TemporaryAccess{ExpiresAt: now.Add(time.Minute)}

	assert.True(t, grant.Active(now))
	assert.False(t, grant.Active(now.Add(time.Minute)), "a grant expiring at this exact instant is no longer active")
	assert.False(t, grant.Active(now.Add(2*time.Minute)))
}
