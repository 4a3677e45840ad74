// api/access/policy_test.go
package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/access"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

func TestEvaluatePolicy(t *testing.T) {
	cases := []struct {
		role        model.Role
		sensitivity model.Sensitivity
		want        access.Decision
	}{
		{model.RoleAdmin, model.SensitivityPublic, access.Allow},
		{model.RoleAdmin, model.SensitivityInternal, access.Allow},
		{model.RoleAdmin, model.SensitivityConfidential, access.Allow},
		{model.RoleFaculty, model.SensitivityPublic, access.Allow},
		{model.RoleFaculty, model.SensitivityInternal, access.Allow},
		{model.RoleFaculty, model.SensitivityConfidential, access.Deny},
		{model.RoleStudent, model.SensitivityPublic, access.Allow},
		{model.RoleStudent, model.SensitivityInternal, access.Deny},
		{model.RoleStudent, model.SensitivityConfidential, access.Deny},
	}

	for _, tc := range cases {
		t.Run(string(tc.role)+"_"+string(tc.sensitivity), func(t *testing.T) {
			got, err := access.EvaluatePolicy(tc.role, tc.sensitivity)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluatePolicy_InvalidInputs(t *testing.T) {
	_, err := access.EvaluatePolicy(model.Role("SUPERUSER"), model.SensitivityPublic)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidRole)

	_, err = access.EvaluatePolicy(model.RoleAdmin, model.Sensitivity("TOP_SECRET"))
	assert.ErrorIs(t, err, echo_errors.ErrInvalidSensitivity)
}

func TestReadableSensitivities(t *testing.T) {
	admin, err := access.ReadableSensitivities(model.RoleAdmin)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []model.Sensitivity{
		model.SensitivityPublic, model.SensitivityInternal, model.SensitivityConfidential,
	}, admin)

	faculty, err := access.ReadableSensitivities(model.RoleFaculty)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []model.Sensitivity{
		model.SensitivityPublic, model.SensitivityInternal,
	}, faculty)

	student, err := access.ReadableSensitivities(model.RoleStudent)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []model.Sensitivity{model.SensitivityPublic}, student)

	_, err = access.ReadableSensitivities(model.Role("SUPERUSER"))
	assert.ErrorIs(t, err, echo_errors.ErrInvalidRole)
}
