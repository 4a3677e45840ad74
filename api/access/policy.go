// api/access/policy.go
package access

import (
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// Decision is the outcome of the static sensitivity policy.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "ALLOW"
	}
	return "DENY"
}

// EvaluatePolicy is the static role-vs-sensitivity rule table for read
// access (VIEW and DOWNLOAD). It is a pure function: no clock, no grants,
// no side effects. Delete uses the ownership rule in the engine instead.
//
//	            PUBLIC   INTERNAL  CONFIDENTIAL
//	ADMIN       ALLOW    ALLOW     ALLOW
//	FACULTY     ALLOW    ALLOW     DENY
//	STUDENT     ALLOW    DENY      DENY
//
// A role or sensitivity outside the declared domain is a caller contract
// violation and fails with an invalid-input error rather than a DENY.
func EvaluatePolicy(role model.Role, sensitivity model.Sensitivity) (Decision, error) {
	if !role.Valid() {
		return Deny, echo_errors.ErrInvalidRole
	}
	if !sensitivity.Valid() {
		return Deny, echo_errors.ErrInvalidSensitivity
	}

	switch role {
	case model.RoleAdmin:
		return Allow, nil
	case model.RoleFaculty:
		if sensitivity == model.SensitivityConfidential {
			return Deny, nil
		}
		return Allow, nil
	case model.RoleStudent:
		if sensitivity == model.SensitivityPublic {
			return Allow, nil
		}
		return Deny, nil
	}

	// Unreachable: role.Valid() covers the enum.
	return Deny, echo_errors.ErrInvalidRole
}

// ReadableSensitivities returns the tiers a role may list without a grant,
// used to scope browse queries the same way the decision table scopes
// individual reads.
func ReadableSensitivities(role model.Role) ([]model.Sensitivity, error) {
	switch role {
	case model.RoleAdmin:
		return []model.Sensitivity{model.SensitivityPublic, model.SensitivityInternal, model.SensitivityConfidential}, nil
	case model.RoleFaculty:
		return []model.Sensitivity{model.SensitivityPublic, model.SensitivityInternal}, nil
	case model.RoleStudent:
		return []model.Sensitivity{model.SensitivityPublic}, nil
	}
	return nil, echo_errors.ErrInvalidRole
}
