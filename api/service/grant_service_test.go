// api/service/grant_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

// Duration validation happens before any store access, so the DAOs are not
// needed here.
func TestGrantAccess_RejectsNonPositiveDuration(t *testing.T) {
	svc := service.NewGrantService(nil, nil, nil, util.NewValidationUtil(), util.NewNotificationService(), util.NewEventBus())

	for _, minutes := range []int{0, -1, -60} {
		_, err := svc.GrantAccess(context.Background(), "adm-1", "stu-1", "file-1", minutes)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidGrantDuration)
	}
}
