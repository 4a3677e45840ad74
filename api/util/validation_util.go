// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

// Struct runs tag-based validation for request payload structs bound by the
// controllers.
func (v *ValidationUtil) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func (v *ValidationUtil) ValidateFile(file model.AcademicFile) error {
	if file.FileName == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if _, err := model.ParseCategory(string(file.Category)); err != nil {
		return err
	}
	if _, err := model.ParseSensitivity(string(file.Sensitivity)); err != nil {
		return err
	}
	if file.Year < 1 || file.Year > 4 {
		return fmt.Errorf("year must be between 1 and 4")
	}
	if file.Semester < 1 || file.Semester > 8 {
		return fmt.Errorf("semester must be between 1 and 8")
	}
	if file.Subject == "" {
		return fmt.Errorf("subject cannot be empty")
	}
	if file.UploadedBy == "" {
		return fmt.Errorf("file must have an uploader")
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if err := v.validate.Var(user.Email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	if _, err := model.ParseRole(string(user.Role)); err != nil {
		return err
	}
	return nil
}

func (v *ValidationUtil) ValidateGrantDuration(durationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("grant duration must be positive, got %d", durationMinutes)
	}
	return nil
}
