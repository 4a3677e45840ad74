// api/util/validation_util_test.go
package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

func validFile() model.AcademicFile {
	return model.AcademicFile{
		FileName:    "notes.pdf",
		Department:  "CSE",
		Year:        2,
		Semester:    4,
		Subject:     "Algorithms",
		Category:    model.CategoryNotes,
		Sensitivity: model.SensitivityInternal,
		UploadedBy:  "fac-1",
	}
}

func TestValidateFile(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateFile(validFile()))

	cases := []struct {
		name   string
		mutate func(*model.AcademicFile)
	}{
		{"empty_name", func(f *model.AcademicFile) { f.FileName = "" }},
		{"bad_category", func(f *model.AcademicFile) { f.Category = "HOMEWORK" }},
		{"bad_sensitivity", func(f *model.AcademicFile) { f.Sensitivity = "SECRET" }},
		{"year_too_low", func(f *model.AcademicFile) { f.Year = 0 }},
		{"year_too_high", func(f *model.AcademicFile) { f.Year = 5 }},
		{"semester_too_low", func(f *model.AcademicFile) { f.Semester = 0 }},
		{"semester_too_high", func(f *model.AcademicFile) { f.Semester = 9 }},
		{"no_subject", func(f *model.AcademicFile) { f.Subject = "" }},
		{"no_uploader", func(f *model.AcademicFile) { f.UploadedBy = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFile()
			tc.mutate(&f)
			assert.Error(t, v.ValidateFile(f))
		})
	}
}

func TestValidateUser(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateUser(model.User{Name: "A Student", Email: "a@univ.edu", Role: model.RoleStudent}))
	assert.Error(t, v.ValidateUser(model.User{Name: "", Email: "a@univ.edu", Role: model.RoleStudent}))
	assert.Error(t, v.ValidateUser(model.User{Name: "A", Email: "not-an-email", Role: model.RoleStudent}))
	assert.Error(t, v.ValidateUser(model.User{Name: "A", Email: "a@univ.edu", Role: "SUPERUSER"}))
}

func TestValidateGrantDuration(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateGrantDuration(1))
	assert.NoError(t, v.ValidateGrantDuration(30))
	assert.Error(t, v.ValidateGrantDuration(0))
	assert.Error(t, v.ValidateGrantDuration(-10))
}
