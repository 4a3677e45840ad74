// api/model/enums.go
package model

import "fmt"

// Role is the closed set of user roles. Authorization tables in the access
// package are exhaustive over these values; anything else is rejected at the
// boundary with an invalid-input error.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleFaculty Role = "FACULTY"
	RoleStudent Role = "STUDENT"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Sensitivity is the file classification tier, ordered by increasing
// restriction: PUBLIC < INTERNAL < CONFIDENTIAL. Immutable after upload.
type Sensitivity string

const (
	SensitivityPublic       Sensitivity = "PUBLIC"
	SensitivityInternal     Sensitivity = "INTERNAL"
	SensitivityConfidential Sensitivity = "CONFIDENTIAL"
)

func ParseSensitivity(s string) (Sensitivity, error) {
	switch Sensitivity(s) {
	case SensitivityPublic, SensitivityInternal, SensitivityConfidential:
		return Sensitivity(s), nil
	}
	return "", fmt.Errorf("invalid sensitivity %q", s)
}

func (s Sensitivity) Valid() bool {
	_, err := ParseSensitivity(string(s))
	return err == nil
}

// Category classifies the academic content of a file.
type Category string

const (
	CategoryNotes         Category = "NOTES"
	CategoryQuestionPaper Category = "QUESTION_PAPER"
	CategoryMarksheet     Category = "MARKSHEET"
	CategoryAssignment    Category = "ASSIGNMENT"
	CategoryLab           Category = "LAB"
	CategoryOther         Category = "OTHER"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryNotes, CategoryQuestionPaper, CategoryMarksheet,
		CategoryAssignment, CategoryLab, CategoryOther:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid category %q", s)
}

// Action is the kind of file access event recorded in the activity ledger.
type Action string

const (
	ActionView     Action = "VIEW"
	ActionDownload Action = "DOWNLOAD"
	ActionDelete   Action = "DELETE"
	ActionUpload   Action = "UPLOAD"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionView, ActionDownload, ActionDelete, ActionUpload:
		return Action(s), nil
	}
	return "", fmt.Errorf("invalid action %q", s)
}

// Severity grades an alert. Only HIGH is emitted automatically by the
// download-burst detector; MEDIUM and LOW are reserved for manual rules.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), nil
	}
	return "", fmt.Errorf("invalid severity %q", s)
}
