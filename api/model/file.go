// api/model/file.go
package model

import "time"

// AcademicFile is the metadata record for an uploaded file. The payload
// itself lives in the blob store under StoragePath. Sensitivity is fixed at
// upload time; DownloadCount only ever moves forward, and only through the
// atomic increment in the file DAO.
type AcademicFile struct {
	ID            string      `json:"id"`
	FileName      string      `json:"file_name"`
	StoragePath   string      `json:"-"`
	Department    string      `json:"department,omitempty"`
	Year          int         `json:"year"`
	Semester      int         `json:"semester"`
	Subject       string      `json:"subject"`
	Unit          string      `json:"unit,omitempty"`
	Category      Category    `json:"category"`
	Sensitivity   Sensitivity `json:"sensitivity"`
	FileSize      int64       `json:"file_size"`
	DownloadCount int64       `json:"download_count"`
	UploadedBy    string      `json:"uploaded_by"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// FileSearchCriteria narrows file listings. Sensitivities is the set a
// caller's role is allowed to see; empty means no sensitivity filter.
type FileSearchCriteria struct {
	Sensitivities []Sensitivity `json:"sensitivities,omitempty"`
	Department    string        `json:"department,omitempty"`
	UploadedBy    string        `json:"uploaded_by,omitempty"`
	Limit         int           `json:"limit,omitempty"`
	Offset        int           `json:"offset,omitempty"`
}
