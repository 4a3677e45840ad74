// api/ledger/model.go
package ledger

import (
	"time"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// Entry is one append-only activity record: who touched which file, how,
// when, and from where. Entries are immutable once written.
type Entry struct {
	Timestamp time.Time    `json:"timestamp"`
	UserID    string       `json:"user_id"`
	FileID    string       `json:"file_id"`
	Action    model.Action `json:"action"`
	IPAddress string       `json:"ip_address,omitempty"`
}

// QueryFilter narrows an admin log listing. A nil Action means all actions;
// nil From/To leave that side of the range open.
type QueryFilter struct {
	Action *model.Action
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}
