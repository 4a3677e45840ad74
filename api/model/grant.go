// api/model/grant.go
package model

import "time"

// TemporaryAccess is a time-bound exception that lets a specific user read a
// specific file despite a DENY from the sensitivity policy. Grants are
// create-only: they expire by clock comparison and are never updated or
// revoked early.
type TemporaryAccess struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FileID    string    `json:"file_id"`
	ExpiresAt time.Time `json:"expires_at"`
	GrantedBy string    `json:"granted_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the grant is live at the given instant. Expiry is
// exclusive: a grant expiring exactly at now is no longer active.
func (t TemporaryAccess) Active(now time.Time) bool {
	return t.ExpiresAt.After(now)
}
