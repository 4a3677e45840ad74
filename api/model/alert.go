// api/model/alert.go
package model

import "time"

type Alert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason"`
	Severity  Severity  `json:"severity"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}

// AlertSummary aggregates an alert listing for the admin console.
type AlertSummary struct {
	High        int `json:"high"`
	Medium      int `json:"medium"`
	Low         int `json:"low"`
	UniqueUsers int `json:"unique_users"`
}
