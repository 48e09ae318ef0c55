package entities

import "time"

// WizardSession is one in-progress checklist walk for a single record.
//
// Sessions are held in memory only: abandoning a session discards its answers
// and re-opening the wizard starts over. The measurement buffer is transient
// and cleared whenever the index changes.

type WizardSession struct {
	ID                string          `json:"id"`
	RecordID          string          `json:"record_id"`
	Items             []ChecklistItem `json:"items"`
	CurrentIndex      int             `json:"current_index"`
	MeasurementBuffer string          `json:"measurement_buffer,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// InReview reports whether every item has been visited and the session is in
// its terminal review state.
func (s WizardSession) InReview() bool {
	return s.CurrentIndex == len(s.Items)
}
