package entities

import "time"

// OtpChallenge is the ephemeral per-customer authorization challenge that must
// be verified before a batch submission runs.
//
// Storage model (DynamoDB):
//   - PK: customer_code (one live challenge per customer; re-request replaces)
//   - TTL on expires_at
//
// A verified challenge is single-use: the sequencer consumes it when the batch
// starts.

type OtpChallenge struct {
	CustomerCode string    `json:"customer_code"`
	Code         string    `json:"-"`
	Verified     bool      `json:"verified"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports whether the challenge is past its validity window.
func (c OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
