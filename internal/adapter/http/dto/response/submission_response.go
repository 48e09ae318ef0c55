package response

import (
	"time"

	"fieldserve/internal/domain/entities"
)

type ProgressEntryResponse struct {
	RecordID string `json:"record_id,omitempty"`
	Outcome  string `json:"outcome"`
	Message  string `json:"message"`
	Current  int    `json:"current"`
	Total    int    `json:"total"`
}

type SubmissionBatchResponse struct {
	ID           string                  `json:"id"`
	CustomerCode string                  `json:"customer_code"`
	EngineerCode string                  `json:"engineer_code"`
	RecordIDs    []string                `json:"record_ids"`
	Status       string                  `json:"status"`
	Log          []ProgressEntryResponse `json:"log"`
	NotifiedOK   bool                    `json:"notified_ok"`
	CreatedAt    time.Time               `json:"created_at"`
	FinishedAt   *time.Time              `json:"finished_at,omitempty"`
}

func FromSubmissionBatch(b entities.SubmissionBatch) SubmissionBatchResponse {
	logEntries := make([]ProgressEntryResponse, 0, len(b.Log))
	for _, e := range b.Log {
		logEntries = append(logEntries, ProgressEntryResponse{
			RecordID: e.RecordID,
			Outcome:  string(e.Outcome),
			Message:  e.Message,
			Current:  e.Current,
			Total:    e.Total,
		})
	}
	resp := SubmissionBatchResponse{
		ID:           b.ID,
		CustomerCode: b.CustomerCode,
		EngineerCode: b.EngineerCode,
		RecordIDs:    b.RecordIDs,
		Status:       string(b.Status),
		Log:          logEntries,
		NotifiedOK:   b.NotifiedOK,
		CreatedAt:    b.CreatedAt,
	}
	if !b.FinishedAt.IsZero() {
		t := b.FinishedAt
		resp.FinishedAt = &t
	}
	return resp
}
