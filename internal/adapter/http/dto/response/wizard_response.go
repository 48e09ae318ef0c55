package response

import (
	"time"

	"fieldserve/internal/domain/entities"
)

// WizardSessionResponse is the full session snapshot returned after every
// wizard operation. InReview signals the terminal state where CurrentItem is
// absent and the answer summary is shown instead.
type WizardSessionResponse struct {
	SessionID         string                  `json:"session_id"`
	RecordID          string                  `json:"record_id"`
	Items             []ChecklistItemResponse `json:"items"`
	CurrentIndex      int                     `json:"current_index"`
	CurrentItem       *ChecklistItemResponse  `json:"current_item,omitempty"`
	MeasurementBuffer string                  `json:"measurement_buffer,omitempty"`
	InReview          bool                    `json:"in_review"`
}

func FromWizardSession(s entities.WizardSession) WizardSessionResponse {
	resp := WizardSessionResponse{
		SessionID:         s.ID,
		RecordID:          s.RecordID,
		Items:             FromChecklistItems(s.Items),
		CurrentIndex:      s.CurrentIndex,
		MeasurementBuffer: s.MeasurementBuffer,
		InReview:          s.InReview(),
	}
	if !resp.InReview {
		item := FromChecklistItem(s.Items[s.CurrentIndex])
		resp.CurrentItem = &item
	}
	return resp
}

type SubmissionResultResponse struct {
	RecordID     string                  `json:"record_id"`
	Items        []ChecklistItemResponse `json:"items"`
	GlobalRemark string                  `json:"global_remark,omitempty"`
	CompletedAt  string                  `json:"completed_at"`
}

func FromSubmissionResult(r entities.SubmissionResult) SubmissionResultResponse {
	return SubmissionResultResponse{
		RecordID:     r.RecordID,
		Items:        FromChecklistItems(r.Items),
		GlobalRemark: r.GlobalRemark,
		CompletedAt:  r.CompletedAt.UTC().Format(time.RFC3339),
	}
}
