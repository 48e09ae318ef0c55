package request

// StartWizardRequest opens a checklist session for one pending record.
type StartWizardRequest struct {
	RecordID string `json:"record_id" binding:"required"`
}

// SetResultRequest records a binary answer on one checkpoint.
type SetResultRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Value  string `json:"value" binding:"required"`
}

// SetRemarkRequest records free text on one checkpoint.
type SetRemarkRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Text   string `json:"text"`
}

// SetMeasurementRequest stages the raw measured value for the current
// numeric checkpoint. Classification happens on advance.
type SetMeasurementRequest struct {
	Value string `json:"value" binding:"required"`
}

// FinishWizardRequest closes a session that has reached review.
type FinishWizardRequest struct {
	GlobalRemark string `json:"global_remark"`
}
