package request

// SubmitBatchRequest starts the sequential submission of a set of completed
// records. All records must belong to the same customer and have a stored
// answer set; the customer's OTP must already be verified.
type SubmitBatchRequest struct {
	RecordIDs []string `json:"record_ids" binding:"required"`
}
