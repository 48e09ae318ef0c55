package entities

import "time"

// SubmissionResult is the completed answer set for one maintenance record.
//
// Lifecycle: created when a record's wizard finishes, read once by the
// submission sequencer, replaced wholesale when the wizard is re-run.

type SubmissionResult struct {
	RecordID     string          `json:"record_id"`
	Items        []ChecklistItem `json:"items"`
	GlobalRemark string          `json:"global_remark,omitempty"`
	CompletedAt  time.Time       `json:"completed_at"`
}

// ProgressOutcome classifies one line of a batch progress log.

type ProgressOutcome string

const (
	ProgressSuccess ProgressOutcome = "success"
	ProgressFailure ProgressOutcome = "failure"
	ProgressSkipped ProgressOutcome = "skipped"
	ProgressWarning ProgressOutcome = "warning"
)

// ProgressEntry is one ordered line of a batch's human-auditable trail.
// Entries are appended strictly in processing order; the notification outcome
// is always the final entry.

type ProgressEntry struct {
	RecordID string          `json:"record_id,omitempty"`
	Outcome  ProgressOutcome `json:"outcome"`
	Message  string          `json:"message"`
	Current  int             `json:"current"`
	Total    int             `json:"total"`
}

// BatchStatus is the overall state of a submission batch.

type BatchStatus string

const (
	BatchStatusRunning   BatchStatus = "running"
	BatchStatusCompleted BatchStatus = "completed"
)

// SubmissionBatch records one submission session: the set of records submitted
// together for a single customer, the ordered progress log, and the outcome of
// the combined notification.

type SubmissionBatch struct {
	ID           string          `json:"id"`
	CustomerCode string          `json:"customer_code"`
	EngineerCode string          `json:"engineer_code"`
	RecordIDs    []string        `json:"record_ids"`
	Status       BatchStatus     `json:"status"`
	Log          []ProgressEntry `json:"log"`
	NotifiedOK   bool            `json:"notified_ok"`
	CreatedAt    time.Time       `json:"created_at"`
	FinishedAt   time.Time       `json:"finished_at,omitempty"`
}

// PMReport is the persisted artifact of one record's submission.

type PMReport struct {
	RecordID     string    `json:"record_id"`
	BatchID      string    `json:"batch_id"`
	CustomerCode string    `json:"customer_code"`
	PDF          []byte    `json:"-"`
	GeneratedAt  time.Time `json:"generated_at"`
}
