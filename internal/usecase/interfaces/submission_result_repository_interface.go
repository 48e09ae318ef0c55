package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// ISubmissionResultRepository abstracts DynamoDB persistence for completed
// wizard answer sets. Put replaces any previous entry for the record
// wholesale; a re-run wizard overwrites, never merges.

type ISubmissionResultRepository interface {
	Put(ctx context.Context, r entities.SubmissionResult) (entities.SubmissionResult, error)
	GetByRecordID(ctx context.Context, recordID string) (entities.SubmissionResult, error)
}
