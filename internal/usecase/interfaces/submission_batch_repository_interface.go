package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// ISubmissionBatchRepository abstracts DynamoDB persistence for submission
// batches and their ordered progress logs.

type ISubmissionBatchRepository interface {
	Create(ctx context.Context, b entities.SubmissionBatch) (entities.SubmissionBatch, error)
	Update(ctx context.Context, b entities.SubmissionBatch) (entities.SubmissionBatch, error)
	GetByID(ctx context.Context, id string) (entities.SubmissionBatch, error)
}

// IPMReportRepository abstracts persistence of generated PM reports. A stored
// report for a record marks that record as already submitted: retries skip it.

type IPMReportRepository interface {
	Save(ctx context.Context, r entities.PMReport) (entities.PMReport, error)
	GetByRecordID(ctx context.Context, recordID string) (entities.PMReport, error)
}
