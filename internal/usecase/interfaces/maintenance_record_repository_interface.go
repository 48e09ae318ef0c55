package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// IMaintenanceRecordRepository abstracts DynamoDB persistence for
// MaintenanceRecord.
//
// The portal must be able to:
//   - list a customer's pending records for batch selection
//   - load one record when its wizard starts
//   - stamp completion fields (done date, engineer, status, doc refs) when the
//     sequencer submits the record

type IMaintenanceRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.MaintenanceRecord, error)
	ListPendingByCustomerCode(ctx context.Context, customerCode string) ([]entities.MaintenanceRecord, error)
	UpdateCompletion(ctx context.Context, r entities.MaintenanceRecord) (entities.MaintenanceRecord, error)
}
