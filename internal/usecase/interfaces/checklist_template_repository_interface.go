package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// IChecklistTemplateRepository abstracts DynamoDB persistence for checklist
// templates. Templates are keyed by part number and filtered to PM-type
// checkpoints; the returned items carry empty Result/Remark, ready for a
// wizard session.

type IChecklistTemplateRepository interface {
	ListByPartNumber(ctx context.Context, partNumber string) ([]entities.ChecklistItem, error)
}
