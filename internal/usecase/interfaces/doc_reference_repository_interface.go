package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// IDocReferenceRepository abstracts DynamoDB persistence for document/format
// reference numbers looked up by part number just before report generation.

type IDocReferenceRepository interface {
	GetByPartNumber(ctx context.Context, partNumber string) (entities.DocReferenceSet, error)
}
