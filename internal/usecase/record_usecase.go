package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

var ErrInvalidPartNumber = errors.New("invalid part number")

// IRecordUseCase serves the read side of the portal: pending records for
// batch selection, checklist templates and document references by part.

type IRecordUseCase interface {
	ListPending(ctx context.Context, customerCode string) ([]entities.MaintenanceRecord, error)
	ChecklistByPart(ctx context.Context, partNumber string) ([]entities.ChecklistItem, error)
	DocRefsByPart(ctx context.Context, partNumber string) (entities.DocReferenceSet, error)
}

type RecordUseCase struct {
	records    interfaces.IMaintenanceRecordRepository
	checklists interfaces.IChecklistTemplateRepository
	docRefs    interfaces.IDocReferenceRepository
}

var _ IRecordUseCase = (*RecordUseCase)(nil)

func NewRecordUseCase(
	records interfaces.IMaintenanceRecordRepository,
	checklists interfaces.IChecklistTemplateRepository,
	docRefs interfaces.IDocReferenceRepository,
) *RecordUseCase {
	return &RecordUseCase{records: records, checklists: checklists, docRefs: docRefs}
}

func (u *RecordUseCase) ListPending(ctx context.Context, customerCode string) ([]entities.MaintenanceRecord, error) {
	customerCode = strings.TrimSpace(customerCode)
	if customerCode == "" {
		return nil, ErrInvalidCustomerCode
	}
	return u.records.ListPendingByCustomerCode(ctx, customerCode)
}

func (u *RecordUseCase) ChecklistByPart(ctx context.Context, partNumber string) ([]entities.ChecklistItem, error) {
	partNumber = strings.TrimSpace(partNumber)
	if partNumber == "" {
		return nil, ErrInvalidPartNumber
	}
	return u.checklists.ListByPartNumber(ctx, partNumber)
}

func (u *RecordUseCase) DocRefsByPart(ctx context.Context, partNumber string) (entities.DocReferenceSet, error) {
	partNumber = strings.TrimSpace(partNumber)
	if partNumber == "" {
		return entities.DocReferenceSet{}, ErrInvalidPartNumber
	}
	return u.docRefs.GetByPartNumber(ctx, partNumber)
}
