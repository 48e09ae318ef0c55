package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldserve/internal/domain/entities"
	mock_interfaces "fieldserve/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRecordFixture(t *testing.T) (*RecordUseCase, *mock_interfaces.MockIMaintenanceRecordRepository, *mock_interfaces.MockIChecklistTemplateRepository, *mock_interfaces.MockIDocReferenceRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock_interfaces.NewMockIMaintenanceRecordRepository(ctrl)
	checklists := mock_interfaces.NewMockIChecklistTemplateRepository(ctrl)
	docRefs := mock_interfaces.NewMockIDocReferenceRepository(ctrl)
	return NewRecordUseCase(records, checklists, docRefs), records, checklists, docRefs
}

func TestRecordUseCase_ListPending(t *testing.T) {
	t.Run("blank customer code", func(t *testing.T) {
		uc, _, _, _ := newRecordFixture(t)
		if _, err := uc.ListPending(context.Background(), "   "); !errors.Is(err, ErrInvalidCustomerCode) {
			t.Fatalf("expected ErrInvalidCustomerCode, got %v", err)
		}
	})

	t.Run("trims customer code before lookup", func(t *testing.T) {
		uc, records, _, _ := newRecordFixture(t)
		want := []entities.MaintenanceRecord{
			{ID: "rec-1", CustomerCode: "CUST-1", PartNumber: "PN-100", SerialNumber: "SN-001"},
			{ID: "rec-2", CustomerCode: "CUST-1", PartNumber: "PN-200", SerialNumber: "SN-002"},
		}
		records.EXPECT().ListPendingByCustomerCode(gomock.Any(), "CUST-1").Return(want, nil)

		got, err := uc.ListPending(context.Background(), "  CUST-1  ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 || got[0].ID != "rec-1" || got[1].ID != "rec-2" {
			t.Fatalf("unexpected records %+v", got)
		}
	})

	t.Run("repository error is surfaced", func(t *testing.T) {
		uc, records, _, _ := newRecordFixture(t)
		records.EXPECT().ListPendingByCustomerCode(gomock.Any(), "CUST-1").Return(nil, errors.New("dynamo down"))

		if _, err := uc.ListPending(context.Background(), "CUST-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRecordUseCase_ChecklistByPart(t *testing.T) {
	t.Run("blank part number", func(t *testing.T) {
		uc, _, _, _ := newRecordFixture(t)
		if _, err := uc.ChecklistByPart(context.Background(), ""); !errors.Is(err, ErrInvalidPartNumber) {
			t.Fatalf("expected ErrInvalidPartNumber, got %v", err)
		}
	})

	t.Run("returns template items in order", func(t *testing.T) {
		uc, _, checklists, _ := newRecordFixture(t)
		want := []entities.ChecklistItem{
			{ID: "i-1", Checkpoint: "Inspect housing", ResultType: entities.ResultTypeOkNotOk},
			{ID: "i-2", Checkpoint: "Measure output", ResultType: entities.ResultTypeNumericEntry, StartVoltage: 210, EndVoltage: 230},
		}
		checklists.EXPECT().ListByPartNumber(gomock.Any(), "PN-100").Return(want, nil)

		got, err := uc.ChecklistByPart(context.Background(), " PN-100 ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 || got[0].ID != "i-1" || got[1].ResultType != entities.ResultTypeNumericEntry {
			t.Fatalf("unexpected items %+v", got)
		}
	})
}

func TestRecordUseCase_DocRefsByPart(t *testing.T) {
	t.Run("blank part number", func(t *testing.T) {
		uc, _, _, _ := newRecordFixture(t)
		if _, err := uc.DocRefsByPart(context.Background(), "  "); !errors.Is(err, ErrInvalidPartNumber) {
			t.Fatalf("expected ErrInvalidPartNumber, got %v", err)
		}
	})

	t.Run("returns reference set for part", func(t *testing.T) {
		uc, _, _, docRefs := newRecordFixture(t)
		want := entities.DocReferenceSet{
			PartNumber: "PN-100",
			Documents:  []entities.DocReference{{ChlNo: "DOC-1", RevNo: "R2"}},
			Formats:    []entities.DocReference{{ChlNo: "FMT-1", RevNo: "R1"}},
		}
		docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-100").Return(want, nil)

		got, err := uc.DocRefsByPart(context.Background(), "PN-100")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.PartNumber != "PN-100" || len(got.Documents) != 1 || got.Documents[0].ChlNo != "DOC-1" || len(got.Formats) != 1 {
			t.Fatalf("unexpected refs %+v", got)
		}
	})

	t.Run("missing part yields zero value set", func(t *testing.T) {
		uc, _, _, docRefs := newRecordFixture(t)
		docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-404").Return(entities.DocReferenceSet{}, nil)

		got, err := uc.DocRefsByPart(context.Background(), "PN-404")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.PartNumber != "" || got.Documents != nil || got.Formats != nil {
			t.Fatalf("expected zero value set, got %+v", got)
		}
	})
}
