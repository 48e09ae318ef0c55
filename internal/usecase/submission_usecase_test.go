package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldserve/internal/domain/entities"
	mock_interfaces "fieldserve/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type submissionFixture struct {
	uc       *SubmissionUseCase
	records  *mock_interfaces.MockIMaintenanceRecordRepository
	results  *mock_interfaces.MockISubmissionResultRepository
	docRefs  *mock_interfaces.MockIDocReferenceRepository
	batches  *mock_interfaces.MockISubmissionBatchRepository
	reports  *mock_interfaces.MockIPMReportRepository
	otps     *mock_interfaces.MockIOtpChallengeRepository
	renderer *mock_interfaces.MockIReportRenderer
	mailer   *mock_interfaces.MockIMailerGateway
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &submissionFixture{
		records:  mock_interfaces.NewMockIMaintenanceRecordRepository(ctrl),
		results:  mock_interfaces.NewMockISubmissionResultRepository(ctrl),
		docRefs:  mock_interfaces.NewMockIDocReferenceRepository(ctrl),
		batches:  mock_interfaces.NewMockISubmissionBatchRepository(ctrl),
		reports:  mock_interfaces.NewMockIPMReportRepository(ctrl),
		otps:     mock_interfaces.NewMockIOtpChallengeRepository(ctrl),
		renderer: mock_interfaces.NewMockIReportRenderer(ctrl),
		mailer:   mock_interfaces.NewMockIMailerGateway(ctrl),
	}
	f.uc = NewSubmissionUseCase(f.records, f.results, f.docRefs, f.batches, f.reports, f.otps, f.renderer, f.mailer)
	return f
}

func batchRecord(id, serial string) entities.MaintenanceRecord {
	return entities.MaintenanceRecord{
		ID:           id,
		PartNumber:   "PN-100",
		SerialNumber: serial,
		CustomerCode: "CUST-1",
		PMStatus:     entities.PMStatusPending,
	}
}

func completedResult(recordID string) entities.SubmissionResult {
	return entities.SubmissionResult{
		RecordID:    recordID,
		Items:       []entities.ChecklistItem{{ID: "i-1", Result: entities.ResultOk}},
		CompletedAt: time.Now().UTC(),
	}
}

func verifiedOtp() entities.OtpChallenge {
	return entities.OtpChallenge{
		CustomerCode: "CUST-1",
		Code:         "123456",
		Verified:     true,
		ExpiresAt:    time.Now().UTC().Add(2 * time.Minute),
	}
}

func refsFor(part string) entities.DocReferenceSet {
	return entities.DocReferenceSet{
		PartNumber: part,
		Documents:  []entities.DocReference{{ChlNo: "DOC-1", RevNo: "A"}},
		Formats:    []entities.DocReference{{ChlNo: "FMT-1", RevNo: "B"}},
	}
}

// expectBatchLifecycle wires Create and Update to echo their input.
func (f *submissionFixture) expectBatchLifecycle() {
	f.batches.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.SubmissionBatch) (entities.SubmissionBatch, error) { return b, nil },
	)
	f.batches.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.SubmissionBatch) (entities.SubmissionBatch, error) { return b, nil },
	).AnyTimes()
}

func TestSubmissionUseCase_SubmitBatch_Preconditions(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		f := newSubmissionFixture(t)
		_, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"  ", ""}})
		if !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("record missing", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.MaintenanceRecord{}, nil)
		_, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1"}})
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("mixed customer codes", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
		other := batchRecord("rec-2", "SN-2")
		other.CustomerCode = "CUST-2"
		f.records.EXPECT().GetByID(gomock.Any(), "rec-2").Return(other, nil)

		_, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1", "rec-2"}})
		if !errors.Is(err, ErrMixedCustomerCodes) {
			t.Fatalf("expected ErrMixedCustomerCodes, got %v", err)
		}
	})

	t.Run("record without completed checklist", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
		f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(entities.SubmissionResult{}, nil)

		_, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1"}})
		if !errors.Is(err, ErrBatchIncomplete) {
			t.Fatalf("expected ErrBatchIncomplete, got %v", err)
		}
	})

	t.Run("otp not verified", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
		f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(completedResult("rec-1"), nil)
		ch := verifiedOtp()
		ch.Verified = false
		f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(ch, nil)

		_, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1"}})
		if !errors.Is(err, ErrOtpNotVerified) {
			t.Fatalf("expected ErrOtpNotVerified, got %v", err)
		}
	})

	t.Run("otp expired", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
		f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(completedResult("rec-1"), nil)
		ch := verifiedOtp()
		ch.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(ch, nil)

		_, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1"}})
		if !errors.Is(err, ErrOtpNotVerified) {
			t.Fatalf("expected ErrOtpNotVerified, got %v", err)
		}
	})
}

func TestSubmissionUseCase_SubmitBatch_SequentialRun(t *testing.T) {
	f := newSubmissionFixture(t)
	ids := []string{"rec-1", "rec-2", "rec-3"}
	serials := map[string]string{"rec-1": "SN-1", "rec-2": "SN-2", "rec-3": "SN-3"}

	for _, id := range ids {
		f.records.EXPECT().GetByID(gomock.Any(), id).Return(batchRecord(id, serials[id]), nil)
		f.results.EXPECT().GetByRecordID(gomock.Any(), id).Return(completedResult(id), nil)
	}
	f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(verifiedOtp(), nil)
	f.otps.EXPECT().Consume(gomock.Any(), "CUST-1").Return(nil)
	f.expectBatchLifecycle()

	var renderOrder []string
	for _, id := range ids {
		id := id
		f.docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-100").Return(refsFor("PN-100"), nil)
		f.renderer.EXPECT().RenderPMReport(gomock.Any(), gomock.Any(), "Jordan Engineer").DoAndReturn(
			func(rec entities.MaintenanceRecord, res entities.SubmissionResult, _ string) ([]byte, error) {
				if rec.ID != id {
					t.Fatalf("expected render for %s, got %s", id, rec.ID)
				}
				if rec.PMStatus != entities.PMStatusCompleted || rec.PMDoneDate == "" || rec.PMEngineerCode != "ENG-7" {
					t.Fatalf("record not stamped before render: %+v", rec)
				}
				if rec.DocumentChlNo != "DOC-1" || rec.FormatChlNo != "FMT-1" {
					t.Fatalf("expected doc references on record: %+v", rec)
				}
				renderOrder = append(renderOrder, rec.ID)
				return []byte("pdf-" + rec.ID), nil
			},
		)
		f.reports.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PMReport) (entities.PMReport, error) {
				if r.RecordID != id || len(r.PDF) == 0 {
					t.Fatalf("unexpected report: %+v", r)
				}
				return r, nil
			},
		)
		f.records.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.MaintenanceRecord) (entities.MaintenanceRecord, error) {
				if rec.ID != id {
					t.Fatalf("expected completion for %s, got %s", id, rec.ID)
				}
				return rec, nil
			},
		)
	}

	// Exactly one combined notification, after every report.
	f.mailer.EXPECT().SendBatchReports(gomock.Any(), "CUST-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, reports []entities.PMReport) error {
			if len(reports) != 3 {
				t.Fatalf("expected 3 reports in notification, got %d", len(reports))
			}
			return nil
		},
	)

	var seen []entities.ProgressEntry
	batch, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{
		RecordIDs:    ids,
		EngineerCode: "ENG-7",
		EngineerName: "Jordan Engineer",
		OnProgress:   func(e entities.ProgressEntry) { seen = append(seen, e) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(renderOrder) != 3 || renderOrder[0] != "rec-1" || renderOrder[1] != "rec-2" || renderOrder[2] != "rec-3" {
		t.Fatalf("expected strict input order, got %v", renderOrder)
	}

	// Log: one success per record in order, then the notification line.
	if len(batch.Log) != 4 {
		t.Fatalf("expected 4 log entries, got %d: %+v", len(batch.Log), batch.Log)
	}
	for i, id := range ids {
		e := batch.Log[i]
		if e.RecordID != id || e.Outcome != entities.ProgressSuccess {
			t.Fatalf("entry %d: expected success for %s, got %+v", i, id, e)
		}
		if e.Current != i+1 || e.Total != 3 {
			t.Fatalf("entry %d: expected counter %d/3, got %d/%d", i, i+1, e.Current, e.Total)
		}
	}
	final := batch.Log[3]
	if final.Outcome != entities.ProgressSuccess || final.RecordID != "" {
		t.Fatalf("expected batch-level notification entry, got %+v", final)
	}

	if !batch.NotifiedOK || batch.Status != entities.BatchStatusCompleted || batch.FinishedAt.IsZero() {
		t.Fatalf("unexpected batch state: %+v", batch)
	}
	if len(seen) != len(batch.Log) {
		t.Fatalf("expected OnProgress to mirror the log, got %d vs %d", len(seen), len(batch.Log))
	}
}

func TestSubmissionUseCase_SubmitBatch_FailureDoesNotAbort(t *testing.T) {
	f := newSubmissionFixture(t)
	ids := []string{"rec-1", "rec-2"}

	f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
	f.records.EXPECT().GetByID(gomock.Any(), "rec-2").Return(batchRecord("rec-2", "SN-2"), nil)
	f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(completedResult("rec-1"), nil)
	f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-2").Return(completedResult("rec-2"), nil)
	f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(verifiedOtp(), nil)
	f.otps.EXPECT().Consume(gomock.Any(), "CUST-1").Return(nil)
	f.expectBatchLifecycle()
	f.docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-100").Return(refsFor("PN-100"), nil).Times(2)

	// First record fails at render, second goes through untouched.
	gomock.InOrder(
		f.renderer.EXPECT().RenderPMReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("layout broke")),
		f.renderer.EXPECT().RenderPMReport(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil),
	)
	f.reports.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PMReport) (entities.PMReport, error) { return r, nil },
	)
	f.records.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.MaintenanceRecord) (entities.MaintenanceRecord, error) { return rec, nil },
	)
	f.mailer.EXPECT().SendBatchReports(gomock.Any(), "CUST-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, reports []entities.PMReport) error {
			if len(reports) != 1 {
				t.Fatalf("expected only the surviving report, got %d", len(reports))
			}
			return nil
		},
	)

	batch, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: ids, EngineerCode: "ENG-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Log) != 3 {
		t.Fatalf("expected 3 log entries, got %+v", batch.Log)
	}
	if batch.Log[0].Outcome != entities.ProgressFailure || batch.Log[0].RecordID != "rec-1" {
		t.Fatalf("expected failure entry first, got %+v", batch.Log[0])
	}
	if batch.Log[1].Outcome != entities.ProgressSuccess || batch.Log[1].RecordID != "rec-2" {
		t.Fatalf("expected success entry second, got %+v", batch.Log[1])
	}
	if batch.Status != entities.BatchStatusCompleted {
		t.Fatalf("expected completed batch despite failure, got %s", batch.Status)
	}
}

func TestSubmissionUseCase_SubmitBatch_RetrySkipsSubmitted(t *testing.T) {
	f := newSubmissionFixture(t)

	done := batchRecord("rec-1", "SN-1")
	done.PMStatus = entities.PMStatusCompleted
	f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(done, nil)
	f.records.EXPECT().GetByID(gomock.Any(), "rec-2").Return(batchRecord("rec-2", "SN-2"), nil)
	f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(completedResult("rec-1"), nil)
	f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-2").Return(completedResult("rec-2"), nil)
	f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(verifiedOtp(), nil)
	f.otps.EXPECT().Consume(gomock.Any(), "CUST-1").Return(nil)
	f.expectBatchLifecycle()

	// The already-submitted record reuses its stored report; no render, no save.
	stored := entities.PMReport{RecordID: "rec-1", CustomerCode: "CUST-1", PDF: []byte("old-pdf")}
	f.reports.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(stored, nil)

	f.docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-100").Return(refsFor("PN-100"), nil)
	f.renderer.EXPECT().RenderPMReport(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("new-pdf"), nil)
	f.reports.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PMReport) (entities.PMReport, error) { return r, nil },
	)
	f.records.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.MaintenanceRecord) (entities.MaintenanceRecord, error) { return rec, nil },
	)

	f.mailer.EXPECT().SendBatchReports(gomock.Any(), "CUST-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, reports []entities.PMReport) error {
			if len(reports) != 2 {
				t.Fatalf("expected reused plus fresh report, got %d", len(reports))
			}
			if string(reports[0].PDF) != "old-pdf" {
				t.Fatalf("expected stored report reused, got %q", reports[0].PDF)
			}
			return nil
		},
	)

	batch, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1", "rec-2"}, EngineerCode: "ENG-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Log[0].Outcome != entities.ProgressSkipped || batch.Log[0].RecordID != "rec-1" {
		t.Fatalf("expected skipped entry, got %+v", batch.Log[0])
	}
}

func TestSubmissionUseCase_SubmitBatch_MissingDocRefsWarns(t *testing.T) {
	f := newSubmissionFixture(t)

	f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
	f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(completedResult("rec-1"), nil)
	f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(verifiedOtp(), nil)
	f.otps.EXPECT().Consume(gomock.Any(), "CUST-1").Return(nil)
	f.expectBatchLifecycle()

	f.docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-100").Return(entities.DocReferenceSet{}, nil)
	f.renderer.EXPECT().RenderPMReport(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(rec entities.MaintenanceRecord, _ entities.SubmissionResult, _ string) ([]byte, error) {
			if rec.DocumentChlNo != "" || rec.FormatChlNo != "" {
				t.Fatalf("expected blank references, got %+v", rec)
			}
			return []byte("pdf"), nil
		},
	)
	f.reports.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PMReport) (entities.PMReport, error) { return r, nil },
	)
	f.records.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.MaintenanceRecord) (entities.MaintenanceRecord, error) { return rec, nil },
	)
	f.mailer.EXPECT().SendBatchReports(gomock.Any(), "CUST-1", gomock.Any()).Return(nil)

	batch, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1"}, EngineerCode: "ENG-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Log[0].Outcome != entities.ProgressWarning {
		t.Fatalf("expected warning entry first, got %+v", batch.Log[0])
	}
	if batch.Log[1].Outcome != entities.ProgressSuccess {
		t.Fatalf("expected success entry after warning, got %+v", batch.Log[1])
	}
}

func TestSubmissionUseCase_SubmitBatch_NotificationFailure(t *testing.T) {
	f := newSubmissionFixture(t)

	f.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(batchRecord("rec-1", "SN-1"), nil)
	f.results.EXPECT().GetByRecordID(gomock.Any(), "rec-1").Return(completedResult("rec-1"), nil)
	f.otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(verifiedOtp(), nil)
	f.otps.EXPECT().Consume(gomock.Any(), "CUST-1").Return(nil)
	f.expectBatchLifecycle()

	f.docRefs.EXPECT().GetByPartNumber(gomock.Any(), "PN-100").Return(refsFor("PN-100"), nil)
	f.renderer.EXPECT().RenderPMReport(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
	f.reports.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PMReport) (entities.PMReport, error) { return r, nil },
	)
	f.records.EXPECT().UpdateCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.MaintenanceRecord) (entities.MaintenanceRecord, error) { return rec, nil },
	)
	f.mailer.EXPECT().SendBatchReports(gomock.Any(), "CUST-1", gomock.Any()).Return(errors.New("relay down"))

	batch, err := f.uc.SubmitBatch(context.Background(), SubmitBatchCommand{RecordIDs: []string{"rec-1"}, EngineerCode: "ENG-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.NotifiedOK {
		t.Fatalf("expected notified_ok false")
	}
	final := batch.Log[len(batch.Log)-1]
	if final.Outcome != entities.ProgressFailure || final.RecordID != "" {
		t.Fatalf("expected batch-level failure entry, got %+v", final)
	}
	if batch.Status != entities.BatchStatusCompleted {
		t.Fatalf("expected completed batch, got %s", batch.Status)
	}
}

func TestSubmissionUseCase_GetBatch(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		f := newSubmissionFixture(t)
		_, err := f.uc.GetBatch(context.Background(), " ")
		if !errors.Is(err, ErrBatchNotFound) {
			t.Fatalf("expected ErrBatchNotFound, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.batches.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.SubmissionBatch{}, nil)
		_, err := f.uc.GetBatch(context.Background(), "b-1")
		if !errors.Is(err, ErrBatchNotFound) {
			t.Fatalf("expected ErrBatchNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.batches.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.SubmissionBatch{ID: "b-1"}, nil)
		b, err := f.uc.GetBatch(context.Background(), "b-1")
		if err != nil || b.ID != "b-1" {
			t.Fatalf("unexpected result: %+v err=%v", b, err)
		}
	})
}
