package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatch         = errors.New("submission batch is empty")
	ErrMixedCustomerCodes = errors.New("batch records span multiple customer codes")
	ErrBatchIncomplete    = errors.New("batch has records without a completed checklist")
	ErrOtpNotVerified     = errors.New("otp not verified for customer code")
	ErrBatchNotFound      = errors.New("submission batch not found")
)

// SubmitBatchCommand carries everything the sequencer needs for one run.
// OnProgress, when set, is invoked after every appended log line, in order.

type SubmitBatchCommand struct {
	RecordIDs    []string
	EngineerCode string
	EngineerName string
	OnProgress   func(entities.ProgressEntry)
}

// ISubmissionUseCase persists one report per record and one combined
// notification per batch.
//
// Records are processed strictly sequentially in input order, one at a time.
// That is a deliberate guarantee, not a limitation: each step mutates shared
// per-customer state (report numbering, document counters) and the progress
// log's ordering depends on it.

type ISubmissionUseCase interface {
	SubmitBatch(ctx context.Context, cmd SubmitBatchCommand) (entities.SubmissionBatch, error)
	GetBatch(ctx context.Context, id string) (entities.SubmissionBatch, error)
}

type SubmissionUseCase struct {
	records  interfaces.IMaintenanceRecordRepository
	results  interfaces.ISubmissionResultRepository
	docRefs  interfaces.IDocReferenceRepository
	batches  interfaces.ISubmissionBatchRepository
	reports  interfaces.IPMReportRepository
	otps     interfaces.IOtpChallengeRepository
	renderer interfaces.IReportRenderer
	mailer   interfaces.IMailerGateway
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(
	records interfaces.IMaintenanceRecordRepository,
	results interfaces.ISubmissionResultRepository,
	docRefs interfaces.IDocReferenceRepository,
	batches interfaces.ISubmissionBatchRepository,
	reports interfaces.IPMReportRepository,
	otps interfaces.IOtpChallengeRepository,
	renderer interfaces.IReportRenderer,
	mailer interfaces.IMailerGateway,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		records:  records,
		results:  results,
		docRefs:  docRefs,
		batches:  batches,
		reports:  reports,
		otps:     otps,
		renderer: renderer,
		mailer:   mailer,
	}
}

func (u *SubmissionUseCase) SubmitBatch(ctx context.Context, cmd SubmitBatchCommand) (entities.SubmissionBatch, error) {
	ids := make([]string, 0, len(cmd.RecordIDs))
	for _, id := range cmd.RecordIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	if len(ids) == 0 {
		return entities.SubmissionBatch{}, ErrEmptyBatch
	}
	log.Printf("[submission][usecase] batch start records=%d engineer=%s", len(ids), cmd.EngineerCode)

	// Load every record up front: batch preconditions are all-or-nothing.
	recs := make([]entities.MaintenanceRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := u.records.GetByID(ctx, id)
		if err != nil {
			return entities.SubmissionBatch{}, err
		}
		if rec.ID == "" {
			return entities.SubmissionBatch{}, ErrRecordNotFound
		}
		recs = append(recs, rec)
	}

	customerCode := recs[0].CustomerCode
	for _, rec := range recs[1:] {
		if rec.CustomerCode != customerCode {
			log.Printf("[submission][usecase] mixed customer codes %s vs %s", customerCode, rec.CustomerCode)
			return entities.SubmissionBatch{}, ErrMixedCustomerCodes
		}
	}

	completed := make(map[string]entities.SubmissionResult, len(recs))
	for _, rec := range recs {
		res, err := u.results.GetByRecordID(ctx, rec.ID)
		if err != nil {
			return entities.SubmissionBatch{}, err
		}
		if res.RecordID == "" {
			log.Printf("[submission][usecase] record without completed checklist record_id=%s", rec.ID)
			return entities.SubmissionBatch{}, ErrBatchIncomplete
		}
		completed[rec.ID] = res
	}

	if err := u.consumeVerifiedOtp(ctx, customerCode); err != nil {
		return entities.SubmissionBatch{}, err
	}

	batch := entities.SubmissionBatch{
		ID:           uuid.NewString(),
		CustomerCode: customerCode,
		EngineerCode: cmd.EngineerCode,
		RecordIDs:    ids,
		Status:       entities.BatchStatusRunning,
		CreatedAt:    time.Now().UTC(),
	}
	batch, err := u.batches.Create(ctx, batch)
	if err != nil {
		return entities.SubmissionBatch{}, err
	}

	total := len(recs)
	appendEntry := func(e entities.ProgressEntry) {
		batch.Log = append(batch.Log, e)
		if cmd.OnProgress != nil {
			cmd.OnProgress(e)
		}
	}

	// One record at a time, input order. Per-record failures do not abort the
	// batch; only the final notification line distinguishes the whole run.
	sent := make([]entities.PMReport, 0, total)
	for i, rec := range recs {
		entries, report := u.submitOne(ctx, batch.ID, rec, completed[rec.ID], cmd, i+1, total)
		for _, e := range entries {
			appendEntry(e)
		}
		if report != nil {
			sent = append(sent, *report)
		}
		if updated, err := u.batches.Update(ctx, batch); err == nil {
			batch = updated
		} else {
			log.Printf("[submission][usecase] progress persist failed batch_id=%s err=%v", batch.ID, err)
		}
	}

	// One combined notification for the whole batch, keyed by customer code.
	if err := u.mailer.SendBatchReports(ctx, customerCode, sent); err != nil {
		log.Printf("[submission][usecase] notification failed batch_id=%s customer_code=%s err=%v", batch.ID, customerCode, err)
		appendEntry(entities.ProgressEntry{
			Outcome: entities.ProgressFailure,
			Message: fmt.Sprintf("notification send failed for customer %s: %v", customerCode, err),
			Current: total,
			Total:   total,
		})
	} else {
		batch.NotifiedOK = true
		appendEntry(entities.ProgressEntry{
			Outcome: entities.ProgressSuccess,
			Message: fmt.Sprintf("notification sent for customer %s (%d reports)", customerCode, len(sent)),
			Current: total,
			Total:   total,
		})
	}

	batch.Status = entities.BatchStatusCompleted
	batch.FinishedAt = time.Now().UTC()
	batch, err = u.batches.Update(ctx, batch)
	if err != nil {
		return entities.SubmissionBatch{}, err
	}
	log.Printf("[submission][usecase] batch done batch_id=%s records=%d notified_ok=%v", batch.ID, total, batch.NotifiedOK)
	return batch, nil
}

// submitOne runs the ordered per-record pipeline: stamp, look up references,
// render, persist. It returns the log lines for this record plus the stored
// report when one exists (fresh or reused for a skipped record).
func (u *SubmissionUseCase) submitOne(
	ctx context.Context,
	batchID string,
	rec entities.MaintenanceRecord,
	res entities.SubmissionResult,
	cmd SubmitBatchCommand,
	current, total int,
) ([]entities.ProgressEntry, *entities.PMReport) {
	var entries []entities.ProgressEntry

	// Retry safety: a record that already has a stored report was submitted by
	// an earlier run. Skip it so retries only touch failed records.
	if rec.PMStatus == entities.PMStatusCompleted {
		if existing, err := u.reports.GetByRecordID(ctx, rec.ID); err == nil && existing.RecordID != "" {
			log.Printf("[submission][usecase] skip already-submitted record_id=%s", rec.ID)
			entries = append(entries, entities.ProgressEntry{
				RecordID: rec.ID,
				Outcome:  entities.ProgressSkipped,
				Message:  fmt.Sprintf("record %s already submitted, skipped", rec.SerialNumber),
				Current:  current,
				Total:    total,
			})
			return entries, &existing
		}
	}

	rec.PMDoneDate = time.Now().Format(entities.PMDateLayout)
	rec.PMEngineerCode = cmd.EngineerCode
	rec.PMStatus = entities.PMStatusCompleted

	refs, err := u.docRefs.GetByPartNumber(ctx, rec.PartNumber)
	if err != nil || (len(refs.Documents) == 0 && len(refs.Formats) == 0) {
		// Missing references are recorded, never fatal.
		log.Printf("[submission][usecase] doc reference lookup empty part_number=%s err=%v", rec.PartNumber, err)
		entries = append(entries, entities.ProgressEntry{
			RecordID: rec.ID,
			Outcome:  entities.ProgressWarning,
			Message:  fmt.Sprintf("no document/format references for part %s", rec.PartNumber),
			Current:  current,
			Total:    total,
		})
	} else {
		if len(refs.Documents) > 0 {
			rec.DocumentChlNo = refs.Documents[0].ChlNo
			rec.DocumentRevNo = refs.Documents[0].RevNo
		}
		if len(refs.Formats) > 0 {
			rec.FormatChlNo = refs.Formats[0].ChlNo
			rec.FormatRevNo = refs.Formats[0].RevNo
		}
	}

	pdf, err := u.renderer.RenderPMReport(rec, res, cmd.EngineerName)
	if err != nil {
		log.Printf("[submission][usecase] report render failed record_id=%s err=%v", rec.ID, err)
		entries = append(entries, failureEntry(rec, current, total, err))
		return entries, nil
	}

	report := entities.PMReport{
		RecordID:     rec.ID,
		BatchID:      batchID,
		CustomerCode: rec.CustomerCode,
		PDF:          pdf,
		GeneratedAt:  time.Now().UTC(),
	}
	report, err = u.reports.Save(ctx, report)
	if err != nil {
		log.Printf("[submission][usecase] report save failed record_id=%s err=%v", rec.ID, err)
		entries = append(entries, failureEntry(rec, current, total, err))
		return entries, nil
	}

	if _, err := u.records.UpdateCompletion(ctx, rec); err != nil {
		log.Printf("[submission][usecase] record update failed record_id=%s err=%v", rec.ID, err)
		entries = append(entries, failureEntry(rec, current, total, err))
		return entries, nil
	}

	log.Printf("[submission][usecase] record submitted record_id=%s serial=%s (%d/%d)", rec.ID, rec.SerialNumber, current, total)
	entries = append(entries, entities.ProgressEntry{
		RecordID: rec.ID,
		Outcome:  entities.ProgressSuccess,
		Message:  fmt.Sprintf("report generated for %s", rec.SerialNumber),
		Current:  current,
		Total:    total,
	})
	return entries, &report
}

func (u *SubmissionUseCase) consumeVerifiedOtp(ctx context.Context, customerCode string) error {
	ch, err := u.otps.GetByCustomerCode(ctx, customerCode)
	if err != nil {
		return err
	}
	if ch.CustomerCode == "" || !ch.Verified || ch.Expired(time.Now().UTC()) {
		log.Printf("[submission][usecase] otp gate closed customer_code=%s", customerCode)
		return ErrOtpNotVerified
	}
	// Single-use: consumed at batch start.
	return u.otps.Consume(ctx, customerCode)
}

func (u *SubmissionUseCase) GetBatch(ctx context.Context, id string) (entities.SubmissionBatch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubmissionBatch{}, ErrBatchNotFound
	}

	b, err := u.batches.GetByID(ctx, id)
	if err != nil {
		return entities.SubmissionBatch{}, err
	}
	if b.ID == "" {
		return entities.SubmissionBatch{}, ErrBatchNotFound
	}
	return b, nil
}

func failureEntry(rec entities.MaintenanceRecord, current, total int, err error) entities.ProgressEntry {
	return entities.ProgressEntry{
		RecordID: rec.ID,
		Outcome:  entities.ProgressFailure,
		Message:  fmt.Sprintf("report generation failed for %s: %v", rec.SerialNumber, err),
		Current:  current,
		Total:    total,
	}
}
