package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWizardSessionNotFound = errors.New("wizard session not found")
	ErrRecordNotFound        = errors.New("maintenance record not found")
	ErrRecordAlreadyDone     = errors.New("maintenance record already completed")
	ErrChecklistEmpty        = errors.New("no checklist items for part number")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrInvalidResultValue    = errors.New("invalid result value for item type")
	ErrNumericResultDerived  = errors.New("numeric entry result is derived, not chosen")
	ErrRemarkTooLong         = errors.New("remark exceeds maximum length")
	ErrResultRequired        = errors.New("result required before advancing")
	ErrRemarkRequired        = errors.New("remark required for negative result")
	ErrMeasurementRequired   = errors.New("measurement missing or not numeric")
	ErrAlreadyInReview       = errors.New("wizard already in review state")
	ErrCannotRetreat         = errors.New("cannot retreat from first item")
	ErrNotInReview           = errors.New("wizard not in review state")
)

// IWizardUseCase steps a checklist one item at a time and gates advancement on
// per-type validation. Finish emits the completed answer set for the owning
// record and discards the session.

type IWizardUseCase interface {
	Start(ctx context.Context, recordID string) (entities.WizardSession, error)
	SetResult(ctx context.Context, sessionID, itemID, value string) (entities.WizardSession, error)
	SetRemark(ctx context.Context, sessionID, itemID, text string) (entities.WizardSession, error)
	SetMeasurement(ctx context.Context, sessionID, raw string) (entities.WizardSession, error)
	Advance(ctx context.Context, sessionID string) (entities.WizardSession, error)
	Retreat(ctx context.Context, sessionID string) (entities.WizardSession, error)
	Finish(ctx context.Context, sessionID, globalRemark string) (entities.SubmissionResult, error)
}

type WizardUseCase struct {
	records    interfaces.IMaintenanceRecordRepository
	checklists interfaces.IChecklistTemplateRepository
	sessions   interfaces.IWizardSessionStore
	results    interfaces.ISubmissionResultRepository
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	records interfaces.IMaintenanceRecordRepository,
	checklists interfaces.IChecklistTemplateRepository,
	sessions interfaces.IWizardSessionStore,
	results interfaces.ISubmissionResultRepository,
) *WizardUseCase {
	return &WizardUseCase{records: records, checklists: checklists, sessions: sessions, results: results}
}

func (u *WizardUseCase) Start(ctx context.Context, recordID string) (entities.WizardSession, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.WizardSession{}, ErrRecordNotFound
	}

	rec, err := u.records.GetByID(ctx, recordID)
	if err != nil {
		log.Printf("[wizard][usecase] start failed loading record record_id=%s err=%v", recordID, err)
		return entities.WizardSession{}, err
	}
	if rec.ID == "" {
		return entities.WizardSession{}, ErrRecordNotFound
	}
	if rec.PMStatus == entities.PMStatusCompleted {
		return entities.WizardSession{}, ErrRecordAlreadyDone
	}

	items, err := u.checklists.ListByPartNumber(ctx, rec.PartNumber)
	if err != nil {
		log.Printf("[wizard][usecase] start failed loading checklist record_id=%s part_number=%s err=%v", recordID, rec.PartNumber, err)
		return entities.WizardSession{}, err
	}
	if len(items) == 0 {
		return entities.WizardSession{}, ErrChecklistEmpty
	}

	now := time.Now().UTC()
	s := entities.WizardSession{
		ID:        uuid.NewString(),
		RecordID:  rec.ID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.sessions.Put(s)
	log.Printf("[wizard][usecase] start success session_id=%s record_id=%s items=%d", s.ID, rec.ID, len(items))
	return s, nil
}

func (u *WizardUseCase) SetResult(ctx context.Context, sessionID, itemID, value string) (entities.WizardSession, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return entities.WizardSession{}, ErrWizardSessionNotFound
	}

	idx := indexOfItem(s.Items, itemID)
	if idx < 0 {
		return entities.WizardSession{}, ErrChecklistItemNotFound
	}

	item := &s.Items[idx]
	switch item.ResultType {
	case entities.ResultTypeOkNotOk:
		if value != entities.ResultOk && value != entities.ResultNotOk {
			return entities.WizardSession{}, ErrInvalidResultValue
		}
	case entities.ResultTypeYesNo:
		if value != entities.ResultYes && value != entities.ResultNo {
			return entities.WizardSession{}, ErrInvalidResultValue
		}
	case entities.ResultTypeNumericEntry:
		return entities.WizardSession{}, ErrNumericResultDerived
	default:
		return entities.WizardSession{}, ErrInvalidResultValue
	}

	item.Result = value
	s.UpdatedAt = time.Now().UTC()
	u.sessions.Put(s)
	return s, nil
}

func (u *WizardUseCase) SetRemark(ctx context.Context, sessionID, itemID, text string) (entities.WizardSession, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return entities.WizardSession{}, ErrWizardSessionNotFound
	}
	if len(text) > entities.MaxRemarkLen {
		return entities.WizardSession{}, ErrRemarkTooLong
	}

	idx := indexOfItem(s.Items, itemID)
	if idx < 0 {
		return entities.WizardSession{}, ErrChecklistItemNotFound
	}

	s.Items[idx].Remark = text
	s.UpdatedAt = time.Now().UTC()
	u.sessions.Put(s)
	return s, nil
}

func (u *WizardUseCase) SetMeasurement(ctx context.Context, sessionID, raw string) (entities.WizardSession, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return entities.WizardSession{}, ErrWizardSessionNotFound
	}
	if s.InReview() {
		return entities.WizardSession{}, ErrAlreadyInReview
	}

	s.MeasurementBuffer = strings.TrimSpace(raw)
	s.UpdatedAt = time.Now().UTC()
	u.sessions.Put(s)
	return s, nil
}

// Advance validates the current item and moves forward one step. The
// measurement buffer is cleared on every index change.
func (u *WizardUseCase) Advance(ctx context.Context, sessionID string) (entities.WizardSession, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return entities.WizardSession{}, ErrWizardSessionNotFound
	}
	if s.InReview() {
		return entities.WizardSession{}, ErrAlreadyInReview
	}

	item := &s.Items[s.CurrentIndex]
	switch item.ResultType {
	case entities.ResultTypeOkNotOk, entities.ResultTypeYesNo:
		if !item.Answered() {
			return entities.WizardSession{}, ErrResultRequired
		}
		if item.IsNegative() && strings.TrimSpace(item.Remark) == "" {
			return entities.WizardSession{}, ErrRemarkRequired
		}
	case entities.ResultTypeNumericEntry:
		raw := strings.TrimSpace(s.MeasurementBuffer)
		if raw == "" {
			return entities.WizardSession{}, ErrMeasurementRequired
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entities.WizardSession{}, ErrMeasurementRequired
		}
		// Range bounds are inclusive.
		if v >= item.StartVoltage && v <= item.EndVoltage {
			item.Result = entities.ResultPass
		} else {
			item.Result = entities.ResultFailed
		}
		item.Remark = fmt.Sprintf("Measured %s (range %s - %s)",
			formatMeasure(v), formatMeasure(item.StartVoltage), formatMeasure(item.EndVoltage))
	}

	s.CurrentIndex++
	s.MeasurementBuffer = ""
	s.UpdatedAt = time.Now().UTC()
	u.sessions.Put(s)
	log.Printf("[wizard][usecase] advance session_id=%s index=%d/%d", s.ID, s.CurrentIndex, len(s.Items))
	return s, nil
}

// Retreat steps back one item without validation.
func (u *WizardUseCase) Retreat(ctx context.Context, sessionID string) (entities.WizardSession, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return entities.WizardSession{}, ErrWizardSessionNotFound
	}
	if s.CurrentIndex == 0 {
		return entities.WizardSession{}, ErrCannotRetreat
	}

	s.CurrentIndex--
	s.MeasurementBuffer = ""
	s.UpdatedAt = time.Now().UTC()
	u.sessions.Put(s)
	return s, nil
}

// Finish is only callable in the review state. It stores the completed answer
// set for the owning record (replacing any previous entry wholesale) and
// discards the session.
func (u *WizardUseCase) Finish(ctx context.Context, sessionID, globalRemark string) (entities.SubmissionResult, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return entities.SubmissionResult{}, ErrWizardSessionNotFound
	}
	if !s.InReview() {
		return entities.SubmissionResult{}, ErrNotInReview
	}
	if len(globalRemark) > entities.MaxRemarkLen {
		return entities.SubmissionResult{}, ErrRemarkTooLong
	}

	res := entities.SubmissionResult{
		RecordID:     s.RecordID,
		Items:        s.Items,
		GlobalRemark: globalRemark,
		CompletedAt:  time.Now().UTC(),
	}
	stored, err := u.results.Put(ctx, res)
	if err != nil {
		log.Printf("[wizard][usecase] finish failed storing result session_id=%s record_id=%s err=%v", s.ID, s.RecordID, err)
		return entities.SubmissionResult{}, err
	}

	u.sessions.Delete(s.ID)
	log.Printf("[wizard][usecase] finish success session_id=%s record_id=%s items=%d", s.ID, s.RecordID, len(s.Items))
	return stored, nil
}

func indexOfItem(items []entities.ChecklistItem, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
