package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldserve/internal/adapter/http/handlers/mocks"
	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func recordRouter(t *testing.T) (*gin.Engine, *mocks.MockIRecordUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRecordUseCase(ctrl)
	h := NewRecordHandler(uc)

	r := gin.New()
	r.GET("/v1/records/pending/:customer_code", h.ListPending)
	r.GET("/v1/checklists/:part_number", h.ChecklistByPart)
	r.GET("/v1/doc-references/:part_number", h.DocRefsByPart)
	return r, uc
}

func TestRecordHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns pending records", func(t *testing.T) {
		r, uc := recordRouter(t)
		uc.EXPECT().ListPending(gomock.Any(), "CUST-1").Return([]entities.MaintenanceRecord{
			{ID: "rec-1", CustomerCode: "CUST-1", PartNumber: "PN-100", SerialNumber: "SN-001", PMStatus: entities.PMStatusPending},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/records/pending/CUST-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "rec-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		r, uc := recordRouter(t)
		uc.EXPECT().ListPending(gomock.Any(), "CUST-1").Return(nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/records/pending/CUST-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestRecordHandler_ChecklistByPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blank part number", func(t *testing.T) {
		r, uc := recordRouter(t)
		uc.EXPECT().ChecklistByPart(gomock.Any(), "   ").Return(nil, usecase.ErrInvalidPartNumber)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/%20%20%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns template", func(t *testing.T) {
		r, uc := recordRouter(t)
		uc.EXPECT().ChecklistByPart(gomock.Any(), "PN-100").Return([]entities.ChecklistItem{
			{ID: "i-1", Checkpoint: "Inspect housing", ResultType: entities.ResultTypeOkNotOk},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/PN-100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["checkpoint"] != "Inspect housing" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRecordHandler_DocRefsByPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns reference set", func(t *testing.T) {
		r, uc := recordRouter(t)
		uc.EXPECT().DocRefsByPart(gomock.Any(), "PN-100").Return(entities.DocReferenceSet{
			PartNumber: "PN-100",
			Documents:  []entities.DocReference{{ChlNo: "DOC-1", RevNo: "R2"}},
			Formats:    []entities.DocReference{{ChlNo: "FMT-1", RevNo: "R1"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/doc-references/PN-100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["part_number"] != "PN-100" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapRecordError(t *testing.T) {
	if got := mapRecordError(usecase.ErrInvalidCustomerCode); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(usecase.ErrInvalidPartNumber); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
