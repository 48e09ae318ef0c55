package notifications

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldserve/internal/domain/entities"
)

func TestNewMailerGateway(t *testing.T) {
	t.Run("mock mode", func(t *testing.T) {
		t.Setenv("MAILER_MOCK", "true")
		g, err := NewMailerGateway()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := g.SendOtp(context.Background(), "CUST-1", "123456"); err != nil {
			t.Fatalf("mock otp send should not fail, got %v", err)
		}
		if err := g.SendBatchReports(context.Background(), "CUST-1", nil); err != nil {
			t.Fatalf("mock batch send should not fail, got %v", err)
		}
	})

	t.Run("missing url", func(t *testing.T) {
		t.Setenv("MAILER_MOCK", "")
		t.Setenv("MAILER_URL", "")
		if _, err := NewMailerGateway(); !errors.Is(err, ErrMissingMailerURL) {
			t.Fatalf("expected ErrMissingMailerURL, got %v", err)
		}
	})
}

func TestMailerGateway_SendOtp(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody otpMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	t.Setenv("MAILER_MOCK", "")
	t.Setenv("MAILER_URL", srv.URL+"/")
	t.Setenv("MAILER_API_TOKEN", "relay-token")

	g, err := NewMailerGateway()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := g.SendOtp(context.Background(), "CUST-1", "123456"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/v1/otp" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer relay-token" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody.CustomerCode != "CUST-1" || gotBody.Code != "123456" {
		t.Fatalf("unexpected payload %+v", gotBody)
	}
}

func TestMailerGateway_SendBatchReports(t *testing.T) {
	var gotBody batchMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/batch-reports" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("MAILER_MOCK", "")
	t.Setenv("MAILER_URL", srv.URL)
	t.Setenv("MAILER_API_TOKEN", "")

	g, err := NewMailerGateway()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	reports := []entities.PMReport{
		{RecordID: "rec-1", PDF: []byte("pdf-one")},
		{RecordID: "rec-2", PDF: []byte("pdf-two")},
	}
	if err := g.SendBatchReports(context.Background(), "CUST-1", reports); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotBody.CustomerCode != "CUST-1" || len(gotBody.Reports) != 2 {
		t.Fatalf("unexpected payload %+v", gotBody)
	}
	if gotBody.Reports[0].PDFB64 != base64.StdEncoding.EncodeToString([]byte("pdf-one")) {
		t.Fatalf("pdf not base64 encoded: %q", gotBody.Reports[0].PDFB64)
	}
}

func TestMailerGateway_RelayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "relay unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	t.Setenv("MAILER_MOCK", "")
	t.Setenv("MAILER_URL", srv.URL)

	g, err := NewMailerGateway()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := g.SendOtp(context.Background(), "CUST-1", "123456"); err == nil {
		t.Fatalf("expected error on relay rejection")
	}
}
