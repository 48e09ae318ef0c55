package notifications

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

var (
	ErrMissingMailerURL          = errors.New("missing MAILER_URL")
	ErrMailerGatewayNotConfigured = errors.New("mailer gateway not configured")
)

// MailerGateway delivers OTP codes and batch report notifications through the
// external mail relay. The relay resolves customer addressing; this service
// never stores contact details.
//
// Mock mode (MAILER_MOCK) short-circuits delivery for local runs and tests.

type MailerGateway struct {
	baseURL  string
	apiToken string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IMailerGateway = (*MailerGateway)(nil)

func NewMailerGateway() (*MailerGateway, error) {
	if isMailerMockEnabled() {
		log.Printf("[mailer][gateway] mock mode enabled")
		return &MailerGateway{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("MAILER_URL")), "/")
	if baseURL == "" {
		log.Printf("[mailer][gateway] missing MAILER_URL")
		return nil, ErrMissingMailerURL
	}

	return &MailerGateway{
		baseURL:  baseURL,
		apiToken: strings.TrimSpace(os.Getenv("MAILER_API_TOKEN")),
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type otpMessage struct {
	CustomerCode string `json:"customer_code"`
	Code         string `json:"code"`
}

type reportAttachment struct {
	RecordID string `json:"record_id"`
	PDFB64   string `json:"pdf_b64"`
}

type batchMessage struct {
	CustomerCode string             `json:"customer_code"`
	Reports      []reportAttachment `json:"reports"`
}

func (g *MailerGateway) SendOtp(ctx context.Context, customerCode, code string) error {
	if g != nil && g.mockMode {
		log.Printf("[mailer][gateway] mock otp send customer_code=%s", customerCode)
		return nil
	}
	if g == nil || g.client == nil {
		return ErrMailerGatewayNotConfigured
	}
	return g.post(ctx, "/v1/otp", otpMessage{CustomerCode: customerCode, Code: code})
}

func (g *MailerGateway) SendBatchReports(ctx context.Context, customerCode string, reports []entities.PMReport) error {
	if g != nil && g.mockMode {
		log.Printf("[mailer][gateway] mock batch send customer_code=%s reports=%d", customerCode, len(reports))
		return nil
	}
	if g == nil || g.client == nil {
		return ErrMailerGatewayNotConfigured
	}

	msg := batchMessage{CustomerCode: customerCode, Reports: make([]reportAttachment, 0, len(reports))}
	for _, r := range reports {
		msg.Reports = append(msg.Reports, reportAttachment{
			RecordID: r.RecordID,
			PDFB64:   base64.StdEncoding.EncodeToString(r.PDF),
		})
	}
	return g.post(ctx, "/v1/batch-reports", msg)
}

func (g *MailerGateway) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiToken)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[mailer][gateway] request failed path=%s err=%v", path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[mailer][gateway] relay rejected path=%s status=%d body=%s", path, resp.StatusCode, string(b))
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}
	return nil
}

func isMailerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAILER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
