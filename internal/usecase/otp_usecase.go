package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerCode  = errors.New("invalid customer code")
	ErrOtpCodeRequired      = errors.New("otp code required")
	ErrOtpChallengeNotFound = errors.New("otp challenge not found")
	ErrOtpExpired           = errors.New("otp challenge expired")
	ErrOtpMismatch          = errors.New("otp code mismatch")
)

// OtpValidity is the window within which a delivered code may be verified.
const OtpValidity = 5 * time.Minute

// IOtpUseCase is the two-call challenge gating batch submission: request a
// code for a customer, then verify it. A verified challenge unblocks exactly
// one batch run.

type IOtpUseCase interface {
	RequestCode(ctx context.Context, customerCode string) error
	VerifyCode(ctx context.Context, customerCode, code string) error
}

type OtpUseCase struct {
	otps   interfaces.IOtpChallengeRepository
	mailer interfaces.IMailerGateway
}

var _ IOtpUseCase = (*OtpUseCase)(nil)

func NewOtpUseCase(otps interfaces.IOtpChallengeRepository, mailer interfaces.IMailerGateway) *OtpUseCase {
	return &OtpUseCase{otps: otps, mailer: mailer}
}

// RequestCode generates and stores a fresh challenge, replacing any live one,
// then hands delivery to the mail relay. Delivery failures are logged and not
// surfaced: the challenge exists either way and the operator may retry entry.
func (u *OtpUseCase) RequestCode(ctx context.Context, customerCode string) error {
	customerCode = strings.TrimSpace(customerCode)
	if customerCode == "" {
		return ErrInvalidCustomerCode
	}

	code, err := generateOtpCode()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	ch := entities.OtpChallenge{
		CustomerCode: customerCode,
		Code:         code,
		ExpiresAt:    now.Add(OtpValidity),
		CreatedAt:    now,
	}
	if _, err := u.otps.Put(ctx, ch); err != nil {
		log.Printf("[otp][usecase] challenge store failed customer_code=%s err=%v", customerCode, err)
		return err
	}

	if err := u.mailer.SendOtp(ctx, customerCode, code); err != nil {
		log.Printf("[otp][usecase] code delivery failed customer_code=%s err=%v", customerCode, err)
	} else {
		log.Printf("[otp][usecase] code delivered customer_code=%s", customerCode)
	}
	return nil
}

// VerifyCode checks the entered code against the live challenge. An empty
// code is rejected before any store access. A mismatch leaves the challenge
// live for retry; a match marks it verified.
func (u *OtpUseCase) VerifyCode(ctx context.Context, customerCode, code string) error {
	customerCode = strings.TrimSpace(customerCode)
	if customerCode == "" {
		return ErrInvalidCustomerCode
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrOtpCodeRequired
	}

	ch, err := u.otps.GetByCustomerCode(ctx, customerCode)
	if err != nil {
		return err
	}
	if ch.CustomerCode == "" {
		return ErrOtpChallengeNotFound
	}
	if ch.Expired(time.Now().UTC()) {
		return ErrOtpExpired
	}
	if ch.Code != code {
		log.Printf("[otp][usecase] code mismatch customer_code=%s", customerCode)
		return ErrOtpMismatch
	}

	if _, err := u.otps.MarkVerified(ctx, customerCode); err != nil {
		return err
	}
	log.Printf("[otp][usecase] verified customer_code=%s", customerCode)
	return nil
}

func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
