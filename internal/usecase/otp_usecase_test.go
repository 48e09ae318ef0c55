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

func newOtpFixture(t *testing.T) (*OtpUseCase, *mock_interfaces.MockIOtpChallengeRepository, *mock_interfaces.MockIMailerGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	otps := mock_interfaces.NewMockIOtpChallengeRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailerGateway(ctrl)
	return NewOtpUseCase(otps, mailer), otps, mailer
}

func TestOtpUseCase_RequestCode(t *testing.T) {
	t.Run("blank customer code", func(t *testing.T) {
		uc, _, _ := newOtpFixture(t)
		if err := uc.RequestCode(context.Background(), "  "); !errors.Is(err, ErrInvalidCustomerCode) {
			t.Fatalf("expected ErrInvalidCustomerCode, got %v", err)
		}
	})

	t.Run("stores six digit code and sends it", func(t *testing.T) {
		uc, otps, mailer := newOtpFixture(t)

		var storedCode string
		otps.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.OtpChallenge{})).DoAndReturn(
			func(_ context.Context, ch entities.OtpChallenge) (entities.OtpChallenge, error) {
				if ch.CustomerCode != "CUST-1" {
					t.Fatalf("unexpected customer code %q", ch.CustomerCode)
				}
				if len(ch.Code) != 6 {
					t.Fatalf("expected 6 digit code, got %q", ch.Code)
				}
				if ch.Verified {
					t.Fatalf("fresh challenge must not be verified")
				}
				window := ch.ExpiresAt.Sub(ch.CreatedAt)
				if window != OtpValidity {
					t.Fatalf("expected %v validity, got %v", OtpValidity, window)
				}
				storedCode = ch.Code
				return ch, nil
			},
		)
		mailer.EXPECT().SendOtp(gomock.Any(), "CUST-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, code string) error {
				if code != storedCode {
					t.Fatalf("sent code %q differs from stored %q", code, storedCode)
				}
				return nil
			},
		)

		if err := uc.RequestCode(context.Background(), "CUST-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivery failure is not surfaced", func(t *testing.T) {
		uc, otps, mailer := newOtpFixture(t)
		otps.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ch entities.OtpChallenge) (entities.OtpChallenge, error) { return ch, nil },
		)
		mailer.EXPECT().SendOtp(gomock.Any(), "CUST-1", gomock.Any()).Return(errors.New("relay down"))

		if err := uc.RequestCode(context.Background(), "CUST-1"); err != nil {
			t.Fatalf("expected nil despite delivery failure, got %v", err)
		}
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		uc, otps, _ := newOtpFixture(t)
		otps.EXPECT().Put(gomock.Any(), gomock.Any()).Return(entities.OtpChallenge{}, errors.New("db"))
		if err := uc.RequestCode(context.Background(), "CUST-1"); err == nil {
			t.Fatalf("expected store error")
		}
	})
}

func TestOtpUseCase_VerifyCode(t *testing.T) {
	liveChallenge := func() entities.OtpChallenge {
		return entities.OtpChallenge{
			CustomerCode: "CUST-1",
			Code:         "123456",
			ExpiresAt:    time.Now().UTC().Add(time.Minute),
			CreatedAt:    time.Now().UTC(),
		}
	}

	t.Run("empty code rejected before any store access", func(t *testing.T) {
		uc, _, _ := newOtpFixture(t)
		if err := uc.VerifyCode(context.Background(), "CUST-1", "   "); !errors.Is(err, ErrOtpCodeRequired) {
			t.Fatalf("expected ErrOtpCodeRequired, got %v", err)
		}
	})

	t.Run("no live challenge", func(t *testing.T) {
		uc, otps, _ := newOtpFixture(t)
		otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(entities.OtpChallenge{}, nil)
		if err := uc.VerifyCode(context.Background(), "CUST-1", "123456"); !errors.Is(err, ErrOtpChallengeNotFound) {
			t.Fatalf("expected ErrOtpChallengeNotFound, got %v", err)
		}
	})

	t.Run("expired challenge", func(t *testing.T) {
		uc, otps, _ := newOtpFixture(t)
		ch := liveChallenge()
		ch.ExpiresAt = time.Now().UTC().Add(-time.Second)
		otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(ch, nil)
		if err := uc.VerifyCode(context.Background(), "CUST-1", "123456"); !errors.Is(err, ErrOtpExpired) {
			t.Fatalf("expected ErrOtpExpired, got %v", err)
		}
	})

	t.Run("mismatch leaves challenge live", func(t *testing.T) {
		uc, otps, _ := newOtpFixture(t)
		otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(liveChallenge(), nil)
		// No MarkVerified, no Consume: the challenge survives for retry.
		if err := uc.VerifyCode(context.Background(), "CUST-1", "000000"); !errors.Is(err, ErrOtpMismatch) {
			t.Fatalf("expected ErrOtpMismatch, got %v", err)
		}

		otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(liveChallenge(), nil)
		otps.EXPECT().MarkVerified(gomock.Any(), "CUST-1").Return(liveChallenge(), nil)
		if err := uc.VerifyCode(context.Background(), "CUST-1", "123456"); err != nil {
			t.Fatalf("unexpected error after retry: %v", err)
		}
	})

	t.Run("match marks verified", func(t *testing.T) {
		uc, otps, _ := newOtpFixture(t)
		otps.EXPECT().GetByCustomerCode(gomock.Any(), "CUST-1").Return(liveChallenge(), nil)
		otps.EXPECT().MarkVerified(gomock.Any(), "CUST-1").Return(liveChallenge(), nil)
		if err := uc.VerifyCode(context.Background(), "CUST-1", "123456"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
