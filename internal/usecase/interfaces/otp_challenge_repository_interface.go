package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// IOtpChallengeRepository abstracts DynamoDB persistence for OTP challenges.
// One live challenge per customer code; Put replaces. Consume deletes a
// verified challenge once the sequencer has used it (single-use).

type IOtpChallengeRepository interface {
	Put(ctx context.Context, c entities.OtpChallenge) (entities.OtpChallenge, error)
	GetByCustomerCode(ctx context.Context, customerCode string) (entities.OtpChallenge, error)
	MarkVerified(ctx context.Context, customerCode string) (entities.OtpChallenge, error)
	Consume(ctx context.Context, customerCode string) error
}
