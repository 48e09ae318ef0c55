package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// IMailerGateway abstracts the external mail relay.
//
// SendOtp delivers a one-time code to the customer contact on file; the relay
// owns addressing. SendBatchReports sends one combined notification with every
// report of a batch attached.
type IMailerGateway interface {
	SendOtp(ctx context.Context, customerCode, code string) error
	SendBatchReports(ctx context.Context, customerCode string, reports []entities.PMReport) error
}
