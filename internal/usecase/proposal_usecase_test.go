package usecase

import (
	"errors"
	"testing"

	"fieldserve/internal/domain/entities"
)

func TestProposalUseCase_RevisionTotals(t *testing.T) {
	uc := NewProposalUseCase()

	t.Run("no lines", func(t *testing.T) {
		if _, err := uc.RevisionTotals(nil, 0, 0, 0); !errors.Is(err, ErrNoProposalLines) {
			t.Fatalf("expected ErrNoProposalLines, got %v", err)
		}
	})

	t.Run("percentage out of range", func(t *testing.T) {
		lines := []entities.ProposalLine{{Description: "visit", Quantity: 1, UnitPrice: 100}}
		if _, err := uc.RevisionTotals(lines, -1, 0, 0); !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
		if _, err := uc.RevisionTotals(lines, 0, 101, 0); !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("invalid line", func(t *testing.T) {
		lines := []entities.ProposalLine{{Description: "visit", Quantity: 0, UnitPrice: 100}}
		if _, err := uc.RevisionTotals(lines, 0, 0, 0); !errors.Is(err, ErrInvalidLine) {
			t.Fatalf("expected ErrInvalidLine, got %v", err)
		}
	})

	t.Run("cascade order discount then tds then gst", func(t *testing.T) {
		lines := []entities.ProposalLine{
			{Description: "pm visit", Quantity: 2, UnitPrice: 400},
			{Description: "spare kit", Quantity: 1, UnitPrice: 200},
		}
		// subtotal 1000, 10% discount -> 900, 2% TDS -> 882, 18% GST on 882.
		got, err := uc.RevisionTotals(lines, 10, 2, 18)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.ProposalTotals{
			Subtotal:       1000,
			DiscountAmount: 100,
			AfterDiscount:  900,
			TDSAmount:      18,
			AfterTDS:       882,
			GSTAmount:      158.76,
			GrandTotal:     1040.76,
		}
		if got != want {
			t.Fatalf("unexpected totals:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("rounds each stage to two decimals", func(t *testing.T) {
		lines := []entities.ProposalLine{{Description: "part", Quantity: 3, UnitPrice: 33.333}}
		got, err := uc.RevisionTotals(lines, 5, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subtotal != 100 {
			t.Fatalf("expected rounded subtotal 100, got %v", got.Subtotal)
		}
		if got.DiscountAmount != 5 || got.AfterDiscount != 95 {
			t.Fatalf("unexpected discount stage: %+v", got)
		}
		if got.GrandTotal != 95 {
			t.Fatalf("expected grand total 95, got %v", got.GrandTotal)
		}
	})
}
