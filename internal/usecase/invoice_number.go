package usecase

import (
	"context"
	"fmt"
	"time"

	"studio_ops/internal/usecase/interfaces"
)

// IInvoiceNumberUseCase peeks the next daily-sequential invoice number
// without creating anything. Invoice creation does not auto-assign a number;
// callers fetch one here and submit it with the invoice payload.

type IInvoiceNumberUseCase interface {
	NextNumber(ctx context.Context) (string, error)
}

type InvoiceNumberUseCase struct {
	repo interfaces.IInvoiceRepository
	// clock is injectable so date-dependent output can be pinned in tests.
	clock func() time.Time
}

var _ IInvoiceNumberUseCase = (*InvoiceNumberUseCase)(nil)

func NewInvoiceNumberUseCase(repo interfaces.IInvoiceRepository) *InvoiceNumberUseCase {
	return &InvoiceNumberUseCase{repo: repo, clock: time.Now}
}

// NextNumber returns INV-YYYYMMDD-NNNN where NNNN is the 1-based count of
// invoices already issued today, zero-padded to four digits.
//
// Count-then-format is not atomic with any subsequent insert: two concurrent
// callers can observe the same count and receive the same number. Known
// limitation, accepted because this endpoint is a read-only peek.
func (u *InvoiceNumberUseCase) NextNumber(ctx context.Context) (string, error) {
	today := u.clock().Format("20060102")
	count, err := u.repo.CountByIssuedDate(ctx, today)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%s-%04d", today, count+1), nil
}
