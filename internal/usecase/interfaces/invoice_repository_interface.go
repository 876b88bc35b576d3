package interfaces

import (
	"context"

	"studio_ops/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// CountByIssuedDate counts invoices whose issuedAt equals the given YYYYMMDD
// date string; it backs the daily-sequential invoice numbering.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	ListAll(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Invoice, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id entities.ID) (bool, error)
	ListByClientID(ctx context.Context, clientID entities.ID) ([]entities.Invoice, error)
	CountByIssuedDate(ctx context.Context, date string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
