package interfaces

import (
	"studio_ops/internal/domain/entities"
)

// IInvoiceRenderer renders an invoice as a downloadable raster image. The
// client may be nil when the invoice has no resolvable client reference.
type IInvoiceRenderer interface {
	RenderPNG(inv entities.Invoice, client *entities.Client) ([]byte, error)
}
