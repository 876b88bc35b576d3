package usecase

import (
	"context"
	"errors"
	"time"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoicePatch is a partial update payload. Fields carries every supplied
// attribute for the merge write; Items/PPN/PPH/Status are the typed view the
// financial recomputation reads.
type InvoicePatch struct {
	Items  []entities.InvoiceItem
	PPN    bool
	PPH    bool
	Status string
	Fields map[string]any
}

// IInvoiceUseCase exposes invoice CRUD plus PNG rendering. Create and Update
// both route through the financial recomputation: derived tax/total (and
// dibayar for lunas invoices) always win over caller-supplied values.

type IInvoiceUseCase interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Invoice, error)
	Update(ctx context.Context, id entities.ID, patch InvoicePatch) error
	Delete(ctx context.Context, id entities.ID) error
	ListByClient(ctx context.Context, clientID entities.ID) ([]entities.Invoice, error)
	RenderPNG(ctx context.Context, id entities.ID) ([]byte, entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo       interfaces.IInvoiceRepository
	clientRepo interfaces.IClientRepository
	renderer   interfaces.IInvoiceRenderer
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository, renderer interfaces.IInvoiceRenderer) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, renderer: renderer}
}

func (u *InvoiceUseCase) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.ID = entities.NewID()
	inv.ApplyFinancials()
	if inv.CreatedAt == "" {
		inv.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.ListAll(ctx)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id entities.ID) (entities.Invoice, error) {
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// Update merges the supplied attributes into the stored document, with
// tax/total recomputed from the payload itself. A payload without items
// therefore recomputes over an empty set and zeroes both derived fields;
// callers must resend items to keep them.
func (u *InvoiceUseCase) Update(ctx context.Context, id entities.ID, patch InvoicePatch) error {
	subtotal := entities.Subtotal(patch.Items)
	tax := entities.ComputeTax(subtotal, patch.PPN, patch.PPH)
	total := subtotal + tax

	fields := patch.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	if _, ok := fields["items"]; ok {
		fields["items"] = itemFields(patch.Items)
	}
	fields["tax"] = tax
	fields["total"] = total
	if patch.Status == entities.StatusLunas {
		fields["dibayar"] = total
	}

	found, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvoiceNotFound
	}
	return nil
}

// itemFields rebuilds the items attribute from the typed line items, so a
// leniently decoded price (numeric string in the payload) is persisted as a
// number the read path can unmarshal.
func itemFields(items []entities.InvoiceItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, map[string]any{"description": it.Description, "price": it.Price})
	}
	return out
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id entities.ID) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvoiceNotFound
	}
	return nil
}

func (u *InvoiceUseCase) ListByClient(ctx context.Context, clientID entities.ID) ([]entities.Invoice, error) {
	return u.repo.ListByClientID(ctx, clientID)
}

// RenderPNG loads the invoice and, when its client reference resolves, the
// client, then delegates to the image renderer.
func (u *InvoiceUseCase) RenderPNG(ctx context.Context, id entities.ID) ([]byte, entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, entities.Invoice{}, err
	}

	var client *entities.Client
	if ref, ok := entities.NormalizeRef(inv.ClientID); ok {
		c, err := u.clientRepo.GetByID(ctx, ref)
		if err == nil && c.ID != "" {
			client = &c
		}
	}

	png, err := u.renderer.RenderPNG(inv, client)
	if err != nil {
		return nil, entities.Invoice{}, err
	}
	return png, inv, nil
}
