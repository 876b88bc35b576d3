package usecase

import (
	"context"
	"sort"
	"strings"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"
)

const (
	defaultProjectSort     = "deadline-desc"
	defaultProjectPageSize = 10

	// Default work status for stored project records.
	statusProjectDefault = "belum dikerjakan"
)

// ProjectQuery selects, orders and pages the computed project view.
type ProjectQuery struct {
	Search   string
	Sort     string
	Page     int
	PageSize int
}

// StoredProjectInput is the POST /projects payload: either a copy of an
// existing invoice (ProjectID set) or a manual, invoice-less entry.
type StoredProjectInput struct {
	ClientID      string
	ProjectID     string
	ProjectName   string
	Deadline      string
	Notes         string
	StatusProject string
}

// IProjectUseCase produces the project view over invoices joined with
// clients, and writes stored-copy records for the legacy create endpoint.

type IProjectUseCase interface {
	ListView(ctx context.Context, q ProjectQuery) ([]entities.ProjectRow, error)
	CreateStored(ctx context.Context, in StoredProjectInput) (entities.Project, error)
}

type ProjectUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	clientRepo  interfaces.IClientRepository
	projectRepo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(invoiceRepo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository, projectRepo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo, projectRepo: projectRepo}
}

// joinedRow pairs an invoice with its left-joined client (nil when the
// reference is absent, opaque, or dangling).
type joinedRow struct {
	invoice entities.Invoice
	client  *entities.Client
}

// ListView runs the projection pipeline over in-memory collections:
// normalize refs -> left join -> filter -> sort -> paginate -> shape.
func (u *ProjectUseCase) ListView(ctx context.Context, q ProjectQuery) ([]entities.ProjectRow, error) {
	invoices, err := u.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := joinClients(invoices, clients)
	rows = filterRows(rows, q.Search)
	sortRows(rows, q.Sort)
	rows = paginateRows(rows, q.Page, q.PageSize)
	return shapeRows(rows), nil
}

func joinClients(invoices []entities.Invoice, clients []entities.Client) []joinedRow {
	byID := make(map[entities.ID]entities.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	rows := make([]joinedRow, 0, len(invoices))
	for _, inv := range invoices {
		row := joinedRow{invoice: inv}
		if ref, ok := entities.NormalizeRef(inv.ClientID); ok {
			if c, ok := byID[ref]; ok {
				row.client = &c
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// filterRows keeps rows whose client name or first item description contains
// search, case-insensitively. An empty search keeps everything.
func filterRows(rows []joinedRow, search string) []joinedRow {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return rows
	}

	kept := rows[:0]
	for _, row := range rows {
		if strings.Contains(strings.ToLower(clientName(row)), search) ||
			strings.Contains(strings.ToLower(firstItemDescription(row.invoice)), search) {
			kept = append(kept, row)
		}
	}
	return kept
}

// sortRows orders by due date when the sort key mentions "deadline",
// otherwise by client name. Descending unless the key ends in "asc". The
// sort is stable so pagination never duplicates or drops rows across pages.
func sortRows(rows []joinedRow, sortKey string) {
	if sortKey == "" {
		sortKey = defaultProjectSort
	}
	byDeadline := strings.Contains(sortKey, "deadline")
	asc := strings.HasSuffix(sortKey, "asc")

	sort.SliceStable(rows, func(i, j int) bool {
		var a, b string
		if byDeadline {
			a, b = rows[i].invoice.DueDate, rows[j].invoice.DueDate
		} else {
			a, b = clientName(rows[i]), clientName(rows[j])
		}
		if asc {
			return a < b
		}
		return a > b
	})
}

func paginateRows(rows []joinedRow, page, pageSize int) []joinedRow {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultProjectPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func shapeRows(rows []joinedRow) []entities.ProjectRow {
	out := make([]entities.ProjectRow, 0, len(rows))
	for _, row := range rows {
		inv := row.invoice
		out = append(out, entities.ProjectRow{
			ID:          inv.ID,
			ClientID:    inv.ClientID,
			ClientName:  clientName(row),
			ProjectName: firstItemDescription(inv),
			Deadline:    inv.DueDate,
			Status:      inv.Status,
			Notes:       inv.Notes,
			Dibayar:     inv.Dibayar,
			Total:       inv.Total,
			Outstanding: inv.Outstanding(),
		})
	}
	return out
}

func clientName(row joinedRow) string {
	if row.client == nil {
		return ""
	}
	return row.client.Name
}

func firstItemDescription(inv entities.Invoice) string {
	if len(inv.Items) == 0 {
		return ""
	}
	return inv.Items[0].Description
}

// CreateStored writes a stored-copy project record.
//
// Deprecated: the computed view (ListView) is the canonical project
// representation; this write path exists for compatibility with older
// frontends and is never read back by ListView.
func (u *ProjectUseCase) CreateStored(ctx context.Context, in StoredProjectInput) (entities.Project, error) {
	p := entities.Project{
		ID:            entities.NewID(),
		ClientID:      in.ClientID,
		Notes:         in.Notes,
		StatusProject: in.StatusProject,
	}
	if p.StatusProject == "" {
		p.StatusProject = statusProjectDefault
	}

	var inv entities.Invoice
	if ref, ok := entities.NormalizeRef(in.ProjectID); ok {
		loaded, err := u.invoiceRepo.GetByID(ctx, ref)
		if err != nil {
			return entities.Project{}, err
		}
		inv = loaded
	}

	if inv.ID != "" {
		p.ProjectID = in.ProjectID
		p.ProjectName = firstItemDescription(inv)
		p.Total = &inv.Total
		p.Dibayar = inv.Dibayar
		// Installment invoices are pinned to the invoice due date; otherwise
		// an explicit deadline wins over the invoice's.
		if inv.Status == entities.StatusCicil || in.Deadline == "" {
			p.Deadline = inv.DueDate
		} else {
			p.Deadline = in.Deadline
		}
	} else {
		p.ProjectName = in.ProjectName
		p.Deadline = in.Deadline
	}

	return u.projectRepo.Create(ctx, p)
}
