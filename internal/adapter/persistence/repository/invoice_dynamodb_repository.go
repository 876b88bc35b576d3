package repository

import (
	"context"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	clientIDIndexName        = "clientId-index"
)

type invoiceLineItem struct {
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
}

type invoiceItem struct {
	ID            string            `dynamodbav:"id"`
	ClientID      string            `dynamodbav:"clientId,omitempty"`
	InvoiceNumber string            `dynamodbav:"invoiceNumber,omitempty"`
	Items         []invoiceLineItem `dynamodbav:"items"`
	PPN           bool              `dynamodbav:"ppn"`
	PPH           bool              `dynamodbav:"pph"`
	Status        string            `dynamodbav:"status,omitempty"`
	Notes         string            `dynamodbav:"notes,omitempty"`
	Tax           float64           `dynamodbav:"tax"`
	Total         float64           `dynamodbav:"total"`
	Dibayar       *float64          `dynamodbav:"dibayar,omitempty"`
	IssuedAt      string            `dynamodbav:"issuedAt,omitempty"`
	DueDate       string            `dynamodbav:"dueDate,omitempty"`
	CreatedAt     string            `dynamodbav:"createdAt,omitempty"`
}

var invoiceKnownAttrs = knownSet(
	"id", "clientId", "invoiceNumber", "items", "ppn", "pph", "status",
	"notes", "tax", "total", "dibayar", "issuedAt", "dueDate", "createdAt",
)

// InvoiceDynamoRepository persists Invoice documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (clientId-index): clientId

type InvoiceDynamoRepository struct {
	table docTable
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		table: docTable{ddb: ddb, tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName)},
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	if av, err = mergeExtra(av, inv.Extra); err != nil {
		return entities.Invoice{}, err
	}
	if err := r.table.put(ctx, av); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) ListAll(ctx context.Context) ([]entities.Invoice, error) {
	items, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	return invoicesFromAVs(items)
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id entities.ID) (entities.Invoice, error) {
	av, err := r.table.get(ctx, id.String())
	if err != nil {
		return entities.Invoice{}, err
	}
	if av == nil {
		return entities.Invoice{}, nil
	}
	return fromInvoiceAV(av)
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error) {
	return r.table.update(ctx, id.String(), fields)
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id entities.ID) (bool, error) {
	return r.table.delete(ctx, id.String())
}

func (r *InvoiceDynamoRepository) ListByClientID(ctx context.Context, clientID entities.ID) ([]entities.Invoice, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.table.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.table.tableName),
		IndexName:              aws.String(clientIDIndexName),
		KeyConditionExpression: aws.String("#clientId = :clientId"),
		ExpressionAttributeNames: map[string]string{
			"#clientId": "clientId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":clientId": &types.AttributeValueMemberS{Value: clientID.String()},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return invoicesFromAVs(items)
}

func (r *InvoiceDynamoRepository) CountByIssuedDate(ctx context.Context, date string) (int64, error) {
	var total int64
	p := dynamodb.NewScanPaginator(r.table.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.table.tableName),
		Select:           types.SelectCount,
		FilterExpression: aws.String("#issuedAt = :date"),
		ExpressionAttributeNames: map[string]string{
			"#issuedAt": "issuedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date": &types.AttributeValueMemberS{Value: date},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
	}
	return total, nil
}

func (r *InvoiceDynamoRepository) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		lines = append(lines, invoiceLineItem{Description: it.Description, Price: it.Price})
	}
	return invoiceItem{
		ID:            inv.ID.String(),
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		Items:         lines,
		PPN:           inv.PPN,
		PPH:           inv.PPH,
		Status:        inv.Status,
		Notes:         inv.Notes,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Dibayar:       inv.Dibayar,
		IssuedAt:      inv.IssuedAt,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
	}
}

func fromInvoiceAV(av map[string]types.AttributeValue) (entities.Invoice, error) {
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Invoice{}, err
	}
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.InvoiceItem{Description: line.Description, Price: line.Price})
	}
	return entities.Invoice{
		ID:            entities.ID(it.ID),
		ClientID:      it.ClientID,
		InvoiceNumber: it.InvoiceNumber,
		Items:         items,
		PPN:           it.PPN,
		PPH:           it.PPH,
		Status:        it.Status,
		Notes:         it.Notes,
		Tax:           it.Tax,
		Total:         it.Total,
		Dibayar:       it.Dibayar,
		IssuedAt:      it.IssuedAt,
		DueDate:       it.DueDate,
		CreatedAt:     it.CreatedAt,
		Extra:         extractExtra(av, invoiceKnownAttrs),
	}, nil
}

func invoicesFromAVs(items []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	out := make([]entities.Invoice, 0, len(items))
	for _, av := range items {
		inv, err := fromInvoiceAV(av)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}
