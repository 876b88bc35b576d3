package repository

import (
	"context"
	"encoding/json"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID        string   `dynamodbav:"id"`
	InvoiceID string   `dynamodbav:"invoiceId,omitempty"`
	Amount    *float64 `dynamodbav:"amount,omitempty"`
	Method    string   `dynamodbav:"method,omitempty"`
	Date      string   `dynamodbav:"date,omitempty"`

	MPPaymentID   string         `dynamodbav:"mp_payment_id,omitempty"`
	MPStatus      string         `dynamodbav:"mp_status,omitempty"`
	MPResponseRaw string         `dynamodbav:"mp_response_raw,omitempty"`
	MPResponse    map[string]any `dynamodbav:"mp_response,omitempty"`
}

var paymentKnownAttrs = knownSet(
	"id", "invoiceId", "amount", "method", "date",
	"mp_payment_id", "mp_status", "mp_response_raw", "mp_response",
)

// PaymentDynamoRepository persists Payment documents in DynamoDB.

type PaymentDynamoRepository struct {
	table docTable
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		table: docTable{ddb: ddb, tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName)},
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	if av, err = mergeExtra(av, p.Extra); err != nil {
		return entities.Payment{}, err
	}
	if err := r.table.put(ctx, av); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListAll(ctx context.Context) ([]entities.Payment, error) {
	items, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, av := range items {
		p, err := fromPaymentAV(av)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id entities.ID) (entities.Payment, error) {
	av, err := r.table.get(ctx, id.String())
	if err != nil {
		return entities.Payment{}, err
	}
	if av == nil {
		return entities.Payment{}, nil
	}
	return fromPaymentAV(av)
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error) {
	return r.table.update(ctx, id.String(), fields)
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, id entities.ID) (bool, error) {
	return r.table.delete(ctx, id.String())
}

func (r *PaymentDynamoRepository) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID.String(),
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		Method:        p.Method,
		Date:          p.Date,
		MPPaymentID:   p.MPPaymentID,
		MPStatus:      p.MPStatus,
		MPResponseRaw: string(p.MPResponseRaw),
		MPResponse:    p.MPResponse,
	}
}

func fromPaymentAV(av map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Payment{}, err
	}
	var raw json.RawMessage
	if it.MPResponseRaw != "" {
		raw = json.RawMessage(it.MPResponseRaw)
	}
	return entities.Payment{
		ID:            entities.ID(it.ID),
		InvoiceID:     it.InvoiceID,
		Amount:        it.Amount,
		Method:        it.Method,
		Date:          it.Date,
		MPPaymentID:   it.MPPaymentID,
		MPStatus:      it.MPStatus,
		MPResponseRaw: raw,
		MPResponse:    it.MPResponse,
		Extra:         extractExtra(av, paymentKnownAttrs),
	}, nil
}
