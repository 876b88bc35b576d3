package repository

import (
	"context"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFeedbacksTableName = "feedbacks"

type feedbackItem struct {
	ID        string   `dynamodbav:"id"`
	ClientID  string   `dynamodbav:"clientId,omitempty"`
	InvoiceID string   `dynamodbav:"invoiceId,omitempty"`
	Rating    *float64 `dynamodbav:"rating,omitempty"`
	Comment   string   `dynamodbav:"comment,omitempty"`
}

var feedbackKnownAttrs = knownSet("id", "clientId", "invoiceId", "rating", "comment")

// FeedbackDynamoRepository persists Feedback documents in DynamoDB.

type FeedbackDynamoRepository struct {
	table docTable
}

var _ interfaces.IFeedbackRepository = (*FeedbackDynamoRepository)(nil)

func NewFeedbackDynamoRepository(ddb *dynamodb.Client) *FeedbackDynamoRepository {
	return &FeedbackDynamoRepository{
		table: docTable{ddb: ddb, tableName: getenvDefault("FEEDBACKS_TABLE", defaultFeedbacksTableName)},
	}
}

func (r *FeedbackDynamoRepository) Create(ctx context.Context, f entities.Feedback) (entities.Feedback, error) {
	av, err := attributevalue.MarshalMap(toFeedbackItem(f))
	if err != nil {
		return entities.Feedback{}, err
	}
	if av, err = mergeExtra(av, f.Extra); err != nil {
		return entities.Feedback{}, err
	}
	if err := r.table.put(ctx, av); err != nil {
		return entities.Feedback{}, err
	}
	return f, nil
}

func (r *FeedbackDynamoRepository) ListAll(ctx context.Context) ([]entities.Feedback, error) {
	items, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Feedback, 0, len(items))
	for _, av := range items {
		f, err := fromFeedbackAV(av)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *FeedbackDynamoRepository) GetByID(ctx context.Context, id entities.ID) (entities.Feedback, error) {
	av, err := r.table.get(ctx, id.String())
	if err != nil {
		return entities.Feedback{}, err
	}
	if av == nil {
		return entities.Feedback{}, nil
	}
	return fromFeedbackAV(av)
}

func (r *FeedbackDynamoRepository) Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error) {
	return r.table.update(ctx, id.String(), fields)
}

func (r *FeedbackDynamoRepository) Delete(ctx context.Context, id entities.ID) (bool, error) {
	return r.table.delete(ctx, id.String())
}

func (r *FeedbackDynamoRepository) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}

func toFeedbackItem(f entities.Feedback) feedbackItem {
	return feedbackItem{
		ID:        f.ID.String(),
		ClientID:  f.ClientID,
		InvoiceID: f.InvoiceID,
		Rating:    f.Rating,
		Comment:   f.Comment,
	}
}

func fromFeedbackAV(av map[string]types.AttributeValue) (entities.Feedback, error) {
	var it feedbackItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Feedback{}, err
	}
	return entities.Feedback{
		ID:        entities.ID(it.ID),
		ClientID:  it.ClientID,
		InvoiceID: it.InvoiceID,
		Rating:    it.Rating,
		Comment:   it.Comment,
		Extra:     extractExtra(av, feedbackKnownAttrs),
	}, nil
}
