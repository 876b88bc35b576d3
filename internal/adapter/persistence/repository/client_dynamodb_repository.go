package repository

import (
	"context"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"createdAt,omitempty"`
}

var clientKnownAttrs = knownSet("id", "name", "phone", "email", "address", "createdAt")

// ClientDynamoRepository persists Client documents in DynamoDB.

type ClientDynamoRepository struct {
	table docTable
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		table: docTable{ddb: ddb, tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName)},
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}
	if av, err = mergeExtra(av, c.Extra); err != nil {
		return entities.Client{}, err
	}
	if err := r.table.put(ctx, av); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) ListAll(ctx context.Context) ([]entities.Client, error) {
	items, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, av := range items {
		c, err := fromClientAV(av)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id entities.ID) (entities.Client, error) {
	av, err := r.table.get(ctx, id.String())
	if err != nil {
		return entities.Client{}, err
	}
	if av == nil {
		return entities.Client{}, nil
	}
	return fromClientAV(av)
}

func (r *ClientDynamoRepository) Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error) {
	return r.table.update(ctx, id.String(), fields)
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id entities.ID) (bool, error) {
	return r.table.delete(ctx, id.String())
}

func (r *ClientDynamoRepository) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func fromClientAV(av map[string]types.AttributeValue) (entities.Client, error) {
	var it clientItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Client{}, err
	}
	return entities.Client{
		ID:        entities.ID(it.ID),
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		Address:   it.Address,
		CreatedAt: it.CreatedAt,
		Extra:     extractExtra(av, clientKnownAttrs),
	}, nil
}
