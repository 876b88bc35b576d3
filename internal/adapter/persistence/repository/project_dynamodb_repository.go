package repository

import (
	"context"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID            string   `dynamodbav:"id"`
	ClientID      string   `dynamodbav:"clientId,omitempty"`
	ProjectID     string   `dynamodbav:"projectId,omitempty"`
	ProjectName   string   `dynamodbav:"projectName,omitempty"`
	Deadline      string   `dynamodbav:"deadline,omitempty"`
	Notes         string   `dynamodbav:"notes,omitempty"`
	StatusProject string   `dynamodbav:"statusProject,omitempty"`
	Total         *float64 `dynamodbav:"total,omitempty"`
	Dibayar       *float64 `dynamodbav:"dibayar,omitempty"`
}

// ProjectDynamoRepository persists stored-copy project records. Write-only:
// the computed project view never reads this table.

type ProjectDynamoRepository struct {
	table docTable
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		table: docTable{ddb: ddb, tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName)},
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(projectItem{
		ID:            p.ID.String(),
		ClientID:      p.ClientID,
		ProjectID:     p.ProjectID,
		ProjectName:   p.ProjectName,
		Deadline:      p.Deadline,
		Notes:         p.Notes,
		StatusProject: p.StatusProject,
		Total:         p.Total,
		Dibayar:       p.Dibayar,
	})
	if err != nil {
		return entities.Project{}, err
	}
	if err := r.table.put(ctx, av); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}
