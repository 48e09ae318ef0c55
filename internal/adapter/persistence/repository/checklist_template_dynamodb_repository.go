package repository

import (
	"context"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChecklistsTableName = "checklist_templates"
	pmChecklistType            = "PM"
)

type checklistTemplateItem struct {
	ID            string  `dynamodbav:"id"`
	Checkpoint    string  `dynamodbav:"checkpoint"`
	ChecklistType string  `dynamodbav:"checklist_type"`
	ResultType    string  `dynamodbav:"result_type"`
	StartVoltage  float64 `dynamodbav:"start_voltage,omitempty"`
	EndVoltage    float64 `dynamodbav:"end_voltage,omitempty"`
}

type checklistTemplateRow struct {
	PartNumber string                  `dynamodbav:"part_number"`
	Items      []checklistTemplateItem `dynamodbav:"items"`
}

// ChecklistTemplateDynamoRepository persists checklist templates in DynamoDB.
//
// Table requirements:
//   - PK: part_number (string), one row per part holding the ordered item list
//
// Only PM-type checkpoints are returned; a template may also carry items for
// other inspection types.

type ChecklistTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistTemplateRepository = (*ChecklistTemplateDynamoRepository)(nil)

func NewChecklistTemplateDynamoRepository(ddb *dynamodb.Client) *ChecklistTemplateDynamoRepository {
	return &ChecklistTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLISTS_TABLE", defaultChecklistsTableName),
	}
}

func (r *ChecklistTemplateDynamoRepository) ListByPartNumber(ctx context.Context, partNumber string) ([]entities.ChecklistItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"part_number": &types.AttributeValueMemberS{Value: partNumber},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.ChecklistItem{}, nil
	}

	var row checklistTemplateRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return nil, err
	}

	items := make([]entities.ChecklistItem, 0, len(row.Items))
	for _, it := range row.Items {
		if it.ChecklistType != pmChecklistType {
			continue
		}
		items = append(items, entities.ChecklistItem{
			ID:           it.ID,
			Checkpoint:   it.Checkpoint,
			ResultType:   entities.ResultType(it.ResultType),
			StartVoltage: it.StartVoltage,
			EndVoltage:   it.EndVoltage,
		})
	}
	return items, nil
}
