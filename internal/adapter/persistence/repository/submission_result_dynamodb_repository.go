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

const defaultResultsTableName = "submission_results"

type answeredItem struct {
	ID           string  `dynamodbav:"id"`
	Checkpoint   string  `dynamodbav:"checkpoint"`
	ResultType   string  `dynamodbav:"result_type"`
	Result       string  `dynamodbav:"result,omitempty"`
	Remark       string  `dynamodbav:"remark,omitempty"`
	StartVoltage float64 `dynamodbav:"start_voltage,omitempty"`
	EndVoltage   float64 `dynamodbav:"end_voltage,omitempty"`
}

type submissionResultItem struct {
	RecordID     string         `dynamodbav:"record_id"`
	Items        []answeredItem `dynamodbav:"items"`
	GlobalRemark string         `dynamodbav:"global_remark,omitempty"`
	CompletedAt  string         `dynamodbav:"completed_at"`
}

// SubmissionResultDynamoRepository persists completed wizard answer sets in
// DynamoDB.
//
// Table requirements:
//   - PK: record_id (string)
//
// Put overwrites unconditionally: a re-run wizard replaces the entry wholesale.

type SubmissionResultDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionResultRepository = (*SubmissionResultDynamoRepository)(nil)

func NewSubmissionResultDynamoRepository(ddb *dynamodb.Client) *SubmissionResultDynamoRepository {
	return &SubmissionResultDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESULTS_TABLE", defaultResultsTableName),
	}
}

func (r *SubmissionResultDynamoRepository) Put(ctx context.Context, res entities.SubmissionResult) (entities.SubmissionResult, error) {
	av, err := attributevalue.MarshalMap(toSubmissionResultItem(res))
	if err != nil {
		return entities.SubmissionResult{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SubmissionResult{}, err
	}
	return res, nil
}

func (r *SubmissionResultDynamoRepository) GetByRecordID(ctx context.Context, recordID string) (entities.SubmissionResult, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"record_id": &types.AttributeValueMemberS{Value: recordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubmissionResult{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubmissionResult{}, nil
	}

	var it submissionResultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubmissionResult{}, err
	}
	return fromSubmissionResultItem(it), nil
}

func toSubmissionResultItem(res entities.SubmissionResult) submissionResultItem {
	items := make([]answeredItem, 0, len(res.Items))
	for _, i := range res.Items {
		items = append(items, answeredItem{
			ID:           i.ID,
			Checkpoint:   i.Checkpoint,
			ResultType:   string(i.ResultType),
			Result:       i.Result,
			Remark:       i.Remark,
			StartVoltage: i.StartVoltage,
			EndVoltage:   i.EndVoltage,
		})
	}
	return submissionResultItem{
		RecordID:     res.RecordID,
		Items:        items,
		GlobalRemark: res.GlobalRemark,
		CompletedAt:  formatTime(res.CompletedAt),
	}
}

func fromSubmissionResultItem(it submissionResultItem) entities.SubmissionResult {
	items := make([]entities.ChecklistItem, 0, len(it.Items))
	for _, i := range it.Items {
		items = append(items, entities.ChecklistItem{
			ID:           i.ID,
			Checkpoint:   i.Checkpoint,
			ResultType:   entities.ResultType(i.ResultType),
			Result:       i.Result,
			Remark:       i.Remark,
			StartVoltage: i.StartVoltage,
			EndVoltage:   i.EndVoltage,
		})
	}
	return entities.SubmissionResult{
		RecordID:     it.RecordID,
		Items:        items,
		GlobalRemark: it.GlobalRemark,
		CompletedAt:  parseTime(it.CompletedAt),
	}
}
