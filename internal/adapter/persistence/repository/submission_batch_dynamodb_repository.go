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

const defaultBatchesTableName = "submission_batches"

type progressEntryItem struct {
	RecordID string `dynamodbav:"record_id,omitempty"`
	Outcome  string `dynamodbav:"outcome"`
	Message  string `dynamodbav:"message"`
	Current  int    `dynamodbav:"current"`
	Total    int    `dynamodbav:"total"`
}

type submissionBatchItem struct {
	ID           string              `dynamodbav:"id"`
	CustomerCode string              `dynamodbav:"customer_code"`
	EngineerCode string              `dynamodbav:"engineer_code"`
	RecordIDs    []string            `dynamodbav:"record_ids"`
	Status       string              `dynamodbav:"status"`
	Log          []progressEntryItem `dynamodbav:"log"`
	NotifiedOK   bool                `dynamodbav:"notified_ok"`
	CreatedAt    string              `dynamodbav:"created_at"`
	FinishedAt   string              `dynamodbav:"finished_at,omitempty"`
}

// SubmissionBatchDynamoRepository persists submission batches and their
// ordered progress logs in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SubmissionBatchDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionBatchRepository = (*SubmissionBatchDynamoRepository)(nil)

func NewSubmissionBatchDynamoRepository(ddb *dynamodb.Client) *SubmissionBatchDynamoRepository {
	return &SubmissionBatchDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BATCHES_TABLE", defaultBatchesTableName),
	}
}

func (r *SubmissionBatchDynamoRepository) Create(ctx context.Context, b entities.SubmissionBatch) (entities.SubmissionBatch, error) {
	av, err := attributevalue.MarshalMap(toSubmissionBatchItem(b))
	if err != nil {
		return entities.SubmissionBatch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SubmissionBatch{}, err
	}
	return b, nil
}

// Update rewrites the whole batch row. The log only ever grows, so the last
// write of a sequential run is always the most complete.
func (r *SubmissionBatchDynamoRepository) Update(ctx context.Context, b entities.SubmissionBatch) (entities.SubmissionBatch, error) {
	av, err := attributevalue.MarshalMap(toSubmissionBatchItem(b))
	if err != nil {
		return entities.SubmissionBatch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SubmissionBatch{}, err
	}
	return b, nil
}

func (r *SubmissionBatchDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubmissionBatch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubmissionBatch{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubmissionBatch{}, nil
	}

	var it submissionBatchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubmissionBatch{}, err
	}
	return fromSubmissionBatchItem(it), nil
}

func toSubmissionBatchItem(b entities.SubmissionBatch) submissionBatchItem {
	logItems := make([]progressEntryItem, 0, len(b.Log))
	for _, e := range b.Log {
		logItems = append(logItems, progressEntryItem{
			RecordID: e.RecordID,
			Outcome:  string(e.Outcome),
			Message:  e.Message,
			Current:  e.Current,
			Total:    e.Total,
		})
	}
	it := submissionBatchItem{
		ID:           b.ID,
		CustomerCode: b.CustomerCode,
		EngineerCode: b.EngineerCode,
		RecordIDs:    b.RecordIDs,
		Status:       string(b.Status),
		Log:          logItems,
		NotifiedOK:   b.NotifiedOK,
		CreatedAt:    formatTime(b.CreatedAt),
	}
	if !b.FinishedAt.IsZero() {
		it.FinishedAt = formatTime(b.FinishedAt)
	}
	return it
}

func fromSubmissionBatchItem(it submissionBatchItem) entities.SubmissionBatch {
	logEntries := make([]entities.ProgressEntry, 0, len(it.Log))
	for _, e := range it.Log {
		logEntries = append(logEntries, entities.ProgressEntry{
			RecordID: e.RecordID,
			Outcome:  entities.ProgressOutcome(e.Outcome),
			Message:  e.Message,
			Current:  e.Current,
			Total:    e.Total,
		})
	}
	return entities.SubmissionBatch{
		ID:           it.ID,
		CustomerCode: it.CustomerCode,
		EngineerCode: it.EngineerCode,
		RecordIDs:    it.RecordIDs,
		Status:       entities.BatchStatus(it.Status),
		Log:          logEntries,
		NotifiedOK:   it.NotifiedOK,
		CreatedAt:    parseTime(it.CreatedAt),
		FinishedAt:   parseTime(it.FinishedAt),
	}
}
