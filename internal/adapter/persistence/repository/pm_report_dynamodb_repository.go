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

const defaultReportsTableName = "pm_reports"

type pmReportItem struct {
	RecordID     string `dynamodbav:"record_id"`
	BatchID      string `dynamodbav:"batch_id"`
	CustomerCode string `dynamodbav:"customer_code"`
	PDF          []byte `dynamodbav:"pdf"`
	GeneratedAt  string `dynamodbav:"generated_at"`
}

// PMReportDynamoRepository stores generated PM reports in DynamoDB. A stored
// report is the durable marker that its record was already submitted.
//
// Table requirements:
//   - PK: record_id (string)

type PMReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPMReportRepository = (*PMReportDynamoRepository)(nil)

func NewPMReportDynamoRepository(ddb *dynamodb.Client) *PMReportDynamoRepository {
	return &PMReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *PMReportDynamoRepository) Save(ctx context.Context, rep entities.PMReport) (entities.PMReport, error) {
	av, err := attributevalue.MarshalMap(pmReportItem{
		RecordID:     rep.RecordID,
		BatchID:      rep.BatchID,
		CustomerCode: rep.CustomerCode,
		PDF:          rep.PDF,
		GeneratedAt:  formatTime(rep.GeneratedAt),
	})
	if err != nil {
		return entities.PMReport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PMReport{}, err
	}
	return rep, nil
}

func (r *PMReportDynamoRepository) GetByRecordID(ctx context.Context, recordID string) (entities.PMReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"record_id": &types.AttributeValueMemberS{Value: recordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PMReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.PMReport{}, nil
	}

	var it pmReportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PMReport{}, err
	}
	return entities.PMReport{
		RecordID:     it.RecordID,
		BatchID:      it.BatchID,
		CustomerCode: it.CustomerCode,
		PDF:          it.PDF,
		GeneratedAt:  parseTime(it.GeneratedAt),
	}, nil
}
