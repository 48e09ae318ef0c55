package repository

import (
	"context"
	"errors"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecordsTableName = "maintenance_records"
	recordsCustomerIndex    = "customer_code-index"
)

type maintenanceRecordItem struct {
	ID           string `dynamodbav:"id"`
	PartNumber   string `dynamodbav:"part_number"`
	SerialNumber string `dynamodbav:"serial_number"`
	CustomerCode string `dynamodbav:"customer_code"`

	PMDueMonth     string `dynamodbav:"pm_due_month"`
	PMDoneDate     string `dynamodbav:"pm_done_date,omitempty"`
	PMEngineerCode string `dynamodbav:"pm_engineer_code,omitempty"`
	PMStatus       string `dynamodbav:"pm_status"`

	DocumentChlNo string `dynamodbav:"document_chl_no,omitempty"`
	DocumentRevNo string `dynamodbav:"document_rev_no,omitempty"`
	FormatChlNo   string `dynamodbav:"format_chl_no,omitempty"`
	FormatRevNo   string `dynamodbav:"format_rev_no,omitempty"`
}

// MaintenanceRecordDynamoRepository persists MaintenanceRecord entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_code-index (PK: customer_code)

type MaintenanceRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceRecordRepository = (*MaintenanceRecordDynamoRepository)(nil)

func NewMaintenanceRecordDynamoRepository(ddb *dynamodb.Client) *MaintenanceRecordDynamoRepository {
	return &MaintenanceRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (r *MaintenanceRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceRecord{}, nil
	}

	var it maintenanceRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceRecord{}, err
	}
	return fromMaintenanceRecordItem(it), nil
}

func (r *MaintenanceRecordDynamoRepository) ListPendingByCustomerCode(ctx context.Context, customerCode string) ([]entities.MaintenanceRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recordsCustomerIndex),
		KeyConditionExpression: aws.String("customer_code = :cc"),
		FilterExpression:       aws.String("pm_status = :st"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cc": &types.AttributeValueMemberS{Value: customerCode},
			":st": &types.AttributeValueMemberS{Value: string(entities.PMStatusPending)},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.MaintenanceRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it maintenanceRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromMaintenanceRecordItem(it))
	}
	return records, nil
}

func (r *MaintenanceRecordDynamoRepository) UpdateCompletion(ctx context.Context, rec entities.MaintenanceRecord) (entities.MaintenanceRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rec.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET pm_done_date = :done, pm_engineer_code = :eng, pm_status = :st, " +
			"document_chl_no = :dchl, document_rev_no = :drev, format_chl_no = :fchl, format_rev_no = :frev"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":done": &types.AttributeValueMemberS{Value: rec.PMDoneDate},
			":eng":  &types.AttributeValueMemberS{Value: rec.PMEngineerCode},
			":st":   &types.AttributeValueMemberS{Value: string(rec.PMStatus)},
			":dchl": &types.AttributeValueMemberS{Value: rec.DocumentChlNo},
			":drev": &types.AttributeValueMemberS{Value: rec.DocumentRevNo},
			":fchl": &types.AttributeValueMemberS{Value: rec.FormatChlNo},
			":frev": &types.AttributeValueMemberS{Value: rec.FormatRevNo},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaintenanceRecord{}, nil
		}
		return entities.MaintenanceRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.MaintenanceRecord{}, nil
	}

	var it maintenanceRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MaintenanceRecord{}, err
	}
	return fromMaintenanceRecordItem(it), nil
}

func fromMaintenanceRecordItem(it maintenanceRecordItem) entities.MaintenanceRecord {
	return entities.MaintenanceRecord{
		ID:             it.ID,
		PartNumber:     it.PartNumber,
		SerialNumber:   it.SerialNumber,
		CustomerCode:   it.CustomerCode,
		PMDueMonth:     it.PMDueMonth,
		PMDoneDate:     it.PMDoneDate,
		PMEngineerCode: it.PMEngineerCode,
		PMStatus:       entities.PMStatus(it.PMStatus),
		DocumentChlNo:  it.DocumentChlNo,
		DocumentRevNo:  it.DocumentRevNo,
		FormatChlNo:    it.FormatChlNo,
		FormatRevNo:    it.FormatRevNo,
	}
}
