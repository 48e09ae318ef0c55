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

const defaultDocRefsTableName = "doc_references"

type docRefItem struct {
	ChlNo string `dynamodbav:"chl_no"`
	RevNo string `dynamodbav:"rev_no"`
}

type docReferenceRow struct {
	PartNumber string       `dynamodbav:"part_number"`
	Documents  []docRefItem `dynamodbav:"documents"`
	Formats    []docRefItem `dynamodbav:"formats"`
}

// DocReferenceDynamoRepository persists document/format reference numbers in
// DynamoDB, keyed by part number.

type DocReferenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocReferenceRepository = (*DocReferenceDynamoRepository)(nil)

func NewDocReferenceDynamoRepository(ddb *dynamodb.Client) *DocReferenceDynamoRepository {
	return &DocReferenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCREFS_TABLE", defaultDocRefsTableName),
	}
}

func (r *DocReferenceDynamoRepository) GetByPartNumber(ctx context.Context, partNumber string) (entities.DocReferenceSet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"part_number": &types.AttributeValueMemberS{Value: partNumber},
		},
	})
	if err != nil {
		return entities.DocReferenceSet{}, err
	}
	if len(out.Item) == 0 {
		return entities.DocReferenceSet{PartNumber: partNumber}, nil
	}

	var row docReferenceRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.DocReferenceSet{}, err
	}

	set := entities.DocReferenceSet{PartNumber: row.PartNumber}
	for _, d := range row.Documents {
		set.Documents = append(set.Documents, entities.DocReference{ChlNo: d.ChlNo, RevNo: d.RevNo})
	}
	for _, f := range row.Formats {
		set.Formats = append(set.Formats, entities.DocReference{ChlNo: f.ChlNo, RevNo: f.RevNo})
	}
	return set, nil
}
