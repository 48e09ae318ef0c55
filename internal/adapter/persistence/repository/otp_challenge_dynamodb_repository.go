package repository

import (
	"context"
	"errors"
	"time"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOtpTableName = "otp_challenges"

type otpChallengeItem struct {
	CustomerCode string `dynamodbav:"customer_code"`
	Code         string `dynamodbav:"code"`
	Verified     bool   `dynamodbav:"verified"`
	ExpiresAt    int64  `dynamodbav:"expires_at"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// OtpChallengeDynamoRepository keeps at most one live challenge per customer.
//
// Table requirements:
//   - PK: customer_code (string)
//   - TTL attribute: expires_at (epoch seconds)

type OtpChallengeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOtpChallengeRepository = (*OtpChallengeDynamoRepository)(nil)

func NewOtpChallengeDynamoRepository(ddb *dynamodb.Client) *OtpChallengeDynamoRepository {
	return &OtpChallengeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OTP_TABLE", defaultOtpTableName),
	}
}

// Put replaces any existing challenge for the customer.
func (r *OtpChallengeDynamoRepository) Put(ctx context.Context, c entities.OtpChallenge) (entities.OtpChallenge, error) {
	av, err := attributevalue.MarshalMap(otpChallengeItem{
		CustomerCode: c.CustomerCode,
		Code:         c.Code,
		Verified:     c.Verified,
		ExpiresAt:    c.ExpiresAt.Unix(),
		CreatedAt:    formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.OtpChallenge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.OtpChallenge{}, err
	}
	return c, nil
}

func (r *OtpChallengeDynamoRepository) GetByCustomerCode(ctx context.Context, customerCode string) (entities.OtpChallenge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_code": &types.AttributeValueMemberS{Value: customerCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OtpChallenge{}, err
	}
	if len(out.Item) == 0 {
		return entities.OtpChallenge{}, nil
	}

	var it otpChallengeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OtpChallenge{}, err
	}
	return fromOtpChallengeItem(it), nil
}

func (r *OtpChallengeDynamoRepository) MarkVerified(ctx context.Context, customerCode string) (entities.OtpChallenge, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_code": &types.AttributeValueMemberS{Value: customerCode},
		},
		UpdateExpression:    aws.String("SET #verified = :verified"),
		ConditionExpression: aws.String("attribute_exists(customer_code)"),
		ExpressionAttributeNames: map[string]string{
			"#verified": "verified",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":verified": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OtpChallenge{}, nil
		}
		return entities.OtpChallenge{}, err
	}

	var it otpChallengeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OtpChallenge{}, err
	}
	return fromOtpChallengeItem(it), nil
}

// Consume deletes the challenge so a verified code cannot authorize a second
// batch.
func (r *OtpChallengeDynamoRepository) Consume(ctx context.Context, customerCode string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_code": &types.AttributeValueMemberS{Value: customerCode},
		},
	})
	return err
}

func fromOtpChallengeItem(it otpChallengeItem) entities.OtpChallenge {
	return entities.OtpChallenge{
		CustomerCode: it.CustomerCode,
		Code:         it.Code,
		Verified:     it.Verified,
		ExpiresAt:    time.Unix(it.ExpiresAt, 0).UTC(),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
