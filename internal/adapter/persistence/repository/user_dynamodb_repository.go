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

const defaultUsersTableName = "users"

type userItem struct {
	ID           string `dynamodbav:"id"`
	EmployeeCode string `dynamodbav:"employee_code"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	DeviceID     string `dynamodbav:"device_id,omitempty"`
	IsActive     bool   `dynamodbav:"is_active"`
	MobileAccess bool   `dynamodbav:"mobile_access"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository reads engineer accounts from DynamoDB.
//
// Table requirements:
//   - PK: employee_code (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"employee_code": &types.AttributeValueMemberS{Value: employeeCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// BindDevice registers the account's mobile device. The condition only lets
// the first device through; a later login from a different device never
// overwrites the binding.
func (r *UserDynamoRepository) BindDevice(ctx context.Context, employeeCode, deviceID string) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"employee_code": &types.AttributeValueMemberS{Value: employeeCode},
		},
		UpdateExpression:    aws.String("SET #device_id = :device_id, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(employee_code) AND (attribute_not_exists(#device_id) OR #device_id = :empty OR #device_id = :device_id)"),
		ExpressionAttributeNames: map[string]string{
			"#device_id":  "device_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":device_id":  &types.AttributeValueMemberS{Value: deviceID},
			":empty":      &types.AttributeValueMemberS{Value: ""},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		EmployeeCode: it.EmployeeCode,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		DeviceID:     it.DeviceID,
		IsActive:     it.IsActive,
		MobileAccess: it.MobileAccess,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
