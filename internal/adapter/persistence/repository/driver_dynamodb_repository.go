package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDriversTableName = "drivers"

type driverItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Phone      string `dynamodbav:"phone"`
	Email      string `dynamodbav:"email,omitempty"`
	Balance    string `dynamodbav:"balance"`
	Rating     int    `dynamodbav:"rating,omitempty"`
	Status     string `dynamodbav:"status,omitempty"`
	LastUpdate string `dynamodbav:"last_update,omitempty"`
}

// DriverDynamoRepository is the DynamoDB-backed driver directory.
//
// Table requirements:
//   - PK: phone (string, normalized 62xxx form)
//
// Balance is stored as a decimal string of whole rupiah so the arithmetic
// stays integer-only end to end.

type DriverDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDriverDirectory = (*DriverDynamoRepository)(nil)

func NewDriverDynamoRepository(ddb *dynamodb.Client) *DriverDynamoRepository {
	return &DriverDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRIVERS_TABLE", defaultDriversTableName),
	}
}

func (r *DriverDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.Driver, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Driver{}, err
	}
	if len(out.Item) == 0 {
		return entities.Driver{}, nil
	}

	var it driverItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

// UpdateBalance writes newBalance only while the stored balance still equals
// oldBalance. A conditional check failure surfaces as ErrBalanceConflict so
// the caller can re-read and retry; concurrent top-ups never interleave a
// read-modify-write.
func (r *DriverDynamoRepository) UpdateBalance(ctx context.Context, phone string, oldBalance, newBalance int64) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConditionExpression: aws.String("attribute_exists(#phone) AND #balance = :old"),
		UpdateExpression:    aws.String("SET #balance = :new, #last_update = :now"),
		ExpressionAttributeNames: map[string]string{
			"#phone":       "phone",
			"#balance":     "balance",
			"#last_update": "last_update",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":old": &types.AttributeValueMemberS{Value: int64ToString(oldBalance)},
			":new": &types.AttributeValueMemberS{Value: int64ToString(newBalance)},
			":now": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrBalanceConflict
		}
		return err
	}
	return nil
}

func fromDriverItem(it driverItem) entities.Driver {
	balance, _ := strconv.ParseInt(it.Balance, 10, 64)
	lastUpdate, _ := time.Parse(time.RFC3339Nano, it.LastUpdate)
	return entities.Driver{
		ID:         it.ID,
		Name:       it.Name,
		Phone:      it.Phone,
		Email:      it.Email,
		Balance:    balance,
		Rating:     it.Rating,
		Status:     it.Status,
		LastUpdate: lastUpdate,
	}
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
