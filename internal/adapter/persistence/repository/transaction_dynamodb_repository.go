package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsDriverIndex      = "driver_phone-index"
)

type transactionItem struct {
	ID              string `dynamodbav:"id"`
	OrderID         string `dynamodbav:"order_id"`
	PaymentRef      string `dynamodbav:"payment_ref"`
	DriverPhone     string `dynamodbav:"driver_phone"`
	DriverName      string `dynamodbav:"driver_name"`
	Amount          string `dynamodbav:"amount"`
	PreviousBalance string `dynamodbav:"previous_balance"`
	NewBalance      string `dynamodbav:"new_balance"`
	Type            string `dynamodbav:"type"`
	Timestamp       string `dynamodbav:"timestamp"`
}

// TransactionDynamoRepository is the append-only audit sink for completed
// top-ups.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: driver_phone-index (PK: driver_phone)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionLog = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Append(ctx context.Context, tx entities.Transaction) error {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	// Write-once: an existing id must never be overwritten.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *TransactionDynamoRepository) ListByDriver(ctx context.Context, phone string, limit int) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsDriverIndex),
		KeyConditionExpression: aws.String("driver_phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return nil, err
	}

	txs := make([]entities.Transaction, 0, len(out.Items))
	for _, item := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		txs = append(txs, fromTransactionItem(it))
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:              tx.ID,
		OrderID:         tx.OrderID,
		PaymentRef:      tx.PaymentRef,
		DriverPhone:     tx.DriverPhone,
		DriverName:      tx.DriverName,
		Amount:          int64ToString(tx.Amount),
		PreviousBalance: int64ToString(tx.PreviousBalance),
		NewBalance:      int64ToString(tx.NewBalance),
		Type:            tx.Type,
		Timestamp:       tx.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	amount, _ := strconv.ParseInt(it.Amount, 10, 64)
	prev, _ := strconv.ParseInt(it.PreviousBalance, 10, 64)
	next, _ := strconv.ParseInt(it.NewBalance, 10, 64)
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.Transaction{
		ID:              it.ID,
		OrderID:         it.OrderID,
		PaymentRef:      it.PaymentRef,
		DriverPhone:     it.DriverPhone,
		DriverName:      it.DriverName,
		Amount:          amount,
		PreviousBalance: prev,
		NewBalance:      next,
		Type:            it.Type,
		Timestamp:       ts,
	}
}
