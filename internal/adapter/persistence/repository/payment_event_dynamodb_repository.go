package repository

import (
	"context"
	"errors"
	"time"

	"remindpay/internal/domain/entities"
	"remindpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentEventsTableName = "payment_events"

type paymentEventItem struct {
	PaymentID  string `dynamodbav:"payment_id"`
	OrderID    string `dynamodbav:"order_id"`
	ReminderID string `dynamodbav:"reminder_id,omitempty"`
	Source     string `dynamodbav:"source"`
	ReceivedAt string `dynamodbav:"received_at"`
	PayloadRaw string `dynamodbav:"payload_raw,omitempty"`
}

// PaymentEventDynamoRepository is the processed-payments ledger.
//
// Table requirements:
//   - PK: payment_id (string)
//
// Record is write-once: the conditional put makes the first observation of a
// payment id win and every later one surface as ErrDuplicatePaymentEvent, so
// the verify endpoint and the webhook cannot double-apply the same payment.

type PaymentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb *dynamodb.Client) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultPaymentEventsTableName),
	}
}

func (r *PaymentEventDynamoRepository) Record(ctx context.Context, e entities.PaymentEvent) error {
	av, err := attributevalue.MarshalMap(toPaymentEventItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "payment_id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return interfaces.ErrDuplicatePaymentEvent
		}
		return err
	}
	return nil
}

func (r *PaymentEventDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.PaymentEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentEvent{}, nil
	}

	var it paymentEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentEvent{}, err
	}
	return fromPaymentEventItem(it), nil
}

func toPaymentEventItem(e entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		PaymentID:  e.PaymentID,
		OrderID:    e.OrderID,
		ReminderID: e.ReminderID,
		Source:     string(e.Source),
		ReceivedAt: e.ReceivedAt.UTC().Format(time.RFC3339Nano),
		PayloadRaw: string(e.PayloadRaw),
	}
}

func fromPaymentEventItem(it paymentEventItem) entities.PaymentEvent {
	dt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	return entities.PaymentEvent{
		PaymentID:  it.PaymentID,
		OrderID:    it.OrderID,
		ReminderID: it.ReminderID,
		Source:     entities.PaymentEventSource(it.Source),
		ReceivedAt: dt,
		PayloadRaw: []byte(it.PayloadRaw),
	}
}
