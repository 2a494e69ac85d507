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

const defaultRemindersTableName = "reminders"

type reminderItem struct {
	ID     string `dynamodbav:"id"`
	Title  string `dynamodbav:"title,omitempty"`
	IsPaid bool   `dynamodbav:"is_paid"`
	PaidAt string `dynamodbav:"paid_at,omitempty"`
}

// ReminderDynamoRepository mutates the payment fields of reminder records.
//
// Table requirements:
//   - PK: id (string)
//
// MarkPaid is a single conditional UpdateItem, so concurrent verify/webhook
// attempts on the same reminder serialize inside DynamoDB: is_paid only ever
// moves false -> true and paid_at keeps its first written value.

type ReminderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReminderRepository = (*ReminderDynamoRepository)(nil)

func NewReminderDynamoRepository(ddb *dynamodb.Client) *ReminderDynamoRepository {
	return &ReminderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REMINDERS_TABLE", defaultRemindersTableName),
	}
}

func (r *ReminderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reminder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reminder{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reminder{}, nil
	}

	var it reminderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reminder{}, err
	}
	return fromReminderItem(it), nil
}

// MarkPaid sets is_paid and paid_at for an existing reminder. A reminder
// that is already paid keeps its original paid_at (if_not_exists). A missing
// reminder id returns a zero entity with no error, matching GetByID.
func (r *ReminderDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Reminder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET is_paid = :paid, paid_at = if_not_exists(paid_at, :now)"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberBOOL{Value: true},
			":now":  &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Reminder{}, nil
		}
		return entities.Reminder{}, err
	}

	var it reminderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reminder{}, err
	}
	return fromReminderItem(it), nil
}

func fromReminderItem(it reminderItem) entities.Reminder {
	rem := entities.Reminder{
		ID:     it.ID,
		Title:  it.Title,
		IsPaid: it.IsPaid,
	}
	if it.PaidAt != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			rem.PaidAt = &dt
		}
	}
	return rem
}
