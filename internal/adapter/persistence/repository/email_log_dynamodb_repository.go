package repository

import (
	"context"
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEmailLogsTableName = "email_logs"
	emailLogsInquiryIDIndex   = "inquiry_id-index"
)

type emailLogItem struct {
	ID         string `dynamodbav:"id"`
	InquiryID  string `dynamodbav:"inquiry_id"`
	CustomerID string `dynamodbav:"customer_id"`
	Recipient  string `dynamodbav:"recipient"`
	Subject    string `dynamodbav:"subject"`
	Sent       bool   `dynamodbav:"sent"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// EmailLogDynamoRepository persists EmailLog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: inquiry_id-index (PK: inquiry_id)

type EmailLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmailLogRepository = (*EmailLogDynamoRepository)(nil)

func NewEmailLogDynamoRepository(ddb *dynamodb.Client) *EmailLogDynamoRepository {
	return &EmailLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMAIL_LOGS_TABLE", defaultEmailLogsTableName),
	}
}

func (r *EmailLogDynamoRepository) Append(ctx context.Context, e entities.EmailLog) (entities.EmailLog, error) {
	it := toEmailLogItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EmailLog{}, err
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
		return entities.EmailLog{}, err
	}
	return e, nil
}

func (r *EmailLogDynamoRepository) ListByInquiryID(ctx context.Context, inquiryID string) ([]entities.EmailLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(emailLogsInquiryIDIndex),
		KeyConditionExpression: aws.String("inquiry_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: inquiryID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EmailLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it emailLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEmailLogItem(it))
	}
	return items, nil
}

func toEmailLogItem(e entities.EmailLog) emailLogItem {
	return emailLogItem{
		ID:         e.ID,
		InquiryID:  e.InquiryID,
		CustomerID: e.CustomerID,
		Recipient:  e.Recipient,
		Subject:    e.Subject,
		Sent:       e.Sent,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEmailLogItem(it emailLogItem) entities.EmailLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EmailLog{
		ID:         it.ID,
		InquiryID:  it.InquiryID,
		CustomerID: it.CustomerID,
		Recipient:  it.Recipient,
		Subject:    it.Subject,
		Sent:       it.Sent,
		CreatedAt:  createdAt,
	}
}
