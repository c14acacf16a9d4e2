package repository

import (
	"context"
	"errors"
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInquiriesTableName = "inquiries"

type inquiryItem struct {
	ID            string   `dynamodbav:"id"`
	CustomerID    string   `dynamodbav:"customer_id"`
	CarportLength float64  `dynamodbav:"carport_length"`
	CarportWidth  float64  `dynamodbav:"carport_width"`
	ShedLength    *float64 `dynamodbav:"shed_length,omitempty"`
	ShedWidth     *float64 `dynamodbav:"shed_width,omitempty"`
	Comments      string   `dynamodbav:"comments,omitempty"`
	Status        string   `dynamodbav:"status"`
	SalesmanID    string   `dynamodbav:"salesman_id,omitempty"`
	SubmittedAt   string   `dynamodbav:"submitted_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// InquiryDynamoRepository persists Inquiry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The salesman_id attribute is written only when a salesman is bound; its absence
// marks the inquiry as unassigned and is what AssignIfUnassigned's condition
// expression checks. That makes the bind a single conditional UpdateItem, so two
// concurrent assignment attempts resolve with exactly one winner.

type InquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	it := toInquiryItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return i, nil
}

func (r *InquiryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func (r *InquiryDynamoRepository) ListUnassigned(ctx context.Context) ([]entities.Inquiry, error) {
	items := make([]entities.Inquiry, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("attribute_not_exists(#salesman_id)"),
			ExpressionAttributeNames: map[string]string{
				"#salesman_id": "salesman_id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it inquiryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInquiryItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

func (r *InquiryDynamoRepository) AssignIfUnassigned(ctx context.Context, inquiryID, salesmanID string) (entities.Inquiry, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inquiryID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#salesman_id)"),
		UpdateExpression:    aws.String("SET #salesman_id = :salesman_id, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#salesman_id": "salesman_id",
			"#status":      "status",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":salesman_id": &types.AttributeValueMemberS{Value: salesmanID},
			":status":      &types.AttributeValueMemberS{Value: string(entities.InquiryStatusAssigned)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Inquiry{}, false, nil
		}
		return entities.Inquiry{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inquiry{}, false, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inquiry{}, false, err
	}
	return fromInquiryItem(it), true, nil
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:            i.ID,
		CustomerID:    i.CustomerID,
		CarportLength: i.CarportLength,
		CarportWidth:  i.CarportWidth,
		ShedLength:    i.ShedLength,
		ShedWidth:     i.ShedWidth,
		Comments:      i.Comments,
		Status:        string(i.Status),
		SalesmanID:    i.SalesmanID,
		SubmittedAt:   i.SubmittedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Inquiry{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		CarportLength: it.CarportLength,
		CarportWidth:  it.CarportWidth,
		ShedLength:    it.ShedLength,
		ShedWidth:     it.ShedWidth,
		Comments:      it.Comments,
		Status:        entities.InquiryStatus(it.Status),
		SalesmanID:    it.SalesmanID,
		SubmittedAt:   submittedAt,
		UpdatedAt:     updatedAt,
	}
}
