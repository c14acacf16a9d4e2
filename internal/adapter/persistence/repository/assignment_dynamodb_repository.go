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

const defaultAssignmentsTableName = "assignments"

type assignmentItem struct {
	InquiryID  string `dynamodbav:"inquiry_id"`
	SalesmanID string `dynamodbav:"salesman_id"`
	AssignedAt string `dynamodbav:"assigned_at"`
}

// AssignmentDynamoRepository persists Assignment facts in DynamoDB.
//
// Table requirements:
//   - PK: inquiry_id (string)
//
// The inquiry id is the partition key and Create is conditional on the key not
// existing, so the table can never hold two facts for the same inquiry.

type AssignmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb *dynamodb.Client) *AssignmentDynamoRepository {
	return &AssignmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
	}
}

func (r *AssignmentDynamoRepository) Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error) {
	av, err := attributevalue.MarshalMap(assignmentItem{
		InquiryID:  a.InquiryID,
		SalesmanID: a.SalesmanID,
		AssignedAt: a.AssignedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Assignment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#inquiry_id)"),
		ExpressionAttributeNames: map[string]string{
			"#inquiry_id": "inquiry_id",
		},
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) GetByInquiryID(ctx context.Context, inquiryID string) (entities.Assignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"inquiry_id": &types.AttributeValueMemberS{Value: inquiryID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assignment{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assignment{}, err
	}
	assignedAt, _ := time.Parse(time.RFC3339Nano, it.AssignedAt)
	return entities.Assignment{
		InquiryID:  it.InquiryID,
		SalesmanID: it.SalesmanID,
		AssignedAt: assignedAt,
	}, nil
}
