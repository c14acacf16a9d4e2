package repository

import (
	"context"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSalesmenTableName = "salesmen"

type salesmanItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	Phone string `dynamodbav:"phone,omitempty"`
}

// SalesmanDynamoRepository persists Salesman entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SalesmanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISalesmanRepository = (*SalesmanDynamoRepository)(nil)

func NewSalesmanDynamoRepository(ddb *dynamodb.Client) *SalesmanDynamoRepository {
	return &SalesmanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALESMEN_TABLE", defaultSalesmenTableName),
	}
}

func (r *SalesmanDynamoRepository) Create(ctx context.Context, s entities.Salesman) (entities.Salesman, error) {
	av, err := attributevalue.MarshalMap(salesmanItem{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	})
	if err != nil {
		return entities.Salesman{}, err
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
		return entities.Salesman{}, err
	}
	return s, nil
}

func (r *SalesmanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Salesman, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Salesman{}, err
	}
	if len(out.Item) == 0 {
		return entities.Salesman{}, nil
	}

	var it salesmanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Salesman{}, err
	}
	return entities.Salesman(it), nil
}

func (r *SalesmanDynamoRepository) List(ctx context.Context) ([]entities.Salesman, error) {
	items := make([]entities.Salesman, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it salesmanItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, entities.Salesman(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}
