package repository

import (
	"context"
	"errors"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCarsTableName = "cars"
	carsUserIDIndex      = "user_id-index"
)

type carItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	OwnerName   string `dynamodbav:"owner_name"`
	Phone       string `dynamodbav:"phone"`
	PlateNumber string `dynamodbav:"plate_number"`
	Brand       string `dynamodbav:"brand"`
	Model       string `dynamodbav:"model"`
	Year        string `dynamodbav:"year,omitempty"`
	Color       string `dynamodbav:"color,omitempty"`
	Status      string `dynamodbav:"status"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CarDynamoRepository persists Car entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type CarDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICarRepository = (*CarDynamoRepository)(nil)

func NewCarDynamoRepository(ddb *dynamodb.Client) *CarDynamoRepository {
	return &CarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARS_TABLE", defaultCarsTableName),
	}
}

func (r *CarDynamoRepository) Create(ctx context.Context, c entities.Car) (entities.Car, error) {
	av, err := attributevalue.MarshalMap(toCarItem(c))
	if err != nil {
		return entities.Car{}, err
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
		return entities.Car{}, err
	}
	return c, nil
}

func (r *CarDynamoRepository) GetByID(ctx context.Context, id string) (entities.Car, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Car{}, err
	}
	if len(out.Item) == 0 {
		return entities.Car{}, nil
	}

	var it carItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Car{}, err
	}
	return fromCarItem(it), nil
}

func (r *CarDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Car, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(carsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Car, 0, len(out.Items))
	for _, raw := range out.Items {
		var it carItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCarItem(it))
	}
	return items, nil
}

func (r *CarDynamoRepository) Update(ctx context.Context, c entities.Car) (entities.Car, error) {
	av, err := attributevalue.MarshalMap(toCarItem(c))
	if err != nil {
		return entities.Car{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Car{}, nil
		}
		return entities.Car{}, err
	}
	return c, nil
}

func (r *CarDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCarItem(c entities.Car) carItem {
	return carItem{
		ID:          c.ID,
		UserID:      c.UserID,
		OwnerName:   c.OwnerName,
		Phone:       c.Phone,
		PlateNumber: c.PlateNumber,
		Brand:       c.Brand,
		Model:       c.Model,
		Year:        c.Year,
		Color:       c.Color,
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCarItem(it carItem) entities.Car {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Car{
		ID:          it.ID,
		UserID:      it.UserID,
		OwnerName:   it.OwnerName,
		Phone:       it.Phone,
		PlateNumber: it.PlateNumber,
		Brand:       it.Brand,
		Model:       it.Model,
		Year:        it.Year,
		Color:       it.Color,
		Status:      entities.CarStatus(it.Status),
		Notes:       it.Notes,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
