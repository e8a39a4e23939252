package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	servicesUserIDIndex      = "user_id-index"
	servicesCarIDIndex       = "car_id-index"
)

type packageSnapshotItem struct {
	Number      string  `dynamodbav:"package_number"`
	Name        string  `dynamodbav:"package_name"`
	Description string  `dynamodbav:"package_description"`
	Price       float64 `dynamodbav:"package_price"`
}

type serviceJobItem struct {
	ID              string               `dynamodbav:"id"`
	CarID           string               `dynamodbav:"car_id"`
	CreatedBy       string               `dynamodbav:"user_id"`
	PackageID       string               `dynamodbav:"package_id,omitempty"`
	PackageSnapshot *packageSnapshotItem `dynamodbav:"package_snapshot,omitempty"`
	WorkDescription string               `dynamodbav:"work_description"`
	PartsUsed       string               `dynamodbav:"parts_used,omitempty"`
	LaborCost       float64              `dynamodbav:"labor_cost"`
	TotalCost       float64              `dynamodbav:"total_cost"`
	AmountPaid      float64              `dynamodbav:"amount_paid"`
	PaymentStatus   string               `dynamodbav:"payment_status"`
	Status          string               `dynamodbav:"status"`
	Notes           string               `dynamodbav:"notes,omitempty"`
	CreatedAt       string               `dynamodbav:"created_at"`
	UpdatedAt       string               `dynamodbav:"updated_at"`
}

// ServiceJobDynamoRepository persists ServiceJob entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: car_id-index (PK: car_id)
//
// Cost fields are stored as number attributes so the payment ledger can run
// atomic ADD updates on amount_paid.

type ServiceJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceJobRepository = (*ServiceJobDynamoRepository)(nil)

func NewServiceJobDynamoRepository(ddb *dynamodb.Client) *ServiceJobDynamoRepository {
	return &ServiceJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceJobDynamoRepository) Create(ctx context.Context, j entities.ServiceJob) (entities.ServiceJob, error) {
	av, err := attributevalue.MarshalMap(toServiceJobItem(j))
	if err != nil {
		return entities.ServiceJob{}, err
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
		return entities.ServiceJob{}, err
	}
	return j, nil
}

func (r *ServiceJobDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceJob{}, nil
	}

	var it serviceJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceJob{}, err
	}
	return fromServiceJobItem(it), nil
}

func (r *ServiceJobDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ServiceJob, error) {
	return r.queryIndex(ctx, servicesUserIDIndex, "user_id", userID)
}

func (r *ServiceJobDynamoRepository) ListByCarID(ctx context.Context, carID string) ([]entities.ServiceJob, error) {
	return r.queryIndex(ctx, servicesCarIDIndex, "car_id", carID)
}

func (r *ServiceJobDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.ServiceJob, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceJob, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceJobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceJobItem(it))
	}
	return items, nil
}

func (r *ServiceJobDynamoRepository) Update(ctx context.Context, j entities.ServiceJob) (entities.ServiceJob, error) {
	av, err := attributevalue.MarshalMap(toServiceJobItem(j))
	if err != nil {
		return entities.ServiceJob{}, err
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
			return entities.ServiceJob{}, nil
		}
		return entities.ServiceJob{}, err
	}
	return j, nil
}

func (r *ServiceJobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ApplyPaymentDelta is an atomic increment-and-fetch on amount_paid. ADD never
// loses a concurrent update the way read-modify-write would. If a reversal
// overshoots below zero the value is corrected to zero with a guarded write.
func (r *ServiceJobDynamoRepository) ApplyPaymentDelta(ctx context.Context, id string, delta float64) (entities.ServiceJob, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #amount_paid :delta SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#amount_paid": "amount_paid",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: floatToString(delta)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceJob{}, nil
		}
		return entities.ServiceJob{}, err
	}

	var it serviceJobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceJob{}, err
	}
	job := fromServiceJobItem(it)

	if job.AmountPaid < 0 {
		job = r.clampAmountPaid(ctx, job)
	}
	return job, nil
}

// clampAmountPaid resets a negative amount_paid to zero. The condition pins
// the current value so a concurrent payment landing in between is not wiped
// out; on a lost race the negative state no longer exists and the item is
// simply re-read.
func (r *ServiceJobDynamoRepository) clampAmountPaid(ctx context.Context, job entities.ServiceJob) entities.ServiceJob {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: job.ID},
		},
		ConditionExpression: aws.String("#amount_paid = :current"),
		UpdateExpression:    aws.String("SET #amount_paid = :zero"),
		ExpressionAttributeNames: map[string]string{
			"#amount_paid": "amount_paid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":current": &types.AttributeValueMemberN{Value: floatToString(job.AmountPaid)},
			":zero":    &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if fresh, rerr := r.GetByID(ctx, job.ID); rerr == nil && fresh.ID != "" {
				return fresh
			}
			return job
		}
		log.Printf("[service][repository] clamp failed service_id=%s err=%v", job.ID, err)
		return job
	}
	job.AmountPaid = 0
	return job
}

func (r *ServiceJobDynamoRepository) SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payment_status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toServiceJobItem(j entities.ServiceJob) serviceJobItem {
	var snapshot *packageSnapshotItem
	if j.PackageSnapshot != nil {
		snapshot = &packageSnapshotItem{
			Number:      j.PackageSnapshot.Number,
			Name:        j.PackageSnapshot.Name,
			Description: j.PackageSnapshot.Description,
			Price:       j.PackageSnapshot.Price,
		}
	}
	return serviceJobItem{
		ID:              j.ID,
		CarID:           j.CarID,
		CreatedBy:       j.CreatedBy,
		PackageID:       j.PackageID,
		PackageSnapshot: snapshot,
		WorkDescription: j.WorkDescription,
		PartsUsed:       j.PartsUsed,
		LaborCost:       j.LaborCost,
		TotalCost:       j.TotalCost,
		AmountPaid:      j.AmountPaid,
		PaymentStatus:   string(j.PaymentStatus),
		Status:          string(j.Status),
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceJobItem(it serviceJobItem) entities.ServiceJob {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var snapshot *entities.PackageSnapshot
	if it.PackageSnapshot != nil {
		snapshot = &entities.PackageSnapshot{
			Number:      it.PackageSnapshot.Number,
			Name:        it.PackageSnapshot.Name,
			Description: it.PackageSnapshot.Description,
			Price:       it.PackageSnapshot.Price,
		}
	}
	return entities.ServiceJob{
		ID:              it.ID,
		CarID:           it.CarID,
		CreatedBy:       it.CreatedBy,
		PackageID:       it.PackageID,
		PackageSnapshot: snapshot,
		WorkDescription: it.WorkDescription,
		PartsUsed:       it.PartsUsed,
		LaborCost:       it.LaborCost,
		TotalCost:       it.TotalCost,
		AmountPaid:      it.AmountPaid,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		Status:          entities.ServiceStatus(it.Status),
		Notes:           it.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
