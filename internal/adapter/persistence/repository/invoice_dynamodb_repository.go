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
	defaultInvoicesTableName       = "invoices"
	defaultInvoiceNumbersTableName = "invoice_numbers"
	invoicesUserIDIndex            = "user_id-index"
)

type partLineItem struct {
	Name      string  `dynamodbav:"name"`
	Qty       float64 `dynamodbav:"qty"`
	Price     float64 `dynamodbav:"price"`
	LineTotal float64 `dynamodbav:"line_total"`
}

type customerSnapshotItem struct {
	OwnerName   string `dynamodbav:"owner_name"`
	Phone       string `dynamodbav:"phone"`
	PlateNumber string `dynamodbav:"plate_number"`
	Brand       string `dynamodbav:"brand"`
	Model       string `dynamodbav:"model"`
	Year        string `dynamodbav:"year,omitempty"`
	Color       string `dynamodbav:"color,omitempty"`
}

type serviceSnapshotItem struct {
	Problem   string         `dynamodbav:"problem,omitempty"`
	WorkDone  string         `dynamodbav:"work_done"`
	Parts     []partLineItem `dynamodbav:"parts"`
	LaborCost float64        `dynamodbav:"labor_cost"`
	OtherCost float64        `dynamodbav:"other_cost"`
	TotalCost float64        `dynamodbav:"total_cost"`
	Status    string         `dynamodbav:"status"`
}

type paymentSnapshotItem struct {
	AmountPaid    float64 `dynamodbav:"amount_paid"`
	PaymentStatus string  `dynamodbav:"payment_status"`
}

type invoiceItem struct {
	ID               string               `dynamodbav:"id"`
	UserID           string               `dynamodbav:"user_id"`
	InvoiceNumber    string               `dynamodbav:"invoice_number"`
	ServiceID        string               `dynamodbav:"service_id"`
	CarID            string               `dynamodbav:"car_id"`
	CustomerSnapshot customerSnapshotItem `dynamodbav:"customer_snapshot"`
	ServiceSnapshot  serviceSnapshotItem  `dynamodbav:"service_snapshot"`
	PaymentSnapshot  paymentSnapshotItem  `dynamodbav:"payment_snapshot"`
	IssuedAt         string               `dynamodbav:"issued_at"`
	Notes            string               `dynamodbav:"notes,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices:        PK: id (string), GSI: user_id-index (PK: user_id)
//   - invoice_numbers: PK: invoice_number (string)
//
// We purposely use the service job id as PK (invoice ID) to guarantee 1
// invoice per job. The invoice put and a claim item on its number are written
// in one transaction, so both uniqueness guarantees hold or neither write
// lands. The cancellation reasons tell apart which condition lost.

type InvoiceDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	numbersTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		numbersTable: getenvDefault("INVOICE_NUMBERS_TABLE", defaultInvoiceNumbersTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.numbersTable),
					Item: map[string]types.AttributeValue{
						"invoice_number": &types.AttributeValueMemberS{Value: inv.InvoiceNumber},
						"invoice_id":     &types.AttributeValueMemberS{Value: inv.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(#n)"),
					ExpressionAttributeNames: map[string]string{
						"#n": "invoice_number",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Invoice{}, mapInvoiceTransactionError(err)
	}
	return inv, nil
}

// mapInvoiceTransactionError translates a cancelled invoice transaction into
// the repository sentinels. The item order in the transaction is fixed: index
// 0 is the invoice put, index 1 is the number claim.
func mapInvoiceTransactionError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return interfaces.ErrServiceAlreadyInvoiced
		}
		return interfaces.ErrInvoiceNumberTaken
	}
	return err
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	parts := make([]partLineItem, 0, len(inv.ServiceSnapshot.Parts))
	for _, p := range inv.ServiceSnapshot.Parts {
		parts = append(parts, partLineItem(p))
	}
	return invoiceItem{
		ID:            inv.ID,
		UserID:        inv.UserID,
		InvoiceNumber: inv.InvoiceNumber,
		ServiceID:     inv.ServiceID,
		CarID:         inv.CarID,
		CustomerSnapshot: customerSnapshotItem{
			OwnerName:   inv.CustomerSnapshot.OwnerName,
			Phone:       inv.CustomerSnapshot.Phone,
			PlateNumber: inv.CustomerSnapshot.PlateNumber,
			Brand:       inv.CustomerSnapshot.Brand,
			Model:       inv.CustomerSnapshot.Model,
			Year:        inv.CustomerSnapshot.Year,
			Color:       inv.CustomerSnapshot.Color,
		},
		ServiceSnapshot: serviceSnapshotItem{
			Problem:   inv.ServiceSnapshot.Problem,
			WorkDone:  inv.ServiceSnapshot.WorkDone,
			Parts:     parts,
			LaborCost: inv.ServiceSnapshot.LaborCost,
			OtherCost: inv.ServiceSnapshot.OtherCost,
			TotalCost: inv.ServiceSnapshot.TotalCost,
			Status:    inv.ServiceSnapshot.Status,
		},
		PaymentSnapshot: paymentSnapshotItem{
			AmountPaid:    inv.PaymentSnapshot.AmountPaid,
			PaymentStatus: string(inv.PaymentSnapshot.PaymentStatus),
		},
		IssuedAt: inv.IssuedAt.UTC().Format(time.RFC3339Nano),
		Notes:    inv.Notes,
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	issuedAt, _ := time.Parse(time.RFC3339Nano, it.IssuedAt)
	parts := make([]entities.PartLine, 0, len(it.ServiceSnapshot.Parts))
	for _, p := range it.ServiceSnapshot.Parts {
		parts = append(parts, entities.PartLine(p))
	}
	return entities.Invoice{
		ID:            it.ID,
		UserID:        it.UserID,
		InvoiceNumber: it.InvoiceNumber,
		ServiceID:     it.ServiceID,
		CarID:         it.CarID,
		CustomerSnapshot: entities.CustomerSnapshot{
			OwnerName:   it.CustomerSnapshot.OwnerName,
			Phone:       it.CustomerSnapshot.Phone,
			PlateNumber: it.CustomerSnapshot.PlateNumber,
			Brand:       it.CustomerSnapshot.Brand,
			Model:       it.CustomerSnapshot.Model,
			Year:        it.CustomerSnapshot.Year,
			Color:       it.CustomerSnapshot.Color,
		},
		ServiceSnapshot: entities.ServiceSnapshot{
			Problem:   it.ServiceSnapshot.Problem,
			WorkDone:  it.ServiceSnapshot.WorkDone,
			Parts:     parts,
			LaborCost: it.ServiceSnapshot.LaborCost,
			OtherCost: it.ServiceSnapshot.OtherCost,
			TotalCost: it.ServiceSnapshot.TotalCost,
			Status:    it.ServiceSnapshot.Status,
		},
		PaymentSnapshot: entities.PaymentSnapshot{
			AmountPaid:    it.PaymentSnapshot.AmountPaid,
			PaymentStatus: entities.PaymentStatus(it.PaymentSnapshot.PaymentStatus),
		},
		IssuedAt: issuedAt,
		Notes:    it.Notes,
	}
}
