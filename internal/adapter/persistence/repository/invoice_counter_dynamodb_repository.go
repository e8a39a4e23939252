package repository

import (
	"context"
	"fmt"
	"strconv"

	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoiceCountersTableName = "invoice_counters"

// InvoiceCounterDynamoRepository mints per-year invoice sequence numbers.
//
// Table requirements:
//   - PK: year (number)
//
// The whole operation is one UpdateItem with ADD: DynamoDB creates the row on
// first use and the increment is atomic, so two concurrent callers always get
// distinct values. Numbers drawn for invoices that later fail to persist are
// simply burned; the sequence has gaps, never duplicates.

type InvoiceCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceCounterRepository = (*InvoiceCounterDynamoRepository)(nil)

func NewInvoiceCounterDynamoRepository(ddb *dynamodb.Client) *InvoiceCounterDynamoRepository {
	return &InvoiceCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICE_COUNTERS_TABLE", defaultInvoiceCountersTableName),
	}
}

func (r *InvoiceCounterDynamoRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("counter update for year %d returned no seq attribute", year)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter seq for year %d is not a number attribute", year)
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter seq for year %d: %w", year, err)
	}
	return seq, nil
}
