package repository

import (
	"context"
	"sort"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentTransactionsTableName = "payment_transactions"
	paymentTransactionsInvoiceIndex     = "invoice_id-index"
)

type paymentTransactionItem struct {
	TenantID           string `dynamodbav:"tenant_id"`
	ID                 string `dynamodbav:"id"`
	InvoiceID          string `dynamodbav:"invoice_id"`
	Amount             string `dynamodbav:"amount"`
	Method             string `dynamodbav:"method"`
	Reference          string `dynamodbav:"reference,omitempty"`
	Status             string `dynamodbav:"status"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	RecordedBy         string `dynamodbav:"recorded_by,omitempty"`
	RecordedAt         string `dynamodbav:"recorded_at"`
}

// PaymentTransactionDynamoRepository is the append-only payment log.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type PaymentTransactionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultPaymentTransactionsTableName)}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, p entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	put, err := putPaymentTransaction(r.tableName, p)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                put.TableName,
		Item:                     put.Item,
		ConditionExpression:      put.ConditionExpression,
		ExpressionAttributeNames: put.ExpressionAttributeNames,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentTransaction{}, interfaces.ErrAlreadyExists
		}
		return entities.PaymentTransaction{}, err
	}
	return p, nil
}

// ListByInvoiceID returns the invoice transactions in recording order.
func (r *PaymentTransactionDynamoRepository) ListByInvoiceID(ctx context.Context, tenantID, invoiceID string) ([]entities.PaymentTransaction, error) {
	rows, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentTransactionsInvoiceIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		FilterExpression:       aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": strAttr(invoiceID),
			":tid": strAttr(tenantID),
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(rows))
	for _, raw := range rows {
		var it paymentTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentTransactionItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].RecordedAt.Before(items[j].RecordedAt) })
	return items, nil
}

// putPaymentTransaction builds the insert of p, shared by Create and the invoice payment transaction.
func putPaymentTransaction(table string, p entities.PaymentTransaction) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(p))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}, nil
}

func toPaymentTransactionItem(p entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		TenantID:           p.TenantID,
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		Amount:             p.Amount.String(),
		Method:             string(p.Method),
		Reference:          p.Reference,
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		RecordedBy:         p.RecordedBy,
		RecordedAt:         formatTime(p.RecordedAt),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	p := entities.PaymentTransaction{
		ID:                it.ID,
		TenantID:          it.TenantID,
		InvoiceID:         it.InvoiceID,
		Amount:            parseDecimal(it.Amount),
		Method:            entities.PaymentMethod(it.Method),
		Reference:         it.Reference,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		RecordedBy:        it.RecordedBy,
		RecordedAt:        parseTime(it.RecordedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
