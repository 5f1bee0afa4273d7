package repository

import (
	"context"
	"strconv"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesIDIndexName      = "id-index"
)

type invoiceItem struct {
	TenantID       string `dynamodbav:"tenant_id"`
	JobID          string `dynamodbav:"job_id"`
	ID             string `dynamodbav:"id"`
	EstimateID     string `dynamodbav:"estimate_id"`
	InvoiceNumber  string `dynamodbav:"invoice_number"`
	Subtotal       string `dynamodbav:"subtotal"`
	TaxAmount      string `dynamodbav:"tax_amount"`
	DiscountAmount string `dynamodbav:"discount_amount"`
	TotalAmount    string `dynamodbav:"total_amount"`
	PaidAmount     string `dynamodbav:"paid_amount"`
	Balance        string `dynamodbav:"balance"`
	Status         string `dynamodbav:"status"`
	IssueDate      string `dynamodbav:"issue_date"`
	DueDate        string `dynamodbav:"due_date"`
	Version        int64  `dynamodbav:"version"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: job_id (string), so a job has at most one invoice
//   - GSI id-index: PK id
//
// Writes replace the row while the stored version equals the one the caller read, and bump it.
// ApplyPayment writes the invoice and the payment transaction in one TransactWriteItems call.

type InvoiceDynamoRepository struct {
	ddb               DynamoDBAPI
	tableName         string
	transactionsTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoDBAPI, tableName, transactionsTable string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:               ddb,
		tableName:         tableOrDefault(tableName, defaultInvoicesTableName),
		transactionsTable: tableOrDefault(transactionsTable, defaultPaymentTransactionsTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#job_id)"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Invoice{}, interfaces.ErrAlreadyExists
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Invoice, error) {
	jobID, err := lookupJobIDByID(ctx, r.ddb, r.tableName, invoicesIDIndexName, tenantID, id)
	if err != nil || jobID == "" {
		return entities.Invoice{}, err
	}
	return r.GetByJobID(ctx, tenantID, jobID)
}

func (r *InvoiceDynamoRepository) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(tenantID, "job_id", jobID),
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

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice, expectedVersion int64) (entities.Invoice, error) {
	put, next, err := r.versionedPut(inv, expectedVersion)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Invoice{}, interfaces.ErrConditionFailed
		}
		return entities.Invoice{}, err
	}
	return next, nil
}

func (r *InvoiceDynamoRepository) ApplyPayment(ctx context.Context, inv entities.Invoice, expectedVersion int64, txn entities.PaymentTransaction) (entities.Invoice, error) {
	invoicePut, next, err := r.versionedPut(inv, expectedVersion)
	if err != nil {
		return entities.Invoice{}, err
	}
	txnPut, err := putPaymentTransaction(r.transactionsTable, txn)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: invoicePut},
			{Put: txnPut},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Invoice{}, interfaces.ErrConditionFailed
		}
		return entities.Invoice{}, err
	}
	return next, nil
}

// versionedPut builds the replacement of inv guarded by expectedVersion and returns the invoice as stored.
func (r *InvoiceDynamoRepository) versionedPut(inv entities.Invoice, expectedVersion int64) (*types.Put, entities.Invoice, error) {
	inv.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return nil, entities.Invoice{}, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": numAttr(strconv.FormatInt(expectedVersion, 10)),
		},
	}, inv, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		TenantID:       inv.TenantID,
		JobID:          inv.JobID,
		ID:             inv.ID,
		EstimateID:     inv.EstimateID,
		InvoiceNumber:  inv.InvoiceNumber,
		Subtotal:       inv.Subtotal.String(),
		TaxAmount:      inv.TaxAmount.String(),
		DiscountAmount: inv.DiscountAmount.String(),
		TotalAmount:    inv.TotalAmount.String(),
		PaidAmount:     inv.PaidAmount.String(),
		Balance:        inv.Balance.String(),
		Status:         string(inv.Status),
		IssueDate:      formatTime(inv.IssueDate),
		DueDate:        formatTime(inv.DueDate),
		Version:        inv.Version,
		CreatedAt:      formatTime(inv.CreatedAt),
		UpdatedAt:      formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:             it.ID,
		TenantID:       it.TenantID,
		JobID:          it.JobID,
		EstimateID:     it.EstimateID,
		InvoiceNumber:  it.InvoiceNumber,
		Subtotal:       parseDecimal(it.Subtotal),
		TaxAmount:      parseDecimal(it.TaxAmount),
		DiscountAmount: parseDecimal(it.DiscountAmount),
		TotalAmount:    parseDecimal(it.TotalAmount),
		PaidAmount:     parseDecimal(it.PaidAmount),
		Balance:        parseDecimal(it.Balance),
		Status:         entities.InvoiceStatus(it.Status),
		IssueDate:      parseTime(it.IssueDate),
		DueDate:        parseTime(it.DueDate),
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
