package repository

import (
	"context"
	"errors"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesIDIndexName      = "id-index"
)

type estimateItem struct {
	TenantID       string `dynamodbav:"tenant_id"`
	JobID          string `dynamodbav:"job_id"`
	ID             string `dynamodbav:"id"`
	Subtotal       string `dynamodbav:"subtotal"`
	TaxAmount      string `dynamodbav:"tax_amount"`
	DiscountAmount string `dynamodbav:"discount_amount"`
	TotalAmount    string `dynamodbav:"total_amount"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: job_id (string)
//   - GSI id-index: PK id
//
// We purposely use the job id as sort key to guarantee 1 estimate per job.
// Lookups by estimate id resolve the job through the GSI, then read the row consistently.

type EstimateDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoDBAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultEstimatesTableName)}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
			return entities.Estimate{}, interfaces.ErrAlreadyExists
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	jobID, err := lookupJobIDByID(ctx, r.ddb, r.tableName, estimatesIDIndexName, tenantID, id)
	if err != nil || jobID == "" {
		return entities.Estimate{}, err
	}
	return r.GetByJobID(ctx, tenantID, jobID)
}

func (r *EstimateDynamoRepository) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(tenantID, "job_id", jobID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateStatusByJobID(ctx context.Context, tenantID, jobID string, status, expected entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, tenantID, jobID, "#status = :expected", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     strAttr(string(status)),
			":expected":   strAttr(string(expected)),
			":updated_at": strAttr(now),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateTotalsByJobID(ctx context.Context, tenantID, jobID string, totals entities.EstimateTotals) (entities.Estimate, error) {
	return r.update(ctx, tenantID, jobID, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #subtotal = :subtotal, #tax_amount = :tax_amount, #discount_amount = :discount_amount, #total_amount = :total_amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":subtotal":        strAttr(totals.Subtotal.String()),
			":tax_amount":      strAttr(totals.TaxAmount.String()),
			":discount_amount": strAttr(totals.DiscountAmount.String()),
			":total_amount":    strAttr(totals.TotalAmount.String()),
			":updated_at":      strAttr(now),
		}
		names := map[string]string{
			"#subtotal":        "subtotal",
			"#tax_amount":      "tax_amount",
			"#discount_amount": "discount_amount",
			"#total_amount":    "total_amount",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

// update applies build's expression to an existing row. A missing row yields a zero Estimate; a failed extra
// condition yields ErrConditionFailed.
func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	tenantID, jobID string,
	extraCond string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#job_id)"
	if extraCond != "" {
		cond += " AND " + extraCond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       tenantKey(tenantID, "job_id", jobID),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#job_id": "job_id"}),
		ReturnValues:              types.ReturnValueAllNew,

		// Lets a failed condition tell "missing" apart from "changed".
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Estimate{}, nil
			}
			return entities.Estimate{}, interfaces.ErrConditionFailed
		}
		return entities.Estimate{}, err
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// lookupJobIDByID resolves the job id of a row keyed by (tenant_id, job_id) from its own id through a GSI.
func lookupJobIDByID(ctx context.Context, ddb DynamoDBAPI, table, index, tenantID, id string) (string, error) {
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#id = :id"),
		FilterExpression:       aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":        strAttr(id),
			":tenant_id": strAttr(tenantID),
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}

	var ref struct {
		JobID string `dynamodbav:"job_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &ref); err != nil {
		return "", err
	}
	return ref.JobID, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		TenantID:       e.TenantID,
		JobID:          e.JobID,
		ID:             e.ID,
		Subtotal:       e.Subtotal.String(),
		TaxAmount:      e.TaxAmount.String(),
		DiscountAmount: e.DiscountAmount.String(),
		TotalAmount:    e.TotalAmount.String(),
		Status:         string(e.Status),
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:             it.ID,
		TenantID:       it.TenantID,
		JobID:          it.JobID,
		Subtotal:       parseDecimal(it.Subtotal),
		TaxAmount:      parseDecimal(it.TaxAmount),
		DiscountAmount: parseDecimal(it.DiscountAmount),
		TotalAmount:    parseDecimal(it.TotalAmount),
		Status:         entities.EstimateStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
