package repository

import (
	"context"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	TenantID      string `dynamodbav:"tenant_id"`
	ID            string `dynamodbav:"id"`
	JobNumber     string `dynamodbav:"job_number"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	Vehicle       string `dynamodbav:"vehicle"`
	Description   string `dynamodbav:"description,omitempty"`
	Status        string `dynamodbav:"status"`
	TechnicianID  string `dynamodbav:"technician_id,omitempty"`
	StartedAt     string `dynamodbav:"started_at,omitempty"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// Every write after creation is conditioned on the status the caller read.

type JobDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoDBAPI, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultJobsTableName)}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		if isConditionFailed(err) {
			return entities.Job{}, interfaces.ErrAlreadyExists
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(tenantID, "id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, j entities.Job, expected entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, j, expected, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     strAttr(string(j.Status)),
			":updated_at": strAttr(formatTime(j.UpdatedAt)),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if j.StartedAt != nil {
			expr += ", #started_at = if_not_exists(#started_at, :started_at)"
			vals[":started_at"] = strAttr(formatTime(*j.StartedAt))
			names["#started_at"] = "started_at"
		}
		if j.CompletedAt != nil {
			expr += ", #completed_at = if_not_exists(#completed_at, :completed_at)"
			vals[":completed_at"] = strAttr(formatTime(*j.CompletedAt))
			names["#completed_at"] = "completed_at"
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) UpdateTechnician(ctx context.Context, j entities.Job, expected entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, j, expected, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #technician_id = :technician_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":technician_id": strAttr(optString(j.TechnicianID)),
			":updated_at":    strAttr(formatTime(j.UpdatedAt)),
		}
		names := map[string]string{
			"#technician_id": "technician_id",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) Delete(ctx context.Context, tenantID, id string, expected entities.JobStatus) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 tenantKey(tenantID, "id", id),
		ConditionExpression: aws.String("#status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": strAttr(string(expected)),
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

// update applies build's SET expression only while the stored status equals expected.
func (r *JobDynamoRepository) update(
	ctx context.Context,
	j entities.Job,
	expected entities.JobStatus,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Job, error) {
	updateExpr, values, names := build()
	values[":expected"] = strAttr(string(expected))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       tenantKey(j.TenantID, "id", j.ID),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		TenantID:      j.TenantID,
		ID:            j.ID,
		JobNumber:     j.JobNumber,
		CustomerName:  j.CustomerName,
		CustomerEmail: j.CustomerEmail,
		Vehicle:       j.Vehicle,
		Description:   j.Description,
		Status:        string(j.Status),
		TechnicianID:  optString(j.TechnicianID),
		StartedAt:     formatOptTime(j.StartedAt),
		CompletedAt:   formatOptTime(j.CompletedAt),
		CreatedAt:     formatTime(j.CreatedAt),
		UpdatedAt:     formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:            it.ID,
		TenantID:      it.TenantID,
		JobNumber:     it.JobNumber,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		Vehicle:       it.Vehicle,
		Description:   it.Description,
		Status:        entities.JobStatus(it.Status),
		TechnicianID:  stringPtr(it.TechnicianID),
		StartedAt:     parseOptTime(it.StartedAt),
		CompletedAt:   parseOptTime(it.CompletedAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
