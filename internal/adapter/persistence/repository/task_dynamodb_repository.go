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
	defaultTasksTableName = "tasks"
	tasksJobIndexName     = "job_id-index"
)

type taskItem struct {
	TenantID          string `dynamodbav:"tenant_id"`
	ID                string `dynamodbav:"id"`
	JobID             string `dynamodbav:"job_id"`
	Description       string `dynamodbav:"description"`
	ActionType        string `dynamodbav:"action_type"`
	InventoryItemID   string `dynamodbav:"inventory_item_id,omitempty"`
	Qty               int64  `dynamodbav:"qty"`
	LaborCost         string `dynamodbav:"labor_cost"`
	TaxRate           string `dynamodbav:"tax_rate"`
	UnitPriceSnapshot string `dynamodbav:"unit_price_snapshot"`
	LaborCostSnapshot string `dynamodbav:"labor_cost_snapshot"`
	TaxRateSnapshot   string `dynamodbav:"tax_rate_snapshot"`
	TaskStatus        string `dynamodbav:"task_status"`
	AllocationID      string `dynamodbav:"allocation_id,omitempty"`
	ApprovedBy        string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt        string `dynamodbav:"approved_at,omitempty"`
	CompletedBy       string `dynamodbav:"completed_by,omitempty"`
	CompletedAt       string `dynamodbav:"completed_at,omitempty"`
	DeletedBy         string `dynamodbav:"deleted_by,omitempty"`
	DeletedAt         string `dynamodbav:"deleted_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//   - GSI job_id-index: PK job_id
//
// Save replaces the whole row, but only while the stored task_status equals the expected one and the row was not
// soft-deleted. ListByJobID reads the GSI and is eventually consistent.

type TaskDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb DynamoDBAPI, tableName string) *TaskDynamoRepository {
	return &TaskDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultTasksTableName)}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
			return entities.Task{}, interfaces.ErrAlreadyExists
		}
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(tenantID, "id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

// ListByJobID returns every task of the job, soft-deleted ones included, oldest first.
func (r *TaskDynamoRepository) ListByJobID(ctx context.Context, tenantID, jobID string) ([]entities.Task, error) {
	rows, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tasksJobIndexName),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		FilterExpression:       aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id":    "job_id",
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id":    strAttr(jobID),
			":tenant_id": strAttr(tenantID),
		},
	})
	if err != nil {
		return nil, err
	}

	var items []taskItem
	if err := attributevalue.UnmarshalListOfMaps(rows, &items); err != nil {
		return nil, err
	}
	tasks := make([]entities.Task, 0, len(items))
	for _, it := range items {
		tasks = append(tasks, fromTaskItem(it))
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) })
	return tasks, nil
}

func (r *TaskDynamoRepository) Save(ctx context.Context, t entities.Task, expected entities.TaskStatus) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#task_status = :expected AND attribute_not_exists(#deleted_at)"),
		ExpressionAttributeNames: map[string]string{
			"#task_status": "task_status",
			"#deleted_at":  "deleted_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": strAttr(string(expected)),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Task{}, interfaces.ErrConditionFailed
		}
		return entities.Task{}, err
	}
	return t, nil
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		TenantID:          t.TenantID,
		ID:                t.ID,
		JobID:             t.JobID,
		Description:       t.Description,
		ActionType:        string(t.ActionType),
		InventoryItemID:   optString(t.InventoryItemID),
		Qty:               t.Qty,
		LaborCost:         t.LaborCost.String(),
		TaxRate:           t.TaxRate.String(),
		UnitPriceSnapshot: t.UnitPriceSnapshot.String(),
		LaborCostSnapshot: t.LaborCostSnapshot.String(),
		TaxRateSnapshot:   t.TaxRateSnapshot.String(),
		TaskStatus:        string(t.Status),
		AllocationID:      optString(t.AllocationID),
		ApprovedBy:        t.ApprovedBy,
		ApprovedAt:        formatOptTime(t.ApprovedAt),
		CompletedBy:       t.CompletedBy,
		CompletedAt:       formatOptTime(t.CompletedAt),
		DeletedBy:         t.DeletedBy,
		DeletedAt:         formatOptTime(t.DeletedAt),
		CreatedAt:         formatTime(t.CreatedAt),
		UpdatedAt:         formatTime(t.UpdatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:                it.ID,
		TenantID:          it.TenantID,
		JobID:             it.JobID,
		Description:       it.Description,
		ActionType:        entities.TaskActionType(it.ActionType),
		InventoryItemID:   stringPtr(it.InventoryItemID),
		Qty:               it.Qty,
		LaborCost:         parseDecimal(it.LaborCost),
		TaxRate:           parseDecimal(it.TaxRate),
		UnitPriceSnapshot: parseDecimal(it.UnitPriceSnapshot),
		LaborCostSnapshot: parseDecimal(it.LaborCostSnapshot),
		TaxRateSnapshot:   parseDecimal(it.TaxRateSnapshot),
		Status:            entities.TaskStatus(it.TaskStatus),
		AllocationID:      stringPtr(it.AllocationID),
		ApprovedBy:        it.ApprovedBy,
		ApprovedAt:        parseOptTime(it.ApprovedAt),
		CompletedBy:       it.CompletedBy,
		CompletedAt:       parseOptTime(it.CompletedAt),
		DeletedBy:         it.DeletedBy,
		DeletedAt:         parseOptTime(it.DeletedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
