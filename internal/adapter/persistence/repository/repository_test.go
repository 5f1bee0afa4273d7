package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnexpectedCall = errors.New("unexpected dynamodb call")

// fakeDynamo lets each test script the calls it expects.
type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getItem == nil {
		return nil, errUnexpectedCall
	}
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putItem == nil {
		return nil, errUnexpectedCall
	}
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.updateItem == nil {
		return nil, errUnexpectedCall
	}
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.deleteItem == nil {
		return nil, errUnexpectedCall
	}
	return f.deleteItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.query == nil {
		return nil, errUnexpectedCall
	}
	return f.query(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if f.transact == nil {
		return nil, errUnexpectedCall
	}
	return f.transact(in)
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func TestIsConditionFailed(t *testing.T) {
	assert.True(t, isConditionFailed(conditionFailed()))
	assert.True(t, isConditionFailed(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
	}))
	assert.False(t, isConditionFailed(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
	}))
	assert.False(t, isConditionFailed(errors.New("boom")))
	assert.False(t, isConditionFailed(nil))
}

func TestJobDynamoRepository(t *testing.T) {
	ctx := context.Background()
	started := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	tech := "tech-1"
	job := entities.Job{
		ID:           "job-1",
		TenantID:     "t-1",
		JobNumber:    "JOB-000001",
		CustomerName: "Maria",
		Vehicle:      "ABC-1234",
		Status:       entities.JobStatusWorking,
		TechnicianID: &tech,
		StartedAt:    &started,
		CreatedAt:    started,
		UpdatedAt:    started,
	}

	t.Run("create is conditional", func(t *testing.T) {
		var stored map[string]types.AttributeValue
		ddb := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "jobs", aws.ToString(in.TableName))
			assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		}}
		repo := NewJobDynamoRepository(ddb, "")

		_, err := repo.Create(ctx, job)
		require.NoError(t, err)

		ddb.getItem = func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.True(t, aws.ToBool(in.ConsistentRead))
			return &dynamodb.GetItemOutput{Item: stored}, nil
		}
		got, err := repo.GetByID(ctx, "t-1", "job-1")
		require.NoError(t, err)
		assert.Equal(t, job.JobNumber, got.JobNumber)
		assert.Equal(t, "tech-1", *got.TechnicianID)
		assert.True(t, started.Equal(*got.StartedAt))
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("duplicate create", func(t *testing.T) {
		ddb := &fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, conditionFailed()
		}}
		_, err := NewJobDynamoRepository(ddb, "jobs").Create(ctx, job)
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("missing job reads as zero", func(t *testing.T) {
		ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		got, err := NewJobDynamoRepository(ddb, "jobs").GetByID(ctx, "t-1", "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("status update is guarded by the read status", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "attribute_exists(#id) AND #status = :expected", aws.ToString(in.ConditionExpression))
			assert.Equal(t, "received", in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value)
			assert.Contains(t, aws.ToString(in.UpdateExpression), "if_not_exists(#started_at, :started_at)")
			assert.NotContains(t, aws.ToString(in.UpdateExpression), "completed_at")
			attrs, err := attributevalue.MarshalMap(toJobItem(job))
			require.NoError(t, err)
			return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
		}}
		got, err := NewJobDynamoRepository(ddb, "jobs").UpdateStatus(ctx, job, entities.JobStatusReceived)
		require.NoError(t, err)
		assert.Equal(t, entities.JobStatusWorking, got.Status)
	})

	t.Run("lost status race", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, conditionFailed()
		}}
		_, err := NewJobDynamoRepository(ddb, "jobs").UpdateTechnician(ctx, job, entities.JobStatusWorking)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("delete is guarded", func(t *testing.T) {
		ddb := &fakeDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			assert.Equal(t, "#status = :expected", aws.ToString(in.ConditionExpression))
			return nil, conditionFailed()
		}}
		err := NewJobDynamoRepository(ddb, "jobs").Delete(ctx, "t-1", "job-1", entities.JobStatusReceived)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestEstimateDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		got, err := NewEstimateDynamoRepository(ddb, "").UpdateStatusByJobID(ctx, "t-1", "job-1", entities.EstimateStatusApproved, entities.EstimateStatusPending)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("changed row", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "attribute_exists(#job_id) AND #status = :expected", aws.ToString(in.ConditionExpression))
			return nil, &types.ConditionalCheckFailedException{Item: map[string]types.AttributeValue{"status": strAttr("rejected")}}
		}}
		_, err := NewEstimateDynamoRepository(ddb, "").UpdateStatusByJobID(ctx, "t-1", "job-1", entities.EstimateStatusApproved, entities.EstimateStatusPending)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("totals are stored as decimal strings", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "attribute_exists(#job_id)", aws.ToString(in.ConditionExpression))
			assert.Equal(t, "107.47", in.ExpressionAttributeValues[":total_amount"].(*types.AttributeValueMemberS).Value)
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"tenant_id":    strAttr("t-1"),
				"job_id":       strAttr("job-1"),
				"id":           strAttr("est-1"),
				"total_amount": strAttr("107.47"),
				"status":       strAttr("pending"),
			}}, nil
		}}
		got, err := NewEstimateDynamoRepository(ddb, "").UpdateTotalsByJobID(ctx, "t-1", "job-1", entities.EstimateTotals{
			Subtotal:       decimal.RequireFromString("99.97"),
			TaxAmount:      decimal.RequireFromString("7.50"),
			DiscountAmount: decimal.Zero,
			TotalAmount:    decimal.RequireFromString("107.47"),
		})
		require.NoError(t, err)
		assert.Equal(t, "est-1", got.ID)
		assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("107.47")))
	})

	t.Run("lookup by id goes through the index", func(t *testing.T) {
		ddb := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				assert.Equal(t, estimatesIDIndexName, aws.ToString(in.IndexName))
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{{"job_id": strAttr("job-9")}}}, nil
			},
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				assert.Equal(t, "job-9", in.Key["job_id"].(*types.AttributeValueMemberS).Value)
				return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
					"tenant_id": strAttr("t-1"),
					"job_id":    strAttr("job-9"),
					"id":        strAttr("est-9"),
				}}, nil
			},
		}
		got, err := NewEstimateDynamoRepository(ddb, "").GetByID(ctx, "t-1", "est-9")
		require.NoError(t, err)
		assert.Equal(t, "job-9", got.JobID)
	})
}

func TestInvoiceDynamoRepository_ApplyPayment(t *testing.T) {
	ctx := context.Background()
	inv := entities.Invoice{ID: "inv-1", TenantID: "t-1", JobID: "job-1", TotalAmount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(40), Balance: decimal.NewFromInt(60), Version: 4}
	txn := entities.PaymentTransaction{ID: "txn-1", TenantID: "t-1", InvoiceID: "inv-1", Amount: decimal.NewFromInt(40), Method: entities.PaymentMethodCash, Status: entities.PaymentStatusSucceeded}

	t.Run("writes invoice and transaction together", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			require.Len(t, in.TransactItems, 2)
			put := in.TransactItems[0].Put
			assert.Equal(t, "#version = :expected", aws.ToString(put.ConditionExpression))
			assert.Equal(t, "4", put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value)
			assert.Equal(t, "payment_transactions", aws.ToString(in.TransactItems[1].Put.TableName))
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}}
		got, err := NewInvoiceDynamoRepository(ddb, "", "").ApplyPayment(ctx, inv, 4, txn)
		require.NoError(t, err)
		assert.EqualValues(t, 5, got.Version)
	})

	t.Run("stale version", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}}}
		}}
		_, err := NewInvoiceDynamoRepository(ddb, "", "").ApplyPayment(ctx, inv, 4, txn)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestInventoryDynamoRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	item := entities.InventoryItem{ID: "item-1", TenantID: "t-1", StockOnHand: 5, StockReserved: 2}
	alloc := entities.Allocation{ID: "a-1", TenantID: "t-1", InventoryItemID: "item-1", TaskID: "task-1", Qty: 3, State: entities.AllocationStateReserved}

	t.Run("guards both counters", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			update := in.TransactItems[0].Update
			assert.Equal(t, "5", update.ExpressionAttributeValues[":on_hand"].(*types.AttributeValueMemberN).Value)
			assert.Equal(t, "2", update.ExpressionAttributeValues[":reserved"].(*types.AttributeValueMemberN).Value)
			assert.Equal(t, "5", update.ExpressionAttributeValues[":next_reserved"].(*types.AttributeValueMemberN).Value)
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}}
		require.NoError(t, NewInventoryDynamoRepository(ddb, "", "").Reserve(ctx, item, alloc))
	})

	t.Run("refuses to oversell before writing", func(t *testing.T) {
		over := alloc
		over.Qty = 4
		err := NewInventoryDynamoRepository(&fakeDynamo{}, "", "").Reserve(ctx, item, over)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errUnexpectedCall)
	})

	t.Run("settle rejects unknown targets", func(t *testing.T) {
		err := NewInventoryDynamoRepository(&fakeDynamo{}, "", "").SettleAllocation(ctx, alloc, entities.AllocationStateReserved)
		require.Error(t, err)
		assert.NotErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestQueryAll_FollowsPages(t *testing.T) {
	calls := 0
	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if calls == 1 {
			assert.Nil(t, in.ExclusiveStartKey)
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{{"id": strAttr("a")}},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": strAttr("a")},
			}, nil
		}
		assert.NotNil(t, in.ExclusiveStartKey)
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{{"id": strAttr("b")}}}, nil
	}}

	items, err := queryAll(context.Background(), ddb, &dynamodb.QueryInput{TableName: aws.String("tasks")})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, calls)
}

func TestParseDecimal(t *testing.T) {
	assert.True(t, parseDecimal("12.30").Equal(decimal.RequireFromString("12.3")))
	assert.True(t, parseDecimal("").IsZero())
	assert.True(t, parseDecimal("abc").IsZero())
}
