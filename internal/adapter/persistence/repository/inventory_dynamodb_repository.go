package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInventoryItemsTableName = "inventory_items"
	defaultAllocationsTableName    = "allocations"
)

type inventoryItemRow struct {
	TenantID      string `dynamodbav:"tenant_id"`
	ID            string `dynamodbav:"id"`
	SKU           string `dynamodbav:"sku,omitempty"`
	Name          string `dynamodbav:"name"`
	UnitPrice     string `dynamodbav:"unit_price"`
	StockOnHand   int64  `dynamodbav:"stock_on_hand"`
	StockReserved int64  `dynamodbav:"stock_reserved"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type allocationRow struct {
	TenantID        string `dynamodbav:"tenant_id"`
	ID              string `dynamodbav:"id"`
	InventoryItemID string `dynamodbav:"inventory_item_id"`
	TaskID          string `dynamodbav:"task_id"`
	Qty             int64  `dynamodbav:"qty"`
	State           string `dynamodbav:"state"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists inventory items and allocations in DynamoDB.
//
// Table requirements (both tables):
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// Counter changes always travel with the allocation change in one TransactWriteItems call, guarded so that
// 0 <= stock_reserved <= stock_on_hand holds after every commit.

type InventoryDynamoRepository struct {
	ddb              DynamoDBAPI
	itemsTable       string
	allocationsTable string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb DynamoDBAPI, itemsTable, allocationsTable string) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:              ddb,
		itemsTable:       tableOrDefault(itemsTable, defaultInventoryItemsTableName),
		allocationsTable: tableOrDefault(allocationsTable, defaultAllocationsTableName),
	}
}

func (r *InventoryDynamoRepository) CreateItem(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItemRow(item))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.itemsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.InventoryItem{}, interfaces.ErrAlreadyExists
		}
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryDynamoRepository) GetItem(ctx context.Context, tenantID, id string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.itemsTable),
		Key:            tenantKey(tenantID, "id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var row inventoryItemRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItemRow(row), nil
}

// AddStock atomically increments stock_on_hand. A missing item yields a zero InventoryItem.
func (r *InventoryDynamoRepository) AddStock(ctx context.Context, tenantID, id string, qty int64) (entities.InventoryItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.itemsTable),
		Key:                 tenantKey(tenantID, "id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #on_hand :qty SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#on_hand":    "stock_on_hand",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty":        numAttr(strconv.FormatInt(qty, 10)),
			":updated_at": strAttr(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}

	var row inventoryItemRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &row); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItemRow(row), nil
}

// Reserve moves stock_reserved to item.StockReserved+alloc.Qty and inserts the allocation, only while both
// counters still hold the values the caller read.
func (r *InventoryDynamoRepository) Reserve(ctx context.Context, item entities.InventoryItem, alloc entities.Allocation) error {
	if alloc.Qty > item.StockAvailable() {
		return fmt.Errorf("reserve %d of item %s: only %d available", alloc.Qty, item.ID, item.StockAvailable())
	}

	av, err := attributevalue.MarshalMap(toAllocationRow(alloc))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.itemsTable),
					Key:                 tenantKey(item.TenantID, "id", item.ID),
					ConditionExpression: aws.String("#on_hand = :on_hand AND #reserved = :reserved"),
					UpdateExpression:    aws.String("SET #reserved = :next_reserved, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#on_hand":    "stock_on_hand",
						"#reserved":   "stock_reserved",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":on_hand":       numAttr(strconv.FormatInt(item.StockOnHand, 10)),
						":reserved":      numAttr(strconv.FormatInt(item.StockReserved, 10)),
						":next_reserved": numAttr(strconv.FormatInt(item.StockReserved+alloc.Qty, 10)),
						":updated_at":    strAttr(formatTime(alloc.CreatedAt)),
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.allocationsTable),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

func (r *InventoryDynamoRepository) GetAllocation(ctx context.Context, tenantID, id string) (entities.Allocation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.allocationsTable),
		Key:            tenantKey(tenantID, "id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Allocation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Allocation{}, nil
	}

	var row allocationRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.Allocation{}, err
	}
	return fromAllocationRow(row), nil
}

// SettleAllocation moves a reserved allocation to consumed (both counters drop by qty) or released (only
// stock_reserved drops).
func (r *InventoryDynamoRepository) SettleAllocation(ctx context.Context, alloc entities.Allocation, to entities.AllocationState) error {
	qty := strconv.FormatInt(alloc.Qty, 10)
	neg := strconv.FormatInt(-alloc.Qty, 10)
	now := formatTime(time.Now())

	itemUpdate := &types.Update{
		TableName: aws.String(r.itemsTable),
		Key:       tenantKey(alloc.TenantID, "id", alloc.InventoryItemID),
		ExpressionAttributeNames: map[string]string{
			"#reserved":   "stock_reserved",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty":        numAttr(qty),
			":neg":        numAttr(neg),
			":updated_at": strAttr(now),
		},
	}
	switch to {
	case entities.AllocationStateConsumed:
		itemUpdate.ConditionExpression = aws.String("#reserved >= :qty AND #on_hand >= :qty")
		itemUpdate.UpdateExpression = aws.String("ADD #reserved :neg, #on_hand :neg SET #updated_at = :updated_at")
		itemUpdate.ExpressionAttributeNames["#on_hand"] = "stock_on_hand"
	case entities.AllocationStateReleased:
		itemUpdate.ConditionExpression = aws.String("#reserved >= :qty")
		itemUpdate.UpdateExpression = aws.String("ADD #reserved :neg SET #updated_at = :updated_at")
	default:
		return fmt.Errorf("settle allocation %s: unsupported target state %q", alloc.ID, to)
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.allocationsTable),
					Key:                 tenantKey(alloc.TenantID, "id", alloc.ID),
					ConditionExpression: aws.String("#state = :reserved"),
					UpdateExpression:    aws.String("SET #state = :to, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#state":      "state",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":reserved":   strAttr(string(entities.AllocationStateReserved)),
						":to":         strAttr(string(to)),
						":updated_at": strAttr(now),
					},
				},
			},
			{Update: itemUpdate},
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

func toInventoryItemRow(item entities.InventoryItem) inventoryItemRow {
	return inventoryItemRow{
		TenantID:      item.TenantID,
		ID:            item.ID,
		SKU:           item.SKU,
		Name:          item.Name,
		UnitPrice:     item.UnitPrice.String(),
		StockOnHand:   item.StockOnHand,
		StockReserved: item.StockReserved,
		CreatedAt:     formatTime(item.CreatedAt),
		UpdatedAt:     formatTime(item.UpdatedAt),
	}
}

func fromInventoryItemRow(row inventoryItemRow) entities.InventoryItem {
	return entities.InventoryItem{
		ID:            row.ID,
		TenantID:      row.TenantID,
		SKU:           row.SKU,
		Name:          row.Name,
		UnitPrice:     parseDecimal(row.UnitPrice),
		StockOnHand:   row.StockOnHand,
		StockReserved: row.StockReserved,
		CreatedAt:     parseTime(row.CreatedAt),
		UpdatedAt:     parseTime(row.UpdatedAt),
	}
}

func toAllocationRow(a entities.Allocation) allocationRow {
	return allocationRow{
		TenantID:        a.TenantID,
		ID:              a.ID,
		InventoryItemID: a.InventoryItemID,
		TaskID:          a.TaskID,
		Qty:             a.Qty,
		State:           string(a.State),
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
}

func fromAllocationRow(row allocationRow) entities.Allocation {
	return entities.Allocation{
		ID:              row.ID,
		TenantID:        row.TenantID,
		InventoryItemID: row.InventoryItemID,
		TaskID:          row.TaskID,
		Qty:             row.Qty,
		State:           entities.AllocationState(row.State),
		CreatedAt:       parseTime(row.CreatedAt),
		UpdatedAt:       parseTime(row.UpdatedAt),
	}
}
