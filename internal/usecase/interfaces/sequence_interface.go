package interfaces

import "context"

// INumberSequence hands out per-tenant monotonically increasing numbers (job numbers, invoice numbers).
type INumberSequence interface {
	Next(ctx context.Context, tenantID, kind string) (int64, error)
}
