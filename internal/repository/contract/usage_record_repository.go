package contract

import (
	"context"

	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/repository/specification"
)

type UsageRecordRepository interface {
	Create(ctx context.Context, record *entity.UsageRecord) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
