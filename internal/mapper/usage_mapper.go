package mapper

import (
	"encoding/json"

	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/model"

	"gorm.io/datatypes"
)

type UsageMapper struct{}

func NewUsageMapper() *UsageMapper {
	return &UsageMapper{}
}

func (m *UsageMapper) ToEntity(r *model.UsageRecord) *entity.UsageRecord {
	if r == nil {
		return nil
	}

	details := map[string]interface{}{}
	if len(r.Details) > 0 {
		_ = json.Unmarshal(r.Details, &details)
	}

	return &entity.UsageRecord{
		Id:        r.Id,
		Level:     r.Level,
		Module:    r.Module,
		Message:   r.Message,
		Details:   details,
		CreatedAt: r.CreatedAt,
	}
}

func (m *UsageMapper) ToModel(r *entity.UsageRecord) *model.UsageRecord {
	if r == nil {
		return nil
	}

	raw, _ := json.Marshal(r.Details)

	return &model.UsageRecord{
		Id:        r.Id,
		Level:     r.Level,
		Module:    r.Module,
		Message:   r.Message,
		Details:   datatypes.JSON(raw),
		CreatedAt: r.CreatedAt,
	}
}
