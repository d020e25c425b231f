package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kindredhq/kindred/internal/domain/reflection"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

// ReflectionMapper handles the conversion between Reflection domain entities and persistence models.
type ReflectionMapper interface {
	ToModel(r *reflection.Reflection) *models.ReflectionModel
	ToDomain(model *models.ReflectionModel) (*reflection.Reflection, error)
}

// ReflectionMapperImpl is the concrete implementation of ReflectionMapper.
type ReflectionMapperImpl struct{}

// NewReflectionMapper creates a new ReflectionMapper.
func NewReflectionMapper() ReflectionMapper {
	return &ReflectionMapperImpl{}
}

func (m *ReflectionMapperImpl) ToModel(r *reflection.Reflection) *models.ReflectionModel {
	reactionsJSON, _ := json.Marshal(r.Reactions())

	return &models.ReflectionModel{
		ID:        r.ID(),
		UserToken: r.UserToken(),
		Content:   r.Content(),
		Reactions: reactionsJSON,
		Version:   r.Version(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReflectionMapperImpl) ToDomain(model *models.ReflectionModel) (*reflection.Reflection, error) {
	var reactions map[string]int
	if len(model.Reactions) > 0 {
		if err := json.Unmarshal(model.Reactions, &reactions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reactions: %w", err)
		}
	}

	return reflection.ReconstructReflection(
		model.ID,
		model.UserToken,
		model.Content,
		reactions,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
