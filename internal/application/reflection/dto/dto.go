package dto

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/reflection"
)

type ReflectionDTO struct {
	ID        string         `json:"id"`
	UserToken string         `json:"user_token"`
	Content   string         `json:"content"`
	Reactions map[string]int `json:"reactions"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToReflectionDTO(r *reflection.Reflection) *ReflectionDTO {
	if r == nil {
		return nil
	}
	return &ReflectionDTO{
		ID:        r.ID(),
		UserToken: r.UserToken(),
		Content:   r.Content(),
		Reactions: r.Reactions(),
		CreatedAt: r.CreatedAt(),
	}
}

func ToReflectionDTOs(rs []*reflection.Reflection) []*ReflectionDTO {
	out := make([]*ReflectionDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReflectionDTO(r))
	}
	return out
}
