package reflection

import "context"

type ReflectionRepository interface {
	Save(ctx context.Context, reflection *Reflection) error
	Update(ctx context.Context, reflection *Reflection) error
	GetByID(ctx context.Context, reflectionID string) (*Reflection, error)

	// List returns reflections most recent first.
	List(ctx context.Context) ([]*Reflection, error)

	// AddReaction atomically increments a reaction counter.
	AddReaction(ctx context.Context, reflectionID, reactionType string) (*Reflection, error)
}
