package reflection

import (
	"fmt"
	"time"
)

// ReactionLight is the default reaction kind seeded on every reflection.
const ReactionLight = "light"

// Reflection is a short anonymous gratitude or mood note shared with
// the community wall.
type Reflection struct {
	id        string
	userToken string
	content   string
	reactions map[string]int
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewReflection(userToken, content string) (*Reflection, error) {
	if len(userToken) == 0 {
		return nil, fmt.Errorf("user token is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 1000 {
		return nil, fmt.Errorf("content exceeds maximum length of 1000 characters")
	}

	now := time.Now()
	return &Reflection{
		userToken: userToken,
		content:   content,
		reactions: map[string]int{ReactionLight: 0},
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReflection(
	id string,
	userToken string,
	content string,
	reactions map[string]int,
	version int,
	createdAt, updatedAt time.Time,
) (*Reflection, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("reflection ID is required")
	}
	if len(userToken) == 0 {
		return nil, fmt.Errorf("user token is required")
	}
	if reactions == nil {
		reactions = map[string]int{ReactionLight: 0}
	}

	return &Reflection{
		id:        id,
		userToken: userToken,
		content:   content,
		reactions: reactions,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Reflection) ID() string           { return r.id }
func (r *Reflection) UserToken() string    { return r.userToken }
func (r *Reflection) Content() string      { return r.content }
func (r *Reflection) Version() int         { return r.version }
func (r *Reflection) CreatedAt() time.Time { return r.createdAt }
func (r *Reflection) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reflection) Reactions() map[string]int {
	reactionsCopy := make(map[string]int, len(r.reactions))
	for k, v := range r.reactions {
		reactionsCopy[k] = v
	}
	return reactionsCopy
}

func (r *Reflection) SetID(id string) error {
	if len(r.id) > 0 {
		return fmt.Errorf("reflection ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("reflection ID cannot be empty")
	}
	r.id = id
	return nil
}

// React increments the counter for the given reaction kind.
func (r *Reflection) React(reactionType string) error {
	if len(reactionType) == 0 {
		return fmt.Errorf("reaction type is required")
	}
	r.reactions[reactionType]++
	r.touch()
	return nil
}

func (r *Reflection) GetOwnerID() string {
	return r.userToken
}

func (r *Reflection) touch() {
	r.updatedAt = time.Now()
	r.version++
}
