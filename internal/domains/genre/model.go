package genre

import (
	"time"

	"github.com/google/uuid"
)

// MaxDepth caps the category tree at three levels: root (1), child (2),
// grandchild (3).
const MaxDepth = 3

// Genre is a node in the category forest. Level is 1 for roots and
// parent.Level+1 otherwise; the service keeps levels consistent across
// reparenting.
type Genre struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Level       int        `json:"level"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsRoot reports whether the genre has no parent.
func (g *Genre) IsRoot() bool {
	return g.ParentID == nil
}
