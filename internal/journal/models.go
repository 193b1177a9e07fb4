package journal

import "time"

// Action names a store mutation.
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
	ActionImport Action = "import"
)

func (a Action) valid() bool {
	switch a {
	case ActionAdd, ActionDelete, ActionImport:
		return true
	}
	return false
}

// Event is one journal entry. Count is the number of recipes an import wrote.
type Event struct {
	ID         int64
	OccurredAt time.Time
	Action     Action
	RecipeID   string
	Title      string
	Count      int
}
