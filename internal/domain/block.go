package domain

// BlockType represents the kind of a planned time block.
type BlockType string

const (
	BlockTypeFocus BlockType = "focus"
	BlockTypeBreak BlockType = "break"
)

// TimeBlock is one interval in a planned focus/break schedule.
// Blocks are ephemeral: produced per planning call, never persisted.
type TimeBlock struct {
	Type            BlockType
	DurationMinutes int
	Index           int
}

// IsFocus returns true for focus blocks.
func (b TimeBlock) IsFocus() bool {
	return b.Type == BlockTypeFocus
}
