package core

// EventKind identifies an outward notification produced by a simulation
// tick. Presentation code consumes these instead of registering callbacks,
// which keeps the simulation free of UI coupling.
type EventKind int

const (
	EventScoreChanged     EventKind = iota // Value = new total score
	EventHighScoreChanged                  // Value = new high score
	EventLevelChanged                      // Value = new level
	EventLinesChanged                      // Value = total lines cleared
	EventMerge                             // Value = merged tile value, Combo = combo at merge time
	EventComboEnded                        // Combo = final combo count, Value = bonus awarded
	EventRowsCleared                       // Value = rows cleared in one resolution, Combo = combo at clear time
	EventPowerUpQueued                     // Value = power-up kind
	EventPowerUpActivated                  // Value = power-up kind
	EventCascadeCapHit                     // resolution hit its iteration bound; recoverable warning
	EventGameOver                          // Value = final score
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score_changed"
	case EventHighScoreChanged:
		return "high_score_changed"
	case EventLevelChanged:
		return "level_changed"
	case EventLinesChanged:
		return "lines_changed"
	case EventMerge:
		return "merge"
	case EventComboEnded:
		return "combo_ended"
	case EventRowsCleared:
		return "rows_cleared"
	case EventPowerUpQueued:
		return "powerup_queued"
	case EventPowerUpActivated:
		return "powerup_activated"
	case EventCascadeCapHit:
		return "cascade_cap_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single outward notification. The meaning of Value and Combo
// depends on the kind; unused fields are zero.
type Event struct {
	Kind  EventKind
	Value int
	Combo int
}
