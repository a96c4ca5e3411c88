package core

// EventKind identifies something noteworthy that happened during a step.
type EventKind int

const (
	EventSave     EventKind = iota // Keeper deflected the ball
	EventGoal                      // Ball entered the goal mouth
	EventMiss                      // Ball passed the far wall
	EventPenalty                   // Pending miss deduction applied
	EventSpark                     // Ball entered the sparking phase
	EventServe                     // Ball relaunched into play
	EventGameOver                  // Score dropped below zero
	EventRestart                   // Full state reinitialization
	EventPause                     // Pause toggled on
	EventResume                    // Pause toggled off
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSave:
		return "save"
	case EventGoal:
		return "goal"
	case EventMiss:
		return "miss"
	case EventPenalty:
		return "penalty"
	case EventSpark:
		return "spark"
	case EventServe:
		return "serve"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}

// Event records a state change along with the score after it happened.
type Event struct {
	Kind  EventKind
	Score int
}
