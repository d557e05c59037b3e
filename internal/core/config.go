package core

// Features selects the optional parts of the simulation.
// The zero value is the player-only variant.
type Features struct {
	Target  bool // a randomly wandering target that wins the game when caught
	Enemies bool // a roster of wandering enemies that lose the game on contact
}

// Terminates returns true if the variant can reach a WON or LOSE state.
func (f Features) Terminates() bool {
	return f.Target || f.Enemies
}

// EnemyCount is the fixed size of the enemy roster.
const EnemyCount = 32

// Outcome is the terminal classification of a run.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}
