package game

// Action is a player's strategic decision for one turn.
type Action int

// Enumeration order is the defuzzification tie-break order.
const (
	FleeEnemy Action = iota
	SeekHealth
	CollectCoins
	AggressivePlay
	DefensivePlay
	CollectResources
)

const NumActions = 6

var Actions = [NumActions]Action{FleeEnemy, SeekHealth, CollectCoins, AggressivePlay, DefensivePlay, CollectResources}

var actionNames = [NumActions]string{
	"FLEE_ENEMY",
	"SEEK_HEALTH",
	"COLLECT_COINS",
	"AGGRESSIVE_PLAY",
	"DEFENSIVE_PLAY",
	"COLLECT_RESOURCES",
}

func (a Action) String() string {
	if a < 0 || int(a) >= NumActions {
		return "UNKNOWN"
	}
	return actionNames[a]
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
