package game

type Team int

const (
	Blue Team = iota
	Red
)

func (t Team) String() string {
	if t == Red {
		return "Red"
	}
	return "Blue"
}

func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// None marks an absent index reference (winner, target player, target resource).
const None = -1

type Player struct {
	Position Position
	Team     Team
	Health   int
	Score    int
	Action   Action
	Alive    bool
	Target   *Position
}

func NewPlayer(pos Position, team Team, health int) Player {
	return Player{
		Position: pos,
		Team:     team,
		Health:   health,
		Action:   DefensivePlay,
		Alive:    true,
	}
}

// TakeDamage lowers health, floored at 0. Reaching 0 kills the player for good.
func (p *Player) TakeDamage(damage int) {
	p.Health = max(0, p.Health-damage)
	if p.Health <= 0 {
		p.Alive = false
	}
}

// Heal raises health up to maxHealth. Dead players stay dead.
func (p *Player) Heal(amount, maxHealth int) {
	if !p.Alive {
		return
	}
	p.Health = min(maxHealth, p.Health+amount)
}

func (p *Player) AddScore(points int) {
	p.Score += points
}

type Ally struct {
	Position Position
	Owner    int // index into World.Players
	Target   int // index into World.Resources, or None
}

type Enemy struct {
	Position     Position
	TargetPlayer int // index into World.Players, or None
	Target       *Position
}

type ResourceKind int

const (
	Health ResourceKind = iota
	Coin
)

func (k ResourceKind) String() string {
	if k == Coin {
		return "coin"
	}
	return "health"
}

func (k ResourceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Resource struct {
	Position  Position
	Kind      ResourceKind
	Collected bool
}

// Collect applies the resource's effect to p. It returns false if the
// resource was already collected.
func (r *Resource) Collect(p *Player, rules Config) bool {
	if r.Collected {
		return false
	}
	switch r.Kind {
	case Health:
		p.Heal(rules.HealthPackRestore, rules.MaxHealth)
	case Coin:
		p.AddScore(rules.CoinValue)
	}
	r.Collected = true
	return true
}
