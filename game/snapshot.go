package game

type PlayerView struct {
	Position Position  `json:"position"`
	Team     Team      `json:"team"`
	Health   int       `json:"health"`
	Score    int       `json:"score"`
	Action   Action    `json:"action"`
	Alive    bool      `json:"alive"`
	Target   *Position `json:"target,omitempty"`
}

type AllyView struct {
	Position Position `json:"position"`
	Owner    Team     `json:"owner"`
}

type EnemyView struct {
	Position Position  `json:"position"`
	Target   *Position `json:"target,omitempty"`
}

type ResourceView struct {
	Position  Position     `json:"position"`
	Kind      ResourceKind `json:"kind"`
	Collected bool         `json:"collected"`
}

// Snapshot is a read-only copy of a settled World for renderers and other
// observers. It shares no memory with the World it was taken from.
type Snapshot struct {
	GridSize  int            `json:"grid_size"`
	Obstacles []Position     `json:"obstacles"`
	Players   [2]PlayerView  `json:"players"`
	Allies    []AllyView     `json:"allies"`
	Enemies   []EnemyView    `json:"enemies"`
	Resources []ResourceView `json:"resources"`
	TurnCount int            `json:"turn_count"`
	Active    bool           `json:"active"`
	Winner    *Team          `json:"winner"`
	Reason    string         `json:"reason"`
}

func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		GridSize:  w.Grid.Size,
		Obstacles: append([]Position(nil), w.Obstacles...),
		Allies:    make([]AllyView, len(w.Allies)),
		Enemies:   make([]EnemyView, len(w.Enemies)),
		Resources: make([]ResourceView, len(w.Resources)),
		TurnCount: w.TurnCount,
		Active:    w.Active,
		Reason:    w.Reason,
	}
	for i, p := range w.Players {
		s.Players[i] = PlayerView{
			Position: p.Position,
			Team:     p.Team,
			Health:   p.Health,
			Score:    p.Score,
			Action:   p.Action,
			Alive:    p.Alive,
			Target:   copyPosition(p.Target),
		}
	}
	for i, a := range w.Allies {
		s.Allies[i] = AllyView{Position: a.Position, Owner: w.Players[a.Owner].Team}
	}
	for i, e := range w.Enemies {
		s.Enemies[i] = EnemyView{Position: e.Position, Target: copyPosition(e.Target)}
	}
	for i, r := range w.Resources {
		s.Resources[i] = ResourceView{Position: r.Position, Kind: r.Kind, Collected: r.Collected}
	}
	if w.Winner != None {
		team := w.Players[w.Winner].Team
		s.Winner = &team
	}
	return s
}

func copyPosition(p *Position) *Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
