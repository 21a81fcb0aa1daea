package searcher

// Hyperparameters for minimax

const DefaultDepth = 3 // Plies searched from the enemy's move

// Escape moves considered per player at a minimizing node. Moves are
// taken in game.Directions order, so the cap keeps the first ones found.
const DefaultBreadth = 2
