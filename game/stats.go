package game

// Stats is a point-in-time summary of the engine's state, meant for debug
// overlays and headless harnesses.
type Stats struct {
	Phase      Phase
	Pieces     int
	Rectangles int

	Level            int
	LinesTowardLevel int
	TotalLines       int
	Score            int

	// SpawnCounts tallies how many pieces of each kind have spawned since
	// the game was created, resets included.
	SpawnCounts [7]int64
}

// CollectStats gathers statistics about the current board and session.
func (g *Game) CollectStats() Stats {
	s := Stats{
		Phase:            g.phase,
		Pieces:           len(g.pieces),
		Level:            g.level,
		LinesTowardLevel: g.linesTowardLevel,
		TotalLines:       g.totalLines,
		Score:            g.score,
		SpawnCounts:      g.spawnCounts,
	}
	for _, piece := range g.pieces {
		s.Rectangles += len(piece.rects)
	}
	return s
}
