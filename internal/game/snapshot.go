package game

// Snapshot contains the complete observable game state. Uses primitive
// types only for stable hashing across runs.
type Snapshot struct {
	Tick     uint64
	PlayTick uint64

	Score int
	Level int
	Lines int
	Combo int

	Phase        int
	GravityTimer int
	LockTimer    int
	Paused       int
	GameOver     int

	CascadeTimer  int
	CascadePasses int
	PendingSpawn  int

	// Active piece (Shape, Rotation, X, Y, four values); all -1/zero
	// when no piece is falling.
	PieceData [8]int
	NextData  [8]int

	// Locked blocks, flattened row-major from the bottom row.
	BoardData []int

	// Pending power-up kinds in activation order.
	QueueData []int

	// Timed effects (each effect is 2 ints: Kind, Remaining).
	EffectData []int
}

func pieceData(p *Piece) [8]int {
	if p == nil {
		return [8]int{-1, 0, 0, 0, 0, 0, 0, 0}
	}
	return [8]int{
		int(p.Shape), p.Rotation, p.Anchor.X, p.Anchor.Y,
		p.Values[0], p.Values[1], p.Values[2], p.Values[3],
	}
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w, h := g.board.Width(), g.board.Height()
	boardData := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			boardData[y*w+x] = g.board.Get(x, y)
		}
	}

	queue := g.powerups.Queue()
	queueData := make([]int, len(queue))
	for i, k := range queue {
		queueData[i] = int(k)
	}

	effects := g.powerups.Effects()
	effectData := make([]int, len(effects)*2)
	for i, eff := range effects {
		effectData[i*2] = int(eff.Kind)
		effectData[i*2+1] = eff.Remaining
	}

	return Snapshot{
		Tick:     g.tick,
		PlayTick: g.playTick,

		Score: g.score.Score(),
		Level: g.score.Level(),
		Lines: g.score.Lines(),
		Combo: g.score.Combo(),

		Phase:        int(g.state),
		GravityTimer: g.gravityTimer,
		LockTimer:    g.lockTimer,
		Paused:       boolToInt(g.paused),
		GameOver:     boolToInt(g.gameOver),

		CascadeTimer:  g.cascadeTimer,
		CascadePasses: g.cascadePasses,
		PendingSpawn:  boolToInt(g.pendingSpawn),

		PieceData: pieceData(g.piece),
		NextData:  pieceData(g.next),

		BoardData:  boardData,
		QueueData:  queueData,
		EffectData: effectData,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.PlayTick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo) //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GravityTimer) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LockTimer)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paused)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GameOver)     //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.CascadeTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CascadePasses) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingSpawn)  //#nosec G115 -- hash computation

	for _, v := range snap.PieceData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.NextData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.QueueData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
