package climber

import (
	"io"
	"iter"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// WorldEvents summarizes what one World update changed.
type WorldEvents struct {
	RowsAdded int
	Pruned    int
	Scored    int
	LevelUp   bool
	FellOut   bool
}

// World owns the platform and cloud collections, the score and the
// difficulty state. It reads the player's position but never its velocity.
type World struct {
	cfg    config.ClimberConfig
	logger *log.Logger
	rng    RNG
	gen    *Generator
	sched  *config.DifficultyScheduler

	platforms *core.Arena[Platform]
	clouds    *core.Arena[Cloud]
	surfaces  []Surface

	elapsedMs float64
	prevMs    float64

	nextLine   int
	topLineY   float64 // Line of the highest generated row
	score      int
	scoreMarkY float64
	bestGround float64 // Highest feet y the player has stood at
	cameraTop  float64
}

// NewWorld creates a world and builds the opening layout from rng.
func NewWorld(cfg config.ClimberConfig, rng RNG, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:       cfg,
		logger:    logger,
		gen:       NewGenerator(cfg, logger),
		platforms: core.NewArena[Platform](4 * (cfg.World.InitialRows + 1)),
		clouds:    core.NewArena[Cloud](cfg.Clouds.Initial * 2),
	}
	w.Reset(rng)
	return w
}

// Reset discards every object and rebuilds the opening layout: the start
// platform, the initial rows and the initial clouds.
func (w *World) Reset(rng RNG) {
	w.rng = rng
	w.platforms.Clear()
	w.clouds.Clear()
	w.sched = config.NewDifficultyScheduler(w.cfg)
	w.elapsedMs, w.prevMs = 0, 0
	w.nextLine = 0
	w.score = 0

	wc := w.cfg.World
	start := Platform{
		BaseX:  wc.Width / 2,
		Y:      wc.StartPlatformY,
		Width:  wc.StartPlatformWidth,
		Height: w.cfg.Platforms.Height,
		Kind:   KindSafe,
		Line:   -1,
	}
	w.platforms.Insert(start)
	w.gen.Reset(start.BoxAt(0))

	w.topLineY = wc.StartPlatformY
	w.scoreMarkY = wc.StartPlatformY
	w.bestGround = wc.StartPlatformY
	w.cameraTop = wc.StartPlatformY - wc.CameraAnchor*wc.ViewHeight

	for range wc.InitialRows {
		w.addRow()
	}
	for range w.cfg.Clouds.Initial {
		w.clouds.Insert(spawnCloud(w.cfg, w.rng, wc.StartPlatformY))
	}
}

// StartPosition is where the player spawns: standing on the start platform.
func (w *World) StartPosition() core.Vec {
	return core.Vec{X: w.cfg.World.Width / 2, Y: w.cfg.World.StartPlatformY}
}

// Advance moves session time forward for platform and cloud motion.
func (w *World) Advance(dtMs float64) {
	w.prevMs = w.elapsedMs
	w.elapsedMs += dtMs
}

// Surfaces returns collision facts for every platform at the current time.
// The slice is reused between calls.
func (w *World) Surfaces() []Surface {
	w.surfaces = w.surfaces[:0]
	for id, p := range w.platforms.All() {
		w.surfaces = append(w.surfaces, Surface{
			ID:   id,
			Box:  p.BoxAt(w.elapsedMs),
			DX:   p.X(w.elapsedMs) - p.X(w.prevMs),
			Kind: p.Kind,
		})
	}
	return w.surfaces
}

// Update runs generation, pruning, clouds, scoring, difficulty, the camera
// and the fall-out check against the player's feet position.
func (w *World) Update(pos core.Vec, grounded bool) WorldEvents {
	var ev WorldEvents
	wc := w.cfg.World

	for pos.Y < w.topLineY+wc.GenerationHorizon {
		w.addRow()
		ev.RowsAdded++
	}

	limit := pos.Y + wc.PruneDistance
	ev.Pruned = w.platforms.RemoveIf(func(p *Platform) bool { return p.Y > limit })
	w.clouds.RemoveIf(func(c *Cloud) bool { return c.Y > limit })

	if Chance(w.rng, w.cfg.Clouds.SpawnChance) {
		w.clouds.Insert(spawnCloud(w.cfg, w.rng, pos.Y))
	}

	if grounded {
		w.bestGround = min(w.bestGround, pos.Y)
	}
	for {
		gap := w.sched.Tunables().PlatformGap
		if w.bestGround > w.scoreMarkY-gap {
			break
		}
		w.scoreMarkY -= gap
		w.score++
		ev.Scored++
		if w.sched.Observe(w.score) {
			ev.LevelUp = true
			w.logger.Info("level up", "level", w.sched.Level(), "score", w.score)
		}
	}

	w.cameraTop = min(w.cameraTop, pos.Y-wc.CameraAnchor*wc.ViewHeight)

	fallOut := w.cfg.GameOver.FallOutGapsBelowGround * w.sched.Tunables().PlatformGap
	ev.FellOut = pos.Y > w.bestGround+fallOut
	return ev
}

func (w *World) addRow() {
	row := w.gen.GenerateRow(w.topLineY, w.nextLine, w.sched.Tunables(), w.rng)
	for _, p := range row.Platforms {
		w.platforms.Insert(p)
	}
	w.topLineY = row.Y
	w.nextLine++
}

// Platforms iterates live platforms.
func (w *World) Platforms() iter.Seq2[core.ID, *Platform] { return w.platforms.All() }

// Clouds iterates live clouds.
func (w *World) Clouds() iter.Seq2[core.ID, *Cloud] { return w.clouds.All() }

// PlatformCount returns the number of live platforms.
func (w *World) PlatformCount() int { return w.platforms.Len() }

// CloudCount returns the number of live clouds.
func (w *World) CloudCount() int { return w.clouds.Len() }

// Rows returns how many rows have been generated this session.
func (w *World) Rows() int { return w.nextLine }

// TopLineY returns the line of the highest generated row.
func (w *World) TopLineY() float64 { return w.topLineY }

// Score returns the number of gap-sized climbs achieved.
func (w *World) Score() int { return w.score }

// Level returns the current difficulty level.
func (w *World) Level() int { return w.sched.Level() }

// Tunables returns the tunables for the current level.
func (w *World) Tunables() config.Tunables { return w.sched.Tunables() }

// Recomputes returns how many tunable recomputations level-ups caused.
func (w *World) Recomputes() int { return w.sched.Recomputes() }

// CameraTop returns the top of the view. It only ever moves up.
func (w *World) CameraTop() float64 { return w.cameraTop }

// CameraTargetY returns the y the view is centered on.
func (w *World) CameraTargetY() float64 {
	return w.cameraTop + w.cfg.World.ViewHeight/2
}

// ElapsedMs returns accumulated session time.
func (w *World) ElapsedMs() float64 { return w.elapsedMs }

// Fallbacks returns how many rows used the fallback split.
func (w *World) Fallbacks() int { return w.gen.Fallbacks() }
