package hunt

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

// Settings are the variant constants the engine scores and times with.
type Settings struct {
	PelletPoints    int
	EnergizerPoints int
	// GhostPoints is indexed by the number of ghosts the current energizer
	// already killed; the last value repeats.
	GhostPoints           []int
	AllGhostsKilledPoints int
	AllGhostsKilledCount  int

	// PowerTicks returns how long an energizer lasts on a level.
	PowerTicks       func(levelNumber int) int
	PowerFadingTicks int

	// BonusTriggers are eaten-food counts that make a bonus appear.
	BonusTriggers    []int
	BonusEdibleTicks int
	BonusEatenTicks  int
	// BonusFor returns the bonus symbol and value of a level.
	BonusFor func(levelNumber int) (symbol string, points int)
}

// Mover advances actors by one tick. Movement itself is not part of the
// hunt rules; the engine only needs the tiles the actors end up on.
type Mover interface {
	// Reset puts Pac and the ghosts on their start tiles.
	Reset(level *LevelState)
	MovePac(level *LevelState)
	MoveGhost(level *LevelState, g *Ghost, phase Phase)
}

// Engine advances a level by one tick at a time.
type Engine struct {
	settings Settings
	clock    *HuntingPhaseClock
	house    *GhostHouseGatekeeper
	ledger   *ScoreLedger
	lives    *Lives

	mover    Mover
	collides CollisionStrategy
	demoSafe DemoSafety
	sinks    []EventSink
	logger   *log.Logger

	tick uint64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMover sets the movement collaborator.
func WithMover(m Mover) EngineOption {
	return func(e *Engine) { e.mover = m }
}

// WithCollision sets the collision strategy.
func WithCollision(s CollisionStrategy) EngineOption {
	return func(e *Engine) { e.collides = s }
}

// WithDemoSafety sets the demo-level safety predicate.
func WithDemoSafety(s DemoSafety) EngineOption {
	return func(e *Engine) { e.demoSafe = s }
}

// WithEventSink adds a sink that receives every reported fact.
func WithEventSink(s EventSink) EngineOption {
	return func(e *Engine) { e.sinks = append(e.sinks, s) }
}

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine. Without options actors stand still, collisions
// are tile-based and Pac is never safe in the demo level.
func NewEngine(settings Settings, clock *HuntingPhaseClock, house *GhostHouseGatekeeper,
	ledger *ScoreLedger, lives *Lives, opts ...EngineOption) *Engine {
	e := &Engine{
		settings: settings,
		clock:    clock,
		house:    house,
		ledger:   ledger,
		lives:    lives,
		mover:    standStill{},
		collides: SameTile,
		demoSafe: NeverSafe,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e
}

// Clock returns the hunting phase clock.
func (e *Engine) Clock() *HuntingPhaseClock { return e.clock }

// House returns the ghost house gatekeeper.
func (e *Engine) House() *GhostHouseGatekeeper { return e.house }

// Ledger returns the score ledger.
func (e *Engine) Ledger() *ScoreLedger { return e.ledger }

// Lives returns the life counter.
func (e *Engine) Lives() *Lives { return e.lives }

// Tick returns the number of the last simulated tick.
func (e *Engine) Tick() uint64 { return e.tick }

// StartLevel prepares the engine's components for a new level.
func (e *Engine) StartLevel(level *LevelState) {
	e.house.SetLevelNumber(level.Number())
	e.clock.Reset()
	e.ledger.SetLevelNumber(level.Number())
}

// GetReadyToPlay puts the actors on their start tiles with every ghost
// locked and starts the first hunting phase.
func (e *Engine) GetReadyToPlay(level *LevelState) {
	level.Pac.Revive()
	for _, g := range level.Ghosts() {
		g.SetState(Locked)
	}
	level.Bonus = nil
	level.victims.Clear()
	e.mover.Reset(level)
	e.clock.StartFirstPhase(level.Number())
}

// LoseLife takes a life after Pac was killed and arms the global dot
// counter of the ghost house.
func (e *Engine) LoseLife() error {
	if err := e.lives.Lose(); err != nil {
		return err
	}
	e.house.ResetCounterAndSetEnabled(true)
	e.clock.Reset()
	return nil
}

// Step simulates one tick. The sub-steps run in a fixed order; a tick in
// which Pac dies or a ghost is killed ends before food, bonus and power are
// looked at. The only errors are configuration errors.
func (e *Engine) Step(level *LevelState) (*StepResult, error) {
	e.tick++
	res := &StepResult{Tick: e.tick}
	defer e.publish(res)

	if level.Pac.Dead() {
		return res, nil
	}

	if release := e.house.UnlockGhostIfPossible(level); release != nil {
		res.Released = release
		res.record(GhostReleasedEvent{Release: *release})
		e.logger.Debug("ghost released", "ghost", release.Ghost, "reason", release.Reason, "tick", e.tick)
	}

	// Actors
	e.mover.MovePac(level)
	level.Pac.Starve()
	for _, g := range level.Ghosts() {
		e.mover.MoveGhost(level, g, e.clock.Phase())
		g.Age()
	}
	e.updateBonus(level, res)

	// Collisions
	var colliding []*Ghost
	for _, g := range level.Ghosts() {
		if level.Maze.IsPortal(g.Tile()) {
			continue
		}
		if e.collides(g, level.Pac) {
			colliding = append(colliding, g)
		}
	}
	if len(colliding) > 0 {
		if e.checkPacKilled(level, colliding, res) {
			return res, nil
		}
		if e.killFrightenedGhosts(level, colliding, res) {
			return res, nil
		}
	}

	e.checkFood(level, res)
	e.checkBonus(level, res)
	e.updatePower(level, res)

	changed, err := e.clock.Update(level.Number())
	if err != nil {
		return res, err
	}
	if changed {
		res.PhaseChanged = true
		for _, g := range level.GhostsIn(HuntingPac) {
			g.Reverse()
		}
		res.record(HuntingPhaseStartedEvent{Index: e.clock.PhaseIndex(), Phase: e.clock.Phase()})
		e.logger.Debug("hunting phase started", "index", e.clock.PhaseIndex(), "phase", e.clock.Phase())
	}
	return res, nil
}

func (e *Engine) publish(res *StepResult) {
	for _, ev := range res.Events {
		for _, s := range e.sinks {
			s.OnEvent(res.Tick, ev)
		}
	}
}

func (e *Engine) pacSafe(level *LevelState) bool {
	if level.Demo() {
		return e.demoSafe(level)
	}
	return level.Pac.Immune()
}

func (e *Engine) checkPacKilled(level *LevelState, colliding []*Ghost, res *StepResult) bool {
	for _, g := range colliding {
		if !g.In(HuntingPac) {
			continue
		}
		if e.pacSafe(level) {
			return false
		}
		level.Pac.die()
		res.PacKilled = true
		res.PacKiller = g.Personality()
		res.record(PacKilledEvent{Killer: g.Personality()})
		e.logger.Debug("pac killed", "ghost", g.Personality(), "tick", e.tick)
		return true
	}
	return false
}

func (e *Engine) killFrightenedGhosts(level *LevelState, colliding []*Ghost, res *StepResult) bool {
	killed := false
	for _, g := range colliding {
		if !g.In(Frightened) {
			continue
		}
		victim := level.victims.Len()
		points := e.ghostPoints(victim)
		g.SetState(Eaten)
		level.ghostKillCount++
		level.victims.Add(g.Personality())
		res.KilledGhosts = append(res.KilledGhosts, g.Personality())
		res.record(GhostKilledEvent{Ghost: g.Personality(), Points: points, Victim: victim})
		e.scorePoints(points, res)
		killed = true
	}
	if killed && !level.allKilledScored && e.settings.AllGhostsKilledCount > 0 &&
		level.ghostKillCount >= e.settings.AllGhostsKilledCount {
		level.allKilledScored = true
		e.scorePoints(e.settings.AllGhostsKilledPoints, res)
	}
	return killed
}

func (e *Engine) ghostPoints(victim int) int {
	pts := e.settings.GhostPoints
	if len(pts) == 0 {
		return 0
	}
	return pts[core.Clamp(victim, 0, len(pts)-1)]
}

func (e *Engine) checkFood(level *LevelState, res *StepResult) {
	tile := level.Pac.Tile()
	if !level.Maze.HasFoodAt(tile) {
		return
	}
	energizer := level.Maze.IsEnergizerTile(tile)
	level.Maze.RegisterFoodEaten(tile)
	level.foodEaten()
	e.house.RegisterFoodEaten(level)
	level.Pac.EndStarving()

	res.FoodFound = true
	res.FoodTile = tile
	res.EnergizerFound = energizer
	res.record(PacFoundFoodEvent{Tile: tile, Energizer: energizer})

	if energizer {
		e.scorePoints(e.settings.EnergizerPoints, res)
		e.startPower(level, res)
	} else {
		e.scorePoints(e.settings.PelletPoints, res)
	}

	e.checkBonusTrigger(level, res)

	if level.Completed() {
		res.LevelCompleted = true
		res.record(LevelCompletedEvent{Level: level.Number()})
	}
}

func (e *Engine) startPower(level *LevelState, res *StepResult) {
	level.victims.Clear()
	if e.settings.PowerTicks == nil {
		return
	}
	ticks := e.settings.PowerTicks(level.Number())
	if ticks <= 0 {
		return
	}
	pac := level.Pac
	pac.powerTimer.Restart(ticks)
	pac.losingPower = false
	e.clock.Stop()
	for _, g := range level.GhostsIn(HuntingPac) {
		g.SetState(Frightened)
		g.Reverse()
	}
	res.PacGotPower = true
	res.record(PacGetsPowerEvent{Ticks: ticks})
	e.logger.Debug("pac gets power", "ticks", ticks, "tick", e.tick)
}

func (e *Engine) checkBonusTrigger(level *LevelState, res *StepResult) {
	if e.settings.BonusFor == nil || level.bonusesSpawned >= len(e.settings.BonusTriggers) {
		return
	}
	if level.EatenFoodCount() != e.settings.BonusTriggers[level.bonusesSpawned] {
		return
	}
	level.bonusesSpawned++
	symbol, points := e.settings.BonusFor(level.Number())
	b := NewBonus(symbol, points, level.BonusTile)
	b.Activate(e.settings.BonusEdibleTicks)
	level.Bonus = b
	res.record(BonusActivatedEvent{Symbol: symbol, Points: points, Tile: b.Tile})
}

func (e *Engine) updateBonus(level *LevelState, res *StepResult) {
	b := level.Bonus
	if b == nil {
		return
	}
	if b.Update() {
		res.record(BonusExpiredEvent{Symbol: b.Symbol})
	}
}

func (e *Engine) checkBonus(level *LevelState, res *StepResult) {
	b := level.Bonus
	if b == nil || !b.IsEdible() || level.Pac.Tile() != b.Tile {
		return
	}
	b.Eat(e.settings.BonusEatenTicks)
	res.BonusEaten = true
	res.record(BonusEatenEvent{Symbol: b.Symbol, Points: b.Points})
	e.scorePoints(b.Points, res)
}

func (e *Engine) updatePower(level *LevelState, res *StepResult) {
	pac := level.Pac
	timer := &pac.powerTimer
	if !timer.Running() {
		return
	}
	timer.Tick()
	if !pac.losingPower && timer.Remaining() <= e.settings.PowerFadingTicks {
		pac.losingPower = true
		res.PacStartsLosingPower = true
		res.record(PacStartsLosingPowerEvent{})
	}
	if !timer.Expired() {
		return
	}
	timer.Reset(0)
	pac.losingPower = false
	level.victims.Clear()
	e.clock.Resume()
	for _, g := range level.GhostsIn(Frightened) {
		g.SetState(HuntingPac)
	}
	res.PacLostPower = true
	res.record(PacLostPowerEvent{})
	e.logger.Debug("pac lost power", "tick", e.tick)
}

func (e *Engine) scorePoints(points int, res *StepResult) {
	extra := e.ledger.ScorePoints(points)
	if extra == nil {
		return
	}
	e.lives.Add(1)
	res.ExtraLife = extra
	res.record(ExtraLifeEvent{ExtraLife: *extra})
	e.logger.Debug("extra life", "threshold", extra.Threshold, "score", extra.Score)
}

// standStill is the Mover used when none is configured.
type standStill struct{}

func (standStill) Reset(level *LevelState) {
	level.Pac.Hold()
	for _, g := range level.Ghosts() {
		g.Hold()
	}
}

func (standStill) MovePac(level *LevelState) { level.Pac.Hold() }

func (standStill) MoveGhost(_ *LevelState, g *Ghost, _ Phase) { g.Hold() }
