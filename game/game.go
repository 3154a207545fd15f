// Package game runs a complete match on top of the action executor:
// seating, the round loop with pass rotation, periodic worker income,
// and final scoring.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"terra/board"
	"terra/engine"
	"terra/faction"
	"terra/hex"
	"terra/player"
	"terra/rules"
	"terra/utils"
)

const (
	minSeats = 2
	maxSeats = 4
)

var (
	ErrFinished    = errors.New("game is finished")
	ErrNotYourTurn = errors.New("not your turn")
)

// Game is the single entry point for a match. Every player action goes
// through it so turn order, pass rotation, and income stay consistent.
type Game struct {
	id       uuid.UUID
	cfg      rules.Config
	exec     *engine.Executor
	registry *faction.Registry

	order     []string // seating, fixed once started
	passOrder []string // this round's passes, first passer leads next round
	current   int
	round     int
	started   bool
	finished  bool
	winner    string

	// Cheapest conversion on the menu, the floor for staying active.
	minConvertPower int
}

// New creates an unstarted match on b under cfg. Factions come from the
// builtin registry; register custom ones through Registry before adding
// players.
func New(cfg rules.Config, b *board.Board) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	minPower := 0
	for _, conv := range cfg.Conversions {
		if minPower == 0 || conv.Power < minPower {
			minPower = conv.Power
		}
	}
	return &Game{
		id:              uuid.New(),
		cfg:             cfg,
		exec:            engine.NewExecutor(b, cfg),
		registry:        faction.NewRegistry(),
		minConvertPower: minPower,
	}, nil
}

// ID identifies this match in logs and records.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Registry exposes the faction registry so callers can add factions
// beyond the builtin three before seating players.
func (g *Game) Registry() *faction.Registry {
	return g.registry
}

// AddPlayer seats a new player. Names and faction kinds are unique per
// match, and seating closes once the game starts.
func (g *Game) AddPlayer(name string, kind faction.Kind) (*player.Player, error) {
	if g.started {
		return nil, fmt.Errorf("cannot seat %s: game already started", name)
	}
	if len(g.order) >= maxSeats {
		return nil, fmt.Errorf("cannot seat %s: all %d seats taken", name, maxSeats)
	}
	for _, other := range g.order {
		seated, _ := g.exec.Player(other)
		if seated.Faction().Kind == kind {
			return nil, fmt.Errorf("cannot seat %s: faction %q already taken by %s", name, kind, other)
		}
	}
	f, err := g.registry.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("cannot seat %s: %w", name, err)
	}
	p, err := player.New(name, f, g.cfg)
	if err != nil {
		return nil, err
	}
	if err := g.exec.Seat(p); err != nil {
		return nil, err
	}
	g.order = append(g.order, name)
	log.Debug().Msgf("%s joined as %s", name, kind)
	return p, nil
}

// Start closes seating and opens round one with the first seated player.
func (g *Game) Start() error {
	if g.started {
		return fmt.Errorf("cannot start game %s: already started", g.id)
	}
	if len(g.order) < minSeats {
		return fmt.Errorf("cannot start game %s: %d players seated, need at least %d",
			g.id, len(g.order), minSeats)
	}
	g.started = true
	g.round = 1
	g.current = 0
	log.Info().Msgf("game %s started with players %v", g.id, g.order)
	return nil
}

// Current returns the player whose turn it is.
func (g *Game) Current() (*player.Player, error) {
	if !g.started {
		return nil, fmt.Errorf("cannot read current player: game has not started")
	}
	if g.finished {
		return nil, fmt.Errorf("cannot read current player: %w", ErrFinished)
	}
	p, _ := g.exec.Player(g.order[g.current])
	return p, nil
}

// Players returns the seating order.
func (g *Game) Players() []string {
	return append([]string(nil), g.order...)
}

// Player looks up a seated player by name.
func (g *Game) Player(name string) (*player.Player, bool) {
	return g.exec.Player(name)
}

// Board exposes the shared board for read queries.
func (g *Game) Board() *board.Board {
	return g.exec.Board()
}

// Config returns the active ruleset.
func (g *Game) Config() rules.Config {
	return g.cfg
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Finished() bool {
	return g.finished
}

// Transform reshapes terrain as name's turn action.
func (g *Game) Transform(name string, c hex.Coord, target board.Terrain) error {
	p, err := g.turnOf(name)
	if err != nil {
		return err
	}
	if err := g.exec.Transform(p, c, target); err != nil {
		return err
	}
	g.afterAction(p)
	return nil
}

// Build founds a dwelling as name's turn action.
func (g *Game) Build(name string, c hex.Coord) error {
	p, err := g.turnOf(name)
	if err != nil {
		return err
	}
	if err := g.exec.Build(p, c); err != nil {
		return err
	}
	g.afterAction(p)
	return nil
}

// Convert trades power on the menu as name's turn action.
func (g *Game) Convert(name string, kind rules.ConversionKind) error {
	p, err := g.turnOf(name)
	if err != nil {
		return err
	}
	if err := g.exec.Convert(p, kind); err != nil {
		return err
	}
	g.afterAction(p)
	return nil
}

// Pass drops name out of the round. The first player to pass leads the
// next round.
func (g *Game) Pass(name string) error {
	p, err := g.turnOf(name)
	if err != nil {
		return err
	}
	g.recordPass(p)
	log.Info().Msgf("%s passes", name)
	g.advance()
	return nil
}

// turnOf validates that name may act right now.
func (g *Game) turnOf(name string) (*player.Player, error) {
	if !g.started {
		return nil, fmt.Errorf("cannot act as %s: game has not started", name)
	}
	if g.finished {
		return nil, fmt.Errorf("cannot act as %s: %w", name, ErrFinished)
	}
	idx := utils.FindIndex(g.order, name)
	if idx == -1 {
		return nil, fmt.Errorf("cannot act as %s: unknown player", name)
	}
	p, _ := g.exec.Player(name)
	if p.Passed() {
		return nil, fmt.Errorf("cannot act as %s: already passed this round: %w", name, ErrNotYourTurn)
	}
	if idx != g.current {
		return nil, fmt.Errorf("cannot act as %s: it is %s's turn: %w",
			name, g.order[g.current], ErrNotYourTurn)
	}
	return p, nil
}

// afterAction runs the post-action bookkeeping: players who can no
// longer afford anything are passed for them, then the turn moves on.
func (g *Game) afterAction(p *player.Player) {
	if !g.canAct(p) {
		g.recordPass(p)
		log.Info().Msgf("%s is out of resources and passes", p.Name())
	}
	g.advance()
}

// canAct reports whether p can still afford some action. The check is
// deliberately coarse: any workers, any coins, or enough power for the
// cheapest conversion keeps a player in the round.
func (g *Game) canAct(p *player.Player) bool {
	return p.Workers() > 0 || p.Coins() > 0 || p.Ledger().Balance() >= g.minConvertPower
}

func (g *Game) recordPass(p *player.Player) {
	p.MarkPassed()
	g.passOrder = append(g.passOrder, p.Name())
}

func (g *Game) advance() {
	if g.activeCount() == 0 {
		g.startNewRound()
		return
	}
	g.advanceToNextActive()
}

func (g *Game) activeCount() int {
	n := 0
	for _, name := range g.order {
		if p, _ := g.exec.Player(name); !p.Passed() {
			n++
		}
	}
	return n
}

func (g *Game) advanceToNextActive() {
	n := len(g.order)
	for i := 1; i <= n; i++ {
		idx := (g.current + i) % n
		p, _ := g.exec.Player(g.order[idx])
		if p.Passed() {
			continue
		}
		g.current = idx
		log.Debug().Msgf("%s to move", p.Name())
		g.startTurn(p)
		return
	}
}

// startNewRound resets pass state and hands the lead to the first
// passer of the finished round. The match ends once the round counter
// reaches the configured maximum.
func (g *Game) startNewRound() {
	g.round++
	if g.round >= g.cfg.MaxRounds {
		g.endGame()
		return
	}
	for _, name := range g.order {
		p, _ := g.exec.Player(name)
		p.ResetForRound()
	}
	g.current = 0
	if len(g.passOrder) > 0 {
		if idx := utils.FindIndex(g.order, g.passOrder[0]); idx != -1 {
			g.current = idx
		}
	}
	g.passOrder = g.passOrder[:0]
	p, _ := g.exec.Player(g.order[g.current])
	log.Info().Msgf("round %d begins, %s leads", g.round, p.Name())
	g.startTurn(p)
}

// startTurn ticks p's turn counter and pays worker income on every
// IncomePeriod-th turn.
func (g *Game) startTurn(p *player.Player) {
	turns := p.StartTurn()
	if turns%g.cfg.IncomePeriod != 0 {
		return
	}
	workers := g.cfg.IncomeWorkersPerDwelling * g.exec.Board().CountOf(p.Name())
	if workers > 0 {
		p.GainWorkers(workers)
		log.Debug().Msgf("%s collects %d workers of income", p.Name(), workers)
	}
}
