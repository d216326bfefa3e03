// Package session keeps the live games of the play server, each keyed by a
// uuid and guarded by its own lock.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/policy"
)

// subscriberBuffer is the number of states a slow subscriber may fall
// behind before updates to it are dropped.
const subscriberBuffer = 8

// State is the snapshot of a game sent to clients.
type State struct {
	output.JSONGame
	Human chess.Colour `json:"human"`
}

// CreateOptions configures a new game.
type CreateOptions struct {
	FEN   string       // Starting position; empty for the standard one
	Human chess.Colour // Colour played by the client
}

// MoveRequest is a move submitted by the client.
type MoveRequest struct {
	From chess.Square
	To   chess.Square
	Side chess.CastlingSide
}

type entry struct {
	mu       sync.Mutex
	game     *game.Game
	opponent policy.Policy
	human    chess.Colour
	subs     map[int]chan State
	nextSub  int
}

// Manager owns every live game.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*entry

	policyName string
	seed       int64
	seq        atomic.Int64
	delay      time.Duration
	maxGames   int
	log        zerolog.Logger
}

// NewManager creates a manager for cfg. The policy name is checked here so
// a bad configuration fails at startup.
func NewManager(cfg config.PlayConfig, log zerolog.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := policy.ByName(cfg.Policy, cfg.Seed); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{
		games:      make(map[string]*entry),
		policyName: cfg.Policy,
		seed:       seed,
		delay:      cfg.ReplyDelay,
		maxGames:   cfg.MaxGames,
		log:        log.With().Str("component", "session").Logger(),
	}, nil
}

// Create starts a new game and returns its state.
func (m *Manager) Create(opts CreateOptions) (State, error) {
	id := uuid.NewString()

	g := game.New(id)
	if opts.FEN != "" {
		var err error
		if g, err = game.FromFEN(id, opts.FEN); err != nil {
			return State{}, err
		}
	}

	opponent, err := policy.ByName(m.policyName, m.seed+m.seq.Add(1))
	if err != nil {
		return State{}, err
	}

	e := &entry{game: g, opponent: opponent, human: opts.Human, subs: make(map[int]chan State)}

	m.mu.Lock()
	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		m.mu.Unlock()
		return State{}, errors.Wrapf(errors.ErrTooManyGames, "limit %d", m.maxGames)
	}
	m.games[id] = e
	m.mu.Unlock()

	m.log.Info().Str("game", id).Stringer("human", opts.Human).Str("policy", m.policyName).Msg("game created")

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state(), nil
}

// Get returns the state of game id.
func (m *Manager) Get(id string) (State, error) {
	e, err := m.lookup(id)
	if err != nil {
		return State{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state(), nil
}

// LegalMoves returns the legal moves from sq in game id. Squares holding a
// piece of the side not to move have none.
func (m *Manager) LegalMoves(id string, sq chess.Square) ([]chess.Move, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.LegalMoves(sq), nil
}

// Play makes the client's move in game id.
func (m *Manager) Play(id string, req MoveRequest) (State, chess.Move, error) {
	e, err := m.lookup(id)
	if err != nil {
		return State{}, chess.Move{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	mv, err := e.game.Play(e.human, req.From, req.To, req.Side)
	if err != nil {
		m.log.Debug().Err(err).Str("game", id).Msg("move rejected")
		return State{}, chess.Move{}, err
	}
	return m.afterMove(id, e, mv), mv, nil
}

// Reply waits the configured delay and then lets the computer answer in
// game id. It fails with ErrNotYourTurn when the client is to move and
// returns ctx.Err() if ctx ends during the delay.
func (m *Manager) Reply(ctx context.Context, id string) (State, chess.Move, error) {
	e, err := m.lookup(id)
	if err != nil {
		return State{}, chess.Move{}, err
	}

	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return State{}, chess.Move{}, ctx.Err()
		case <-timer.C:
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.game.ToMove() == e.human {
		return State{}, chess.Move{}, &errors.MoveError{Err: errors.ErrNotYourTurn, GameID: id, Ply: e.game.Ply() + 1}
	}
	mv, err := e.game.PlayPolicy(e.opponent)
	if err != nil {
		return State{}, chess.Move{}, err
	}
	return m.afterMove(id, e, mv), mv, nil
}

// Subscribe returns a channel receiving the state after every ply of game
// id, and a function to stop the subscription. The channel is closed when
// the subscription or the game ends.
func (m *Manager) Subscribe(id string) (<-chan State, func(), error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	e.mu.Lock()
	key := e.nextSub
	e.nextSub++
	ch := make(chan State, subscriberBuffer)
	e.subs[key] = ch
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if c, ok := e.subs[key]; ok {
				delete(e.subs, key)
				close(c)
			}
		})
	}
	return ch, cancel, nil
}

// Delete removes game id and closes its subscriptions.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}

	e.mu.Lock()
	for key, c := range e.subs {
		delete(e.subs, key)
		close(c)
	}
	e.mu.Unlock()

	m.log.Info().Str("game", id).Msg("game deleted")
	return nil
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return e, nil
}

// afterMove logs the move and notifies subscribers. e.mu must be held.
func (m *Manager) afterMove(id string, e *entry, mv chess.Move) State {
	st := e.state()
	m.log.Info().
		Str("game", id).
		Str("move", mv.Notation()).
		Int("ply", st.PlyCount).
		Stringer("status", st.Status).
		Msg("move played")
	if st.Status.IsOver() {
		m.log.Info().Str("game", id).Str("result", st.Result).Msg("game over")
	}

	for _, c := range e.subs {
		select {
		case c <- st:
		default:
			m.log.Warn().Str("game", id).Msg("subscriber lagging, update dropped")
		}
	}
	return st
}

// state snapshots the game. e.mu must be held.
func (e *entry) state() State {
	return State{
		JSONGame: *output.GameToJSON(e.game, output.JSONOptions{}),
		Human:    e.human,
	}
}
