// Package policy chooses moves for the computer-controlled side.
package policy

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Policy picks one legal move for colour. ok is false when colour has no
// legal move.
type Policy interface {
	Choose(pos *engine.Position, colour chess.Colour) (m chess.Move, ok bool)
}

// Func adapts an ordinary function to the Policy interface.
type Func func(pos *engine.Position, colour chess.Colour) (chess.Move, bool)

// Choose calls f(pos, colour).
func (f Func) Choose(pos *engine.Position, colour chess.Colour) (chess.Move, bool) {
	return f(pos, colour)
}

// Scoring weights used by Greedy.
const (
	CaptureScore = 10
	CheckScore   = 5
)

// Greedy scores every legal move one ply deep and plays the best. Ties keep
// generation order, so the choice is deterministic.
type Greedy struct{}

// Choose implements Policy.
func (Greedy) Choose(pos *engine.Position, colour chess.Colour) (chess.Move, bool) {
	moves := pos.AllLegalMoves(colour)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = Score(pos, m)
	}
	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return moves[order[0]], true
}

// Score rates a legal move: CaptureScore if it takes a piece plus CheckScore
// if it leaves the opponent in check.
func Score(pos *engine.Position, m chess.Move) int {
	score := 0
	if m.IsCapture() {
		score += CaptureScore
	}
	if pos.GivesCheck(m) {
		score += CheckScore
	}
	return score
}

// Random plays a uniformly chosen legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random policy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Choose implements Policy. Random is not safe for concurrent use because
// rand.Rand is not.
func (r *Random) Choose(pos *engine.Position, colour chess.Colour) (chess.Move, bool) {
	moves := pos.AllLegalMoves(colour)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}

// Names lists the policies known to ByName.
var Names = []string{"greedy", "random"}

// ByName returns the policy called name. seed feeds the random policy.
func ByName(name string, seed int64) (Policy, error) {
	switch strings.ToLower(name) {
	case "greedy":
		return Greedy{}, nil
	case "random":
		return NewRandom(rand.New(rand.NewSource(seed))), nil
	}
	return nil, fmt.Errorf("%q (known: %s): %w", name, strings.Join(Names, ", "), errors.ErrUnknownPolicy)
}
