package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/policy"
)

// Reasons a self-play game stops.
const (
	ReasonCheckmate = "checkmate"
	ReasonStalemate = "stalemate"
	ReasonPlyLimit  = "ply limit"
)

// PolicyFactory builds the two policies for one game. It is called once
// per work item so randomised policies are never shared between workers.
type PolicyFactory func(seed int64) (white, black policy.Policy, err error)

// NamedPolicies returns a PolicyFactory resolving names with policy.ByName.
func NamedPolicies(white, black string) PolicyFactory {
	return func(seed int64) (policy.Policy, policy.Policy, error) {
		w, err := policy.ByName(white, seed)
		if err != nil {
			return nil, nil, err
		}
		b, err := policy.ByName(black, seed+1)
		if err != nil {
			return nil, nil, err
		}
		return w, b, nil
	}
}

// SelfPlayFunc returns a ProcessFunc that plays item.Game to the end, or
// until plyLimit plies have been played in it.
func SelfPlayFunc(policies PolicyFactory, plyLimit int) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Game: item.Game, Index: item.Index}

		white, black, err := policies(item.Seed)
		if err != nil {
			res.Error = err
			return res
		}

		g := item.Game
		for !g.IsOver() && g.Ply() < plyLimit {
			pol := white
			if g.ToMove() == chess.Black {
				pol = black
			}
			if _, err := g.PlayPolicy(pol); err != nil {
				res.Error = errors.Wrapf(err, "game %d", item.Index)
				break
			}
			res.Plies++
		}

		res.Result = g.Result()
		res.Reason = stopReason(g)
		return res
	}
}

func stopReason(g *game.Game) string {
	switch g.Status() {
	case engine.Checkmate:
		return ReasonCheckmate
	case engine.Stalemate:
		return ReasonStalemate
	}
	return ReasonPlyLimit
}
