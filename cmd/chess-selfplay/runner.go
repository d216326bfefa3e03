package main

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Summary counts the outcomes of a batch.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
	Errors     int
	Skipped    int // Games not played after -stop-on-error
	Plies      int
	Duplicates int // Games ending in a position already seen in the batch
}

// add records one finished game.
func (s *Summary) add(res worker.ProcessResult) {
	if res.Skipped {
		s.Skipped++
		return
	}
	s.Games++
	s.Plies += res.Plies
	if res.Error != nil {
		s.Errors++
		return
	}
	switch res.Result {
	case game.WhiteWins:
		s.WhiteWins++
	case game.BlackWins:
		s.BlackWins++
	case game.Draw:
		s.Draws++
	default:
		s.Unfinished++
	}
}

func (s Summary) log(log zerolog.Logger) {
	log.Info().
		Int("games", s.Games).
		Int("white_wins", s.WhiteWins).
		Int("black_wins", s.BlackWins).
		Int("draws", s.Draws).
		Int("unfinished", s.Unfinished).
		Int("errors", s.Errors).
		Int("skipped", s.Skipped).
		Int("plies", s.Plies).
		Int("duplicates", s.Duplicates).
		Msg("self-play finished")
}

// runSelfPlay plays cfg.SelfPlay.Games games on the worker pool and writes
// them to cfg.OutputFile in game order. Duplicates are detected in that
// order too, so the first game reaching a final position is the one kept.
func runSelfPlay(cfg *config.Config, fen string, log zerolog.Logger) (Summary, error) {
	sp := cfg.SelfPlay
	games := make([]*game.Game, sp.Games)
	for i := range games {
		id := fmt.Sprintf("%d", i+1)
		if fen == "" {
			games[i] = game.New(id)
			continue
		}
		g, err := game.FromFEN(id, fen)
		if err != nil {
			return Summary{}, err
		}
		games[i] = g
	}

	bufferSize := len(games)
	if bufferSize > 100 {
		bufferSize = 100
	}
	processFunc := worker.SelfPlayFunc(worker.NamedPolicies(sp.WhitePolicy, sp.BlackPolicy), sp.PlyLimit)
	pool := worker.NewPool(processFunc, worker.WithWorkers(sp.Workers), worker.WithBufferSize(bufferSize))
	pool.Start()
	log.Debug().Int("games", len(games)).Int("workers", pool.NumWorkers()).Msg("self-play started")

	go func() {
		for i, g := range games {
			pool.Submit(worker.WorkItem{Game: g, Index: i, Seed: cfg.Play.Seed + int64(2*i)})
		}
		pool.Close()
	}()

	var summary Summary
	results := make([]worker.ProcessResult, 0, len(games))
	for res := range pool.Results() {
		summary.add(res)
		if res.Skipped {
			continue
		}
		ev := log.Debug()
		if res.Error != nil {
			ev = log.Error().Err(res.Error)
			if sp.StopOnError && !pool.IsStopped() {
				pool.Stop()
				log.Warn().Str("game", res.Game.ID).Msg("stopping after failed game")
			}
		}
		ev.Str("game", res.Game.ID).Int("plies", res.Plies).Str("result", res.Result).Str("reason", res.Reason).Msg("game finished")
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	detector := hashing.NewDuplicateDetector(false, 0)
	writer := output.NewGameWriter(cfg.OutputFile, &cfg.Output)
	for _, res := range results {
		if res.Error != nil {
			continue
		}
		if detector.CheckAndAdd(res.Game) && sp.SuppressDuplicates {
			log.Debug().Str("game", res.Game.ID).Msg("duplicate game suppressed")
			continue
		}
		if err := writer.WriteGame(res.Game); err != nil {
			return summary, err
		}
	}
	summary.Duplicates = detector.DuplicateCount()
	return summary, writer.Close()
}
