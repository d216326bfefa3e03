package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplySelfPlayFlags(t *testing.T) {
	defer saveRestoreInt(numGames, 25)()
	defer saveRestoreInt(numWorkers, 4)()
	defer saveRestoreInt(plyLimit, 60)()
	defer saveRestoreString(whitePolicy, "greedy")()
	defer saveRestoreBool(stopOnError, true)()
	defer saveRestoreBool(noDups, true)()

	b := config.NewConfigBuilder()
	applySelfPlayFlags(b)
	cfg := b.Build()

	sp := cfg.SelfPlay
	if sp.Games != 25 || sp.Workers != 4 || sp.PlyLimit != 60 {
		t.Errorf("SelfPlay = %+v; want 25 games, 4 workers, 60 plies", sp)
	}
	if !sp.StopOnError || !sp.SuppressDuplicates {
		t.Errorf("SelfPlay = %+v; want stop on error, duplicates suppressed", sp)
	}
	if sp.WhitePolicy != "greedy" || sp.BlackPolicy != "greedy" {
		t.Errorf("policies = %q/%q; want greedy/greedy", sp.WhitePolicy, sp.BlackPolicy)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(compact, true)()
		defer saveRestoreBool(addFENs, true)()

		b := config.NewConfigBuilder()
		applyOutputFlags(b)
		cfg := b.Build()
		if cfg.Output.Format != config.JSONFormat {
			t.Errorf("Format = %v; want json", cfg.Output.Format)
		}
		if cfg.Output.Pretty || !cfg.Output.AddFENs {
			t.Errorf("Output = %+v; want compact with FENs", cfg.Output)
		}
	})

	t.Run("text", func(t *testing.T) {
		defer saveRestoreBool(noBoard, true)()
		defer saveRestoreInt(lineLength, 0)()

		b := config.NewConfigBuilder()
		applyOutputFlags(b)
		cfg := b.Build()
		if cfg.Output.Format != config.TextFormat {
			t.Errorf("Format = %v; want text", cfg.Output.Format)
		}
		if cfg.Output.ShowBoard {
			t.Error("ShowBoard = true with -noboard")
		}
		if cfg.Output.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want default 80 when -w is 0", cfg.Output.MaxLineLength)
		}
	})
}

func TestApplyFlags_Quiet(t *testing.T) {
	defer saveRestoreBool(quiet, true)()

	cfg := applyFlags(config.NewConfigBuilder()).Build()
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q; want error", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
