// powereggs answers the "Power Eggs" puzzle for a batch of test cases.
//
// Given N floors and K eggs, it prints the minimal number of drops that
// finds, in the worst case, the highest floor an egg survives. Answers above
// the drop ceiling print as "Impossible".
//
// Usage
// =====
//
//	powereggs [flags] < cases.txt
//
// Input is the case count T followed by T lines of "N K". Output is one line
// per case on stdout; logs go to stderr.
//
// The default table solver accepts N, K <= 100. Table strategies refuse
// limits whose table would exceed eggdrop.MaxTableCells cells; the
// closed-form strategy serves the whole contest range:
//
//	powereggs -strategy closed -max-floors 2000000007 -max-eggs 32 < cases.txt
//
// Exit Codes
// ==========
//
// 0: every case was answered.
// 1: a case was out of range or malformed, or the input was unreadable.
// 2: bad flags or configuration, including table limits that are too large.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/powereggs/effects"
	"github.com/on-the-ground/powereggs/effects/binding"
	"github.com/on-the-ground/powereggs/effects/configkeys"
	"github.com/on-the-ground/powereggs/effects/log"
	"github.com/on-the-ground/powereggs/eggdrop"
	"github.com/on-the-ground/powereggs/puzzle"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flagKeys maps each config flag to the binding key it sets.
var flagKeys = map[string]string{
	"strategy":   configkeys.ConfigSolverStrategy,
	"max-floors": configkeys.ConfigSolverMaxFloors,
	"max-eggs":   configkeys.ConfigSolverMaxEggs,
	"ceiling":    configkeys.ConfigPolicyDropCeiling,
	"memo":       configkeys.ConfigRunnerMemo,
	"memo-size":  configkeys.ConfigRunnerMemoSize,
	"log-buffer": configkeys.ConfigEffectLogHandlerBufferSize,
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	def := puzzle.DefaultConfig()

	fs := flag.NewFlagSet("powereggs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("strategy", string(def.Strategy), "solver strategy: scan, bisect, recursive or closed")
	fs.Int("max-floors", def.Limits.MaxFloors, "largest floor count accepted")
	fs.Int("max-eggs", def.Limits.MaxEggs, "largest egg count accepted")
	fs.Int("ceiling", def.Ceiling, "drop count above which a case is Impossible")
	fs.String("memo", string(def.Memo), "answer memo across cases: trie, ristretto or none")
	fs.Int("memo-size", def.MemoSize, "answers kept by the memo")
	fs.Int("log-buffer", 64, "log entries queued before logging blocks")
	debug := fs.Bool("debug", false, "log every case")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	bindings := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			bindings[key] = f.Value.(flag.Getter).Get()
		}
	})

	logger := log.NewLogger(stderr, *debug)
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx := context.Background()
	ctx, endOfBinding := binding.WithEffectHandler(ctx, effects.NewEffectScopeConfig(1, 1), bindings)
	defer endOfBinding()

	logBuffer, err := binding.GetOrDefault(ctx, configkeys.ConfigEffectLogHandlerBufferSize, 64)
	if err != nil {
		fmt.Fprintf(stderr, "powereggs: %v\n", err)
		return 2
	}
	ctx, endOfLog := log.WithZapEffectHandler(ctx, logBuffer, logger)
	defer endOfLog()

	runner, err := puzzle.NewRunnerFromBindings(ctx)
	if err != nil {
		log.Effect(ctx, log.LogError, "invalid configuration", map[string]any{"error": err.Error()})
		return 2
	}
	defer runner.Close()

	summary, err := runner.Run(ctx, stdin, stdout)
	if err != nil {
		log.Effect(ctx, log.LogError, "batch had errors", map[string]any{
			"error":   err.Error(),
			"answers": summary.Cases,
			"invalid": summary.ByKind[eggdrop.InvalidInput],
		})
		return 1
	}
	return 0
}
