// Command huholdembot connects to a heads-up Hold'em game server and plays
// using the decision pipeline in internal/bot, internal/decision, and
// internal/mcts (spec.md §6, SPEC_FULL.md §10.3).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/huholdembot/internal/bot"
	"github.com/lox/huholdembot/internal/decision"
	"github.com/lox/huholdembot/internal/handlog"
	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/internal/transport"
)

// version is set by ldflags during build.
var version = "dev"

// CLI mirrors cmd/pokerforbots/main.go's flag layout (SPEC_FULL.md §10.3).
var CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Team         string `required:"" help:"Team name sent in the hello handshake"`
	URL          string `default:"ws://127.0.0.1:9876/ws" help:"Game server websocket URL"`
	Bot          string `help:"Bot slot identifier (A or B)"`
	LogLevel     string `default:"info" help:"Log level: debug, info, warn, error"`
	StrategyFile string `help:"Optional HCL file overriding the built-in range/ladder tables"`
	LogDir       string `help:"Directory for hand-history JSONL logs (default logs/hands)"`
	Seed         int64  `default:"1" help:"PRNG seed for deterministic sampling"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("huholdembot"),
		kong.Description("Heads-up no-limit Hold'em decision agent"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	level, err := log.ParseLevel(CLI.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", CLI.LogLevel, err)
		ctx.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	logger.SetLevel(level)

	if err := run(logger); err != nil {
		logger.Error("fatal", "err", err)
		ctx.Exit(1)
	}
}

func run(logger *log.Logger) error {
	table := ranges.DefaultTable()
	ladders := ranges.DefaultPushFoldLadders()

	strategy, err := decision.LoadStrategyFile(CLI.StrategyFile)
	if err != nil {
		return fmt.Errorf("load strategy file: %w", err)
	}
	if err := strategy.Apply(table, &ladders); err != nil {
		return fmt.Errorf("apply strategy file: %w", err)
	}

	conn, err := transport.Dial(CLI.URL, logger)
	if err != nil {
		return fmt.Errorf("dial %s: %w", CLI.URL, err)
	}
	defer conn.Close()

	hands := handlog.New(CLI.LogDir)

	b := bot.New(CLI.Team, CLI.Bot, conn, logger, CLI.Seed, hands)
	b.Engine().Ladders = ladders

	logger.Info("connected", "url", CLI.URL, "team", CLI.Team, "bot", CLI.Bot)
	return b.Run()
}
