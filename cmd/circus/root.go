package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/minaorangina/crazycircus/config"
	"github.com/minaorangina/crazycircus/engine"
	"github.com/minaorangina/crazycircus/game"
	"github.com/minaorangina/crazycircus/internal/random"
	"github.com/minaorangina/crazycircus/players"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	seed       int64
	noColor    bool
	restrict   bool
	json       bool
	verbose    bool
}

func newRootCmd(stdin *os.File, stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "circus [player...]",
		Short: "Play Crazy Circus in the terminal",
		Long: `Play Crazy Circus in the terminal.

Each round shows where the animals stand and where they must end up.
Type your name followed by a sequence of orders, e.g. "Harry KIMALO".
With fewer than two players on the command line, circus asks for them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mergeEnv(cmd, opts); err != nil {
				return err
			}
			return run(cmd.Context(), opts, args, stdin, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "configuration file (.cfg, .yaml or .yml)")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for drawing arrangements, 0 for a random one")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colours")
	flags.BoolVar(&opts.restrict, "restrict", false, "only accept the configured orders")
	flags.BoolVar(&opts.json, "json", false, "write events as JSON lines")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log the game's progress to stderr")

	return cmd
}

// mergeEnv fills every flag left unset from the environment
func mergeEnv(cmd *cobra.Command, opts *options) error {
	env, err := config.FromEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		opts.configPath = env.ConfigPath
	}
	if !flags.Changed("seed") {
		opts.seed = env.Seed
	}
	if !flags.Changed("no-color") {
		opts.noColor = env.NoColor
	}
	if !flags.Changed("restrict") {
		opts.restrict = env.RestrictOrders
	}
	return nil
}

func run(ctx context.Context, opts *options, args []string, stdin *os.File, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in := bufio.NewReader(stdin)
	interactive := isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd())

	names, err := playerNames(args)
	if err != nil {
		return err
	}
	if names == nil {
		prompts := io.Discard
		if interactive {
			prompts = stdout
		}
		result, err := players.Setup(players.Conn{In: in, Out: prompts}, opts.configPath)
		if err != nil {
			return err
		}
		names = result.Names
		opts.configPath = result.ConfigPath
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opts.configPath, err)
	}
	orders, err := cfg.OrderSet()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(os.Stderr, "circus: ", log.LstdFlags)
	}

	seed := opts.seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
	}
	logger.Printf("seed %d", seed)

	circus, err := game.New(game.Opts{
		Tokens:   cfg.Tokens(),
		Orders:   orders,
		Players:  names,
		Rand:     random.New(seed),
		Restrict: opts.restrict,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		Game:   circus,
		In:     in,
		Out:    stdout,
		JSON:   opts.json,
		Color:  !opts.noColor && !opts.json && isTerminal(stdout),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	return ge.Run(ctx)
}

// playerNames keeps the first ten names given on the command line. Fewer
// than two means the players must be asked for, and nil is returned.
func playerNames(args []string) ([]string, error) {
	if len(args) < players.MinPlayers {
		return nil, nil
	}
	if len(args) > players.MaxPlayers {
		args = args[:players.MaxPlayers]
	}

	if _, err := players.NewPlayers(args...); err != nil {
		return nil, fmt.Errorf("player names must be distinct: %w", err)
	}
	return args, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
