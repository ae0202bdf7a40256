// dungeon-kernel plays the dungeon in the local terminal.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"dungeon-kernel/internal/config"
	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/generate"
	"dungeon-kernel/internal/render"
	"dungeon-kernel/internal/save"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var (
	width     int
	height    int
	viewRange int
	saveDB    string
	logFile   string
	logLevel  string
	seed      int64
)

var rootCmd = &cobra.Command{
	Use:   "dungeon-kernel",
	Short: "Play the dungeon in this terminal",
	Long:  `dungeon-kernel is a turn-based dungeon crawler. Settings come from DUNGEON_* environment variables; flags override them.`,
	RunE:  runGame,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&width, "width", 0, "map width in tiles (default $DUNGEON_MAP_WIDTH or 80)")
	f.IntVar(&height, "height", 0, "map height in tiles (default $DUNGEON_MAP_HEIGHT or 43)")
	f.IntVar(&viewRange, "view-range", 0, "player sight radius (default $DUNGEON_VIEW_RANGE or 8)")
	f.StringVar(&saveDB, "save", "", "SQLite save database (default $DUNGEON_SAVE_PATH)")
	f.StringVar(&logFile, "log-file", "", "diagnostic log file (default $DUNGEON_LOG_FILE, none when empty)")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default $DUNGEON_LOG_LEVEL)")
	f.Int64Var(&seed, "seed", 0, "random seed for level generation (default: clock)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.MapWidth = width
	}
	if f.Changed("height") {
		cfg.MapHeight = height
	}
	if f.Changed("view-range") {
		cfg.ViewRange = viewRange
	}
	if f.Changed("save") {
		cfg.SavePath = saveDB
	}
	if f.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg.Validate()
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := save.Open(cfg.SavePath)
	if err != nil {
		return fmt.Errorf("open saves: %w", err)
	}
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	term := render.NewTerminal(screen)
	defer term.Close()

	opts := game.Options{ViewRange: cfg.ViewRange, Logger: logger}
	if cmd.Flags().Changed("seed") {
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	// SIGTERM closes the screen; the game saves and returns to the menu,
	// which then quits.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		term.Close()
	}()

	logger.Info("starting", "save", cfg.SavePath, "map", fmt.Sprintf("%dx%d", cfg.MapWidth, cfg.MapHeight))
	g := game.New(term, store.Slot("local"), generate.NewBSP(cfg.MapWidth, cfg.MapHeight), opts)
	return g.Run(context.WithoutCancel(ctx))
}
