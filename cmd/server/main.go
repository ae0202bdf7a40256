// dungeon-server serves the game over SSH. Every connection plays its own
// independent game, saved under a slot owned by the client's public key.
//
// Usage:
//
//	dungeon-server [--addr :2222] [--key host_key] [--save saves.db]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"dungeon-kernel/internal/config"
	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/generate"
	"dungeon-kernel/internal/render"
	"dungeon-kernel/internal/save"
	internalssh "dungeon-kernel/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

var (
	addr    string
	keyFile string
	saveDB  string
	level   string
)

var rootCmd = &cobra.Command{
	Use:   "dungeon-server",
	Short: "Serve the dungeon over SSH",
	Long:  `dungeon-server runs one dungeon game per SSH connection and keeps each user's save in a shared SQLite database.`,
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (default $DUNGEON_SSH_ADDR or :2222)")
	rootCmd.Flags().StringVar(&keyFile, "key", "", "PEM host key path, generated when absent (default $DUNGEON_HOST_KEY)")
	rootCmd.Flags().StringVar(&saveDB, "save", "", "SQLite save database (default $DUNGEON_SAVE_PATH)")
	rootCmd.Flags().StringVar(&level, "log-level", "", "debug, info, warn or error (default $DUNGEON_LOG_LEVEL)")
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
	if f.Changed("addr") {
		cfg.SSHAddr = addr
	}
	if f.Changed("key") {
		cfg.HostKey = keyFile
	}
	if f.Changed("save") {
		cfg.SavePath = saveDB
	}
	if f.Changed("log-level") {
		cfg.LogLevel = level
	}
	return cfg.Validate()
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	store, err := save.Open(cfg.SavePath)
	if err != nil {
		return fmt.Errorf("open saves: %w", err)
	}
	defer store.Close()

	signer, err := loadOrCreateHostKey(cfg.HostKey, logger)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, store: store, logger: logger}
	srv := newSSHServer(cfg.SSHAddr, h.handleSession, signer)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.SSHAddr, "saves", cfg.SavePath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("serve ssh: %w", err)
	}
	return nil
}

// newSSHServer builds the server. Only public key authentication is
// offered, so every session carries the key its save slot is derived from.
func newSSHServer(addr string, handle gossh.Handler, signer gossh.Signer) *gossh.Server {
	return &gossh.Server{
		Addr:    addr,
		Handler: handle,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any key is welcome; the key, not the user name, owns the save.
		PublicKeyHandler: func(_ gossh.Context, _ gossh.PublicKey) bool { return true },
		HostSigners:      []gossh.Signer{signer},
	}
}

// handler runs one game per SSH session.
type handler struct {
	cfg    config.Config
	store  *save.Store
	logger *slog.Logger
}

// termMu serialises os.Setenv("TERM") around terminfo screen creation.
var termMu sync.Mutex

// handleSession blocks for the lifetime of the connection.
func (h *handler) handleSession(s gossh.Session) {
	slot, ok := internalssh.SlotName(s.User(), s.PublicKey())
	if !ok {
		fmt.Fprintln(s, "This game requires public key authentication.")
		return
	}
	logger := h.logger.With("remote", s.RemoteAddr().String(), "slot", slot)

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", internalssh.TermFromEnviron(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		logger.Warn("terminal setup failed", "error", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		logger.Warn("screen init failed", "error", err)
		return
	}

	term := render.NewTerminal(screen)
	defer term.Close()
	// A dropped connection closes the screen, which the game treats as
	// save-and-quit.
	go func() {
		<-s.Context().Done()
		term.Close()
	}()

	logger.Info("session started")
	g := game.New(term, h.store.Slot(slot), generate.NewBSP(h.cfg.MapWidth, h.cfg.MapHeight), game.Options{
		ViewRange: h.cfg.ViewRange,
		Logger:    logger,
	})
	if err := g.Run(context.WithoutCancel(s.Context())); err != nil {
		logger.Warn("game ended", "error", err)
	}
	logger.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "dungeon-server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	}
	return signer, nil
}
