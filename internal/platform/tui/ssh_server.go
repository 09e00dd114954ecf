package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/akarpov87/snakepit/internal/agent"
	"github.com/akarpov87/snakepit/internal/config"
	"github.com/akarpov87/snakepit/internal/engine"
	"github.com/akarpov87/snakepit/internal/leaderboard"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snakepit/host_key.
	HostKeyPath string

	// DBPath is the path to the leaderboard database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.snakepit/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that serves matches to remote players.
type SSHServer struct {
	config SSHServerConfig
	appCfg config.Config
	server *ssh.Server
	store  *leaderboard.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, appCfg config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakepit-ssh",
	})

	store, err := leaderboard.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open leaderboard database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		appCfg: appCfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snakepit", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(s.store, s.appCfg, sshSession.User(), pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionState tracks which screen an SSH session is showing.
type sessionState int

const (
	stateMenu sessionState = iota
	stateMatch
	stateScores
	stateBench
)

// SessionModel manages the full session flow: menu -> match -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store     *leaderboard.Store
	appCfg    config.Config
	username  string
	width     int
	height    int
	state     sessionState
	menu      MenuModel
	match     *Model
	scores    *ScoreboardModel
	benchView string
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *leaderboard.Store, appCfg config.Config, username string, width, height int) SessionModel {
	return SessionModel{
		store:    store,
		appCfg:   appCfg,
		username: username,
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case stateMatch:
		return m.updateMatch(msg)
	case stateScores:
		return m.updateScores(msg)
	case stateBench:
		return m.updateBench(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Choice() {
	case ChoicePlay:
		eng := engine.New(engine.Config{
			BoardSize:        m.appCfg.Board.Size,
			StepBudgetFactor: m.appCfg.Board.StepBudgetFactor,
			Player:           engine.Human,
			Rewards: engine.Rewards{
				Move:     m.appCfg.Rewards.Move,
				GameOver: m.appCfg.Rewards.GameOver,
			},
		})
		match := NewModel(eng, m.store, m.appCfg, MatchOptions{
			Preset:     m.menu.Preset(),
			PlayerName: m.username,
			ScreenW:    m.width,
			ScreenH:    m.height,
		})
		m.match = &match
		m.state = stateMatch
		return m, m.match.Init()

	case ChoiceBenchmark:
		m.benchView = m.runBenchmark()
		m.state = stateBench
		return m, nil

	case ChoiceLeaderboard:
		scores := NewScoreboardModel(m.store, m.width, m.height)
		m.scores = &scores
		m.state = stateScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateMatch handles updates while a match is running.
func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.match.Update(msg)
	if matchModel, ok := newModel.(Model); ok {
		m.match = &matchModel
	}

	if m.match.BackToMenu() {
		return m.backToMenu()
	}
	if m.match.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is showing.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scoresModel
	}

	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateBench waits for a key press to return to the menu.
func (m SessionModel) updateBench(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" || keyMsg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.backToMenu()
	}
	return m, nil
}

// backToMenu resets the session to a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.match = nil
	m.scores = nil
	m.benchView = ""
	m.menu = NewMenuModel(m.width, m.height)
	return m, m.menu.Init()
}

// runBenchmark plays the configured number of greedy matches headless
// and formats a summary.
func (m SessionModel) runBenchmark() string {
	eng := engine.New(engine.Config{
		BoardSize:        m.appCfg.Board.Size,
		StepBudgetFactor: m.appCfg.Board.StepBudgetFactor,
		Player:           engine.Agent,
		Rewards: engine.Rewards{
			Move:     m.appCfg.Rewards.Move,
			GameOver: m.appCfg.Rewards.GameOver,
		},
	})

	runner := agent.NewRunner(eng, agent.Greedy{}, time.Now().UnixNano(), nil)
	summary, err := runner.Run(context.Background(), m.appCfg.Benchmark.Matches)
	if err != nil {
		return centerText(fmt.Sprintf("benchmark failed: %v", err), m.width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("BENCHMARK", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("policy: %s  matches: %d", summary.Policy, len(summary.Matches)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("mean score: %.2f  best: %d  total steps: %d", summary.MeanScore, summary.BestScore, summary.TotalSteps), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Press any key to return", m.width))
	return b.String()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateMatch:
		return m.match.View()
	case stateScores:
		return m.scores.View()
	case stateBench:
		return m.benchView
	default:
		return m.menu.View()
	}
}
