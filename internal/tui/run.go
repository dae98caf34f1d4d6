package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jlsnow301/payroll-app/internal/backend"
)

// Config holds everything the TUI needs to start.
type Config struct {
	Backend backend.Commander

	// Optional paths to load on startup, skipping the drop step.
	OrdersPath string
	HoursPath  string
}

// Run starts the interactive reconciler and blocks until it exits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Backend == nil {
		return fmt.Errorf("backend is required")
	}

	m := newModel(cfg.Backend)
	m.preloadOrders = cfg.OrdersPath
	m.preloadHours = cfg.HoursPath

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
