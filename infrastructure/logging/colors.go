package logging

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap/zapcore"

	"lingua-proxy/infrastructure/config"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9"))
)

// useColor reports whether console output should be colorized: config allows
// it and stdout is a terminal.
func useColor(cfg *config.Logging) bool {
	if !cfg.GetColorize() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorLevelEncoder renders the level name through its lipgloss style.
func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	name := l.CapitalString()
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString(debugStyle.Render(name))
	case zapcore.InfoLevel:
		enc.AppendString(infoStyle.Render(name))
	case zapcore.WarnLevel:
		enc.AppendString(warnStyle.Render(name))
	default:
		enc.AppendString(errorStyle.Render(name))
	}
}
