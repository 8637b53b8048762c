package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
)

const dbTimeout = 5 * time.Second

var (
	accentColor = lipgloss.Color("205")
	errorColor  = lipgloss.Color("196")
	okColor     = lipgloss.Color("46")
	borderColor = lipgloss.Color("240")
)

// FormatMoney formats an amount the way the quotation PDF does.
func FormatMoney(v float64) string {
	return document.Money(v)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for store operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(accentColor).Render(s)
}

func errorStyle(s string) string {
	return lipgloss.NewStyle().Foreground(errorColor).Render(s)
}
