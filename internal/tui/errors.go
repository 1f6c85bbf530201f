// Notifications shown above the status bar
package tui

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// maxNotifications bounds the stack; the oldest entry is dropped first
const maxNotifications = 3

// Notification is a user-facing problem such as a rejected colour or a
// config file that failed to load
type Notification struct {
	Title       string // Brief title (e.g., "Config Error")
	Message     string // Detailed message
	Severity    Severity
	Suggestion  string // What user should do
	Dismissible bool
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// NotificationList is a small bounded stack of notifications
type NotificationList struct {
	notifications []Notification
}

// Add pushes a notification, evicting the oldest dismissible one when full
func (l *NotificationList) Add(n Notification) {
	if len(l.notifications) >= maxNotifications {
		for i, existing := range l.notifications {
			if existing.Dismissible {
				l.notifications = append(l.notifications[:i], l.notifications[i+1:]...)
				break
			}
		}
	}
	l.notifications = append(l.notifications, n)
}

// AddError adds a notification built from its parts
func (l *NotificationList) AddError(title string, err error, suggestion string, severity Severity) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	l.Add(Notification{
		Title:       title,
		Message:     message,
		Severity:    severity,
		Suggestion:  suggestion,
		Dismissible: severity != SeverityCritical,
	})
}

// Dismiss removes the newest dismissible notification and reports whether
// one was removed
func (l *NotificationList) Dismiss() bool {
	for i := len(l.notifications) - 1; i >= 0; i-- {
		if l.notifications[i].Dismissible {
			l.notifications = append(l.notifications[:i], l.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// HasCritical returns true if there are critical notifications
func (l *NotificationList) HasCritical() bool {
	for _, n := range l.notifications {
		if n.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Count returns the number of notifications
func (l *NotificationList) Count() int {
	return len(l.notifications)
}

// All returns a copy of the notifications, oldest first
func (l *NotificationList) All() []Notification {
	out := make([]Notification, len(l.notifications))
	copy(out, l.notifications)
	return out
}

// Render renders all notifications, newest last
func (l *NotificationList) Render(width int) string {
	if len(l.notifications) == 0 {
		return ""
	}

	sections := make([]string, 0, len(l.notifications))
	for _, n := range l.notifications {
		sections = append(sections, renderNotification(n, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderNotification(n Notification, width int) string {
	var (
		icon   string
		accent lipgloss.Color
	)

	switch n.Severity {
	case SeverityInfo:
		icon, accent = "ℹ", theme.ColorSecondary
	case SeverityWarning:
		icon, accent = "⚠", theme.ColorWarning
	case SeverityError:
		icon, accent = "✗", theme.ColorError
	default:
		icon, accent = "🛑", theme.ColorError
	}

	titleStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	if n.Severity == SeverityCritical {
		titleStyle = titleStyle.Underline(true)
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", icon, n.Title)))
	if n.Message != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Foreground(theme.ColorText).Render(n.Message))
	}
	if n.Suggestion != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().
			Foreground(theme.ColorMuted).
			Italic(true).
			Render("→ " + n.Suggestion))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 4)
	}

	return box.Render(content.String())
}
