package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Weekend  lipgloss.Style
	Header   lipgloss.Style
	Event    lipgloss.Style
	Reminder lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Border   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("26")),
		Reminder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// StylesFromConfig overlays rc-file color specs onto the defaults. A spec is
// space-separated words: "bold", "underline", and "reverse" toggle
// attributes; the first color word sets the foreground and a second one the
// background. Colors are ANSI names, 256-palette numbers, or hex values.
// "default" keeps the built-in style for that element.
func StylesFromConfig(colors map[string]string) Styles {
	s := DefaultStyles()

	targets := map[string]*lipgloss.Style{
		"normal":   &s.Normal,
		"dim":      &s.Dim,
		"selected": &s.Selected,
		"today":    &s.Today,
		"weekend":  &s.Weekend,
		"header":   &s.Header,
		"event":    &s.Event,
		"reminder": &s.Reminder,
		"help":     &s.Help,
		"message":  &s.Message,
	}

	for element, spec := range colors {
		target, ok := targets[element]
		if !ok || spec == "" || spec == "default" {
			continue
		}
		*target = applyColorSpec(*target, spec)
	}

	return s
}

func applyColorSpec(base lipgloss.Style, spec string) lipgloss.Style {
	sawForeground := false
	for _, word := range strings.Fields(strings.ToLower(spec)) {
		switch word {
		case "bold":
			base = base.Bold(true)
			continue
		case "underline":
			base = base.Underline(true)
			continue
		case "reverse":
			base = base.Reverse(true)
			continue
		}

		color, ok := parseColor(word)
		if !ok {
			continue
		}
		if sawForeground {
			base = base.Background(color)
		} else {
			base = base.Foreground(color)
			sawForeground = true
		}
	}
	return base
}

func parseColor(word string) (lipgloss.Color, bool) {
	if code, ok := namedColors[word]; ok {
		return lipgloss.Color(code), true
	}
	if _, err := strconv.Atoi(word); err == nil {
		return lipgloss.Color(word), true
	}
	if strings.HasPrefix(word, "#") {
		return lipgloss.Color(word), true
	}
	return lipgloss.Color(""), false
}
