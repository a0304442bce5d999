package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"almanac/internal/calendar"
)

type Config struct {
	// Data settings
	DataDir string

	// Display settings
	WeekStart  calendar.WeekStart
	DateFormat string

	// Reminder settings
	ReminderWindowDays int

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string

	// Behavior settings
	AutoRefresh   bool
	RefreshRate   time.Duration
	ConfirmDelete bool
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: "", // resolved by the store when empty

		WeekStart:  calendar.WeekStartMonday,
		DateFormat: "Jan 2, 2006",

		ReminderWindowDays: 30,

		// "default" leaves the element on the built-in style; rc-file
		// color lines replace these entries.
		Colors: map[string]string{
			"normal":   "default",
			"dim":      "default",
			"selected": "default",
			"today":    "default",
			"weekend":  "default",
			"header":   "default",
			"event":    "default",
			"reminder": "default",
			"help":     "default",
			"message":  "default",
		},

		KeyBindings: map[string]string{
			"quit":         "q",
			"help":         "?",
			"today":        "t",
			"refresh":      "r",
			"new_event":    "n",
			"edit_event":   "e",
			"delete_event": "d",
			"next_day":     "l",
			"prev_day":     "h",
			"next_week":    "j",
			"prev_week":    "k",
			"next_month":   "]",
			"prev_month":   "[",
		},

		AutoRefresh:   true,
		RefreshRate:   30 * time.Second,
		ConfirmDelete: true,
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config file locations
	configPaths := []string{
		os.Getenv("ALMANAC_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "almanac", "almanacrc"),
		filepath.Join(os.Getenv("HOME"), ".config", "almanac", "almanacrc"),
		filepath.Join(os.Getenv("HOME"), ".almanacrc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

// LoadConfigFile loads a specific config file over the defaults.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.loadFromFile(path); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// Handle set commands: set variable value
	setRe := regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// Handle bind commands: bind key action
	bindRe := regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[2]] = matches[1]
		return nil
	}

	// Handle color commands: color element color_spec
	colorRe := regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "data_dir":
		if strings.HasPrefix(value, "~/") {
			home, _ := os.UserHomeDir()
			value = filepath.Join(home, value[2:])
		}
		c.DataDir = value

	case "week_start_day":
		switch strings.ToLower(value) {
		case "sunday", "sun", "0":
			c.WeekStart = calendar.WeekStartSunday
		case "monday", "mon", "1":
			c.WeekStart = calendar.WeekStartMonday
		default:
			return fmt.Errorf("invalid week_start_day: %s", value)
		}

	case "date_format":
		c.DateFormat = value

	case "reminder_window":
		days, err := strconv.Atoi(value)
		if err != nil || days < 1 {
			return fmt.Errorf("invalid reminder_window: %s", value)
		}
		c.ReminderWindowDays = days

	case "auto_refresh":
		c.AutoRefresh = strings.ToLower(value) == "true" || value == "1"

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		c.RefreshRate = rate

	case "confirm_delete":
		c.ConfirmDelete = strings.ToLower(value) == "true" || value == "1"

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// ReminderWindow converts the configured day count into a duration.
func (c *Config) ReminderWindow() time.Duration {
	return time.Duration(c.ReminderWindowDays) * 24 * time.Hour
}
