package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"almanac/internal/calendar"
	"almanac/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add <entry>",
	Short: "Add an event from quick-entry text and exit",
	Long: `Add an event without opening the TUI. The entry starts with an optional
date or date range and ends with the title:

  almanac add tomorrow Oil change
  almanac add 2026-03-20..2026-03-22 Ski trip
  almanac add next fri Pick up registration

With no recognizable date the event lands on today.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	entry, err := parser.NewEntryParser().Parse(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("could not parse entry: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}

	e := calendar.Event{
		Title: entry.Title,
		Start: calendar.FormatDate(entry.Start),
	}
	if !calendar.SameDay(entry.End, entry.Start) {
		e.End = calendar.FormatDate(entry.End)
	}

	saved, err := st.Add(e)
	if err != nil {
		return fmt.Errorf("could not save event: %w", err)
	}

	span := saved.Start
	if saved.End != "" {
		span += " to " + saved.End
	}
	fmt.Printf("Added %q on %s\n", saved.Title, span)
	return nil
}
