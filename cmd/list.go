package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"almanac/internal/calendar"
	"almanac/internal/reminders"
	"almanac/internal/store"
)

var listMonth string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a month's events and upcoming reminders, then exit",
	Long: `List all events for a month in a simple text format, followed by
warranties expiring and maintenance coming due within the reminder window.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listMonth, "month", "m", "", "Month to list, as YYYY-MM (default: current month)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	st, err := openStore()
	if err != nil {
		return err
	}

	anchor := calendar.Noon(time.Now())
	if listMonth != "" {
		parsed, err := time.ParseInLocation("2006-01", listMonth, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM: %w", listMonth, err)
		}
		anchor = calendar.Noon(parsed)
	}

	first := calendar.Noon(time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.Local))
	last := first.AddDate(0, 1, -1)

	var src store.Source = st

	fmt.Printf("Events for %s:\n", anchor.Format("January 2006"))
	events := src.Range(first, last)
	if len(events) == 0 {
		fmt.Println("  No events found.")
	}
	for _, e := range events {
		span := e.Start
		if e.End != "" && e.End != e.Start {
			span += " to " + e.End
		}
		fmt.Printf("  %s - %s\n", span, e.Title)
		if e.Notes != "" {
			fmt.Printf("    %s\n", e.Notes)
		}
	}

	now := calendar.Noon(time.Now())
	window := cfg.ReminderWindow()
	assets := st.Assets()

	printItems := func(heading string, items []reminders.Item) {
		fmt.Printf("\n%s (next %d days):\n", heading, cfg.ReminderWindowDays)
		if len(items) == 0 {
			fmt.Println("  None.")
			return
		}
		for _, it := range items {
			fmt.Printf("  %s - %s: %s\n", calendar.FormatDate(it.Due), it.AssetLabel, it.Type)
		}
	}

	printItems("Expiring warranties", reminders.ExpiringWarranties(assets, now, window))
	printItems("Upcoming maintenance", reminders.UpcomingMaintenance(assets, now, window))

	return nil
}
