package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
)

const dayFormat = "Mon 02 Jan 2006"

func newWeeksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "List every custom week of a year",
		Long: `List the Saturday to Friday weeks of a custom year.

Week 1 starts on the Saturday on or before 1 January. Defaults to the custom
year containing today.`,
		Args: cobra.NoArgs,
		RunE: runWeeks,
	}
	cmd.Flags().IntP("year", "y", 0, "Custom year to list")
	return cmd
}

func runWeeks(cmd *cobra.Command, _ []string) error {
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year, _ = calendar.DateToCustomWeek(time.Now())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s%-18s%-18s\n", "Week", "Start", "End")
	fmt.Fprintln(out, strings.Repeat("-", 42))

	for n := 1; n <= calendar.WeeksInYear(year); n++ {
		w, ok := calendar.WeekDateRange(year, n)
		if !ok {
			return fmt.Errorf("year %d has no custom weeks", year)
		}
		fmt.Fprintf(out, "%-6d%-18s%-18s\n", w.Number, w.Start.Format(dayFormat), w.End.Format(dayFormat))
	}
	return nil
}

func newWeekOfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week-of",
		Short: "Show the custom week containing a date",
		Args:  cobra.NoArgs,
		RunE:  runWeekOf,
	}
	cmd.Flags().StringP("date", "d", "", "Date in YYYY-MM-DD format (default today)")
	return cmd
}

func runWeekOf(cmd *cobra.Command, _ []string) error {
	raw, _ := cmd.Flags().GetString("date")

	date := time.Now()
	if raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
		}
		date = parsed
	}

	w := calendar.WeekOf(date)
	fmt.Fprintf(cmd.OutOrStdout(), "%s is in custom year %d, %s\n", date.Format(time.DateOnly), w.Year, w.Label())
	return nil
}
