package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"outgo/internal/config"
	"outgo/internal/storage"
)

// dateLayout is the calendar-date format accepted on the command line.
const dateLayout = "2006-01-02"

// initStorage opens the shared store handle with proper path expansion.
// The handle is opened and migrated once per process; every command that
// needs storage joins the same open.
func initStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/outgo/outgo.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	return storage.Shared(ctx, dbPath)
}

// currencySymbol returns the configured display currency symbol.
func currencySymbol() string {
	if symbol := viper.GetString("display.currency"); symbol != "" {
		return symbol
	}
	return "$"
}

// parseDate parses a calendar date argument. Dates are interpreted in UTC;
// time of day carries no meaning beyond range boundaries.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s)", value, dateLayout)
	}
	return t, nil
}

// parseID parses a positional expense id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid expense id %q", arg)
	}
	return id, nil
}

// resolveRange turns --from/--to/--period flags into a concrete date range.
// An explicit from/to pair wins; otherwise the period anchors to today the
// same way the original timeframe selector did (week starts on Sunday,
// month on the 1st).
func resolveRange(from, to, period string) (time.Time, time.Time, error) {
	if from != "" || to != "" {
		if from == "" || to == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be used together")
		}
		start, err := parseDate(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := parseDate(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case "day":
		return today, today, nil
	case "week":
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return start, today, nil
	case "month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, today, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q (expected day, week, or month)", period)
	}
}
