package commands

import (
	"fmt"
	"strconv"
	"time"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseDateFlag parses a --date value in YYYY-MM-DD form, defaulting
// to now when empty.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	return t, nil
}
