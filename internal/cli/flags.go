package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/spf13/pflag"
)

// addDateFlag registers the shared --date flag that pins the reference
// instant for a command run.
func addDateFlag(fs *pflag.FlagSet, value *string) {
	fs.StringVar(value, "date", "", "Reference date (YYYY-MM-DD, default today)")
}

// parseDateFlag turns a --date value into a pinned reference instant, or nil
// when the flag was left empty (wall clock applies at the edge).
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return &d, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

// parseWeekdaySet turns a comma-separated list like "mon,wed,fri" into a
// weekday set.
func parseWeekdaySet(value string) (map[time.Weekday]bool, error) {
	set := make(map[time.Weekday]bool)
	if value == "" {
		return set, nil
	}
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) > 3 {
			name = name[:3]
		}
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		set[wd] = true
	}
	return set, nil
}
