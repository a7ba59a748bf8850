package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/javiermolinar/timetable/internal/course"
)

// ParseWeeks parses a week expression such as "1-8,10,12" into sorted,
// distinct week numbers.
func ParseWeeks(expr string) ([]int, error) {
	var weeks []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		from, err := parseWeek(lo)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = parseWeek(hi); err != nil {
				return nil, err
			}
			if to < from {
				return nil, fmt.Errorf("week range %q is reversed", part)
			}
		}
		for w := from; w <= to; w++ {
			weeks = append(weeks, w)
		}
	}

	if len(weeks) == 0 {
		return nil, course.ErrNoWeeks
	}
	return course.NormalizeWeeks(weeks), nil
}

func parseWeek(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing week %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w, got %d", course.ErrInvalidWeek, n)
	}
	return n, nil
}
