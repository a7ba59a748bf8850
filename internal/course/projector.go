package course

// Grid counts sessions per [week][weekday][slot pair]. All indices are 0-based.
type Grid [][DaysPerWeek][SlotPairCount]int

// Count returns the cell value, or 0 when an index is out of range.
func (g Grid) Count(week, weekday, pair int) int {
	if week < 0 || week >= len(g) || weekday < 0 || weekday >= DaysPerWeek || pair < 0 || pair >= SlotPairCount {
		return 0
	}
	return g[week][weekday][pair]
}

// Weeks returns the number of weeks in the grid.
func (g Grid) Weeks() int {
	return len(g)
}

// WeekSessions returns the sessions active in the 0-based week index,
// preserving list order.
func WeekSessions(list []*Session, weekIndex int) []*Session {
	week := weekIndex + 1
	result := make([]*Session, 0, len(list))
	for _, s := range list {
		if s.ActiveIn(week) {
			result = append(result, s)
		}
	}
	return result
}

// OccupancyGrid builds a dense weekCount x 7 x SlotPairCount grid and counts,
// for every session and every active week, its start bucket, plus the next
// bucket when the session runs longer than two slots.
// Weeks, weekdays and buckets outside the grid are skipped.
func OccupancyGrid(list []*Session, weekCount int) Grid {
	grid := make(Grid, max(weekCount, 0))
	for _, s := range list {
		day := s.Weekday - 1
		if day < 0 || day >= DaysPerWeek {
			continue
		}
		pair := SlotPair(s.StartSlot)
		for _, w := range s.Weeks {
			if w < 1 || w > len(grid) {
				continue
			}
			cells := &grid[w-1][day]
			if pair >= 0 && pair < SlotPairCount {
				cells[pair]++
			}
			// some classes spill into the next slot pair
			if s.Duration > 2 && pair+1 >= 0 && pair+1 < SlotPairCount {
				cells[pair+1]++
			}
		}
	}
	return grid
}
