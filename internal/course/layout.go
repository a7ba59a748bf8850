package course

// Cell is one weekday/slot position of the viewed week.
type Cell struct {
	// Session is the top of the stack starting here, or the session whose
	// span continues through this slot. Nil for a free cell.
	Session *Session
	// Start is true when Session begins in this slot.
	Start bool
	// Stack holds every session starting here, top first. Nil for
	// continuation and free cells.
	Stack []*Session
}

// Layout is indexed [slot-1][weekday-1].
type Layout [][DaysPerWeek]Cell

// At returns the cell for a 1-based slot and weekday, or a free cell when out
// of range.
func (l Layout) At(slot, weekday int) Cell {
	if slot < 1 || slot > len(l) || weekday < 1 || weekday > DaysPerWeek {
		return Cell{}
	}
	return l[slot-1][weekday-1]
}

// BuildLayout places the sessions of one week on the slot table. conflicts
// returns the stack of a session; the first entry of a stack is drawn on top.
// Sessions starting outside the slot table are left out.
func BuildLayout(week []*Session, conflicts func(*Session) []*Session) Layout {
	layout := make(Layout, SlotCount())

	for _, s := range week {
		row, day := s.StartSlot-1, s.Weekday-1
		if row < 0 || row >= len(layout) || day < 0 || day >= DaysPerWeek {
			continue
		}
		if layout[row][day].Start {
			continue
		}
		stack := conflicts(s)
		if len(stack) == 0 {
			stack = []*Session{s}
		}
		layout[row][day] = Cell{Session: stack[0], Start: true, Stack: stack}
	}

	// spans never overwrite a starting cell
	for row := range layout {
		for day := range DaysPerWeek {
			cell := layout[row][day]
			if !cell.Start {
				continue
			}
			for next := row + 1; next < len(layout) && cell.Session.Covers(next+1); next++ {
				if layout[next][day].Session != nil {
					break
				}
				layout[next][day] = Cell{Session: cell.Session}
			}
		}
	}
	return layout
}

// Layout returns the viewed week placed on the slot table.
func (s *Store) Layout() Layout {
	return BuildLayout(s.WeekSessions(), s.ConflictsFor)
}
