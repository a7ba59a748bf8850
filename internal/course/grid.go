package course

// DaysPerWeek is the length of the weekday cycle.
const DaysPerWeek = 7

// SlotPairCount is the number of coarse occupancy buckets per day.
// Each bucket groups two consecutive slots (1-2, 3-4, ...).
const SlotPairCount = 5

// SlotTime is the clock range of one numbered slot, in "HH:MM" format.
type SlotTime struct {
	Start string
	End   string
}

// WeekdayLabels holds the display names of the weekday cycle.
// Index 0 is weekday 1.
var WeekdayLabels = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// SlotTimes is the ordered daily slot table. Slot n is SlotTimes[n-1].
var SlotTimes = []SlotTime{
	{Start: "08:15", End: "09:00"}, {Start: "09:10", End: "09:55"},
	{Start: "10:10", End: "10:55"}, {Start: "11:05", End: "11:50"},
	{Start: "14:30", End: "15:15"}, {Start: "15:25", End: "16:10"},
	{Start: "16:20", End: "17:05"}, {Start: "17:15", End: "18:00"},
	{Start: "18:10", End: "18:55"}, {Start: "19:30", End: "20:15"},
	{Start: "20:25", End: "21:10"}, {Start: "21:20", End: "22:05"},
}

// SlotCount returns the number of slots in the daily table.
func SlotCount() int {
	return len(SlotTimes)
}

// SlotAt returns the clock range of the 1-based slot n.
func SlotAt(n int) (SlotTime, bool) {
	if n < 1 || n > len(SlotTimes) {
		return SlotTime{}, false
	}
	return SlotTimes[n-1], true
}

// WeekdayLabel returns the label of the 1-based weekday, or "" if out of range.
func WeekdayLabel(weekday int) string {
	if weekday < 1 || weekday > DaysPerWeek {
		return ""
	}
	return WeekdayLabels[weekday-1]
}

// SlotForClock returns the 1-based slot a class starting at clock belongs to:
// the last slot whose start is at or before clock. Returns 0 when clock is
// before the first slot or malformed.
func SlotForClock(clock string) int {
	if len(clock) < 5 {
		return 0
	}
	m := TimeToMinutes(clock)
	slot := 0
	for i, st := range SlotTimes {
		if TimeToMinutes(st.Start) <= m {
			slot = i + 1
		}
	}
	return slot
}

// SlotsSpanned counts the slots whose range overlaps [start, end).
// At least 1 is returned so a class always occupies its start slot.
func SlotsSpanned(start, end string) int {
	n := 0
	for _, st := range SlotTimes {
		if TimesOverlap(start, end, st.Start, st.End) {
			n++
		}
	}
	return max(n, 1)
}

// SlotPair returns the occupancy bucket of a 1-based slot.
func SlotPair(slot int) int {
	return (slot - 1) / 2
}
