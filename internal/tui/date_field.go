package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	tea "github.com/charmbracelet/bubbletea"
)

// setTime initializes the date field; typing starts on the day segment.
func (d *dateField) setTime(t time.Time) {
	d.year = t.Year()
	d.month = int(t.Month())
	d.day = t.Day()
	d.segment = dateSegmentDay
	d.buffer = ""
}

// String formats the date the way the ledger parses it.
func (d dateField) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d dateField) time() time.Time {
	t, err := core.ParseDate(d.String())
	if err != nil {
		return time.Time{}
	}
	return t
}

// display returns the date with the focused segment bracketed
func (d dateField) display(focused bool) string {
	parts := strings.Split(d.String(), "-")
	if focused {
		parts[d.segment] = "[" + parts[d.segment] + "]"
	}
	return strings.Join(parts, "-")
}

func (d *dateField) segmentLeft() {
	d.buffer = ""
	if d.segment > dateSegmentYear {
		d.segment--
	}
}

func (d *dateField) segmentRight() {
	d.buffer = ""
	if d.segment < dateSegmentDay {
		d.segment++
	}
}

// increment adjusts the focused segment by delta, rolling months and days
// over into the next larger unit.
func (d *dateField) increment(delta int) {
	switch d.segment {
	case dateSegmentYear:
		d.year += delta
	case dateSegmentMonth:
		d.month += delta
		if d.month < 1 {
			d.month = 12
			d.year--
		} else if d.month > 12 {
			d.month = 1
			d.year++
		}
	case dateSegmentDay:
		t := d.time()
		if t.IsZero() {
			t = time.Now().UTC()
		}
		t = t.AddDate(0, 0, delta)
		d.year = t.Year()
		d.month = int(t.Month())
		d.day = t.Day()
	}
	d.ensureDayInMonth()
}

// handleDigit types into the focused segment. Month and day jump to the
// next segment once two digits are in.
func (d *dateField) handleDigit(r rune) {
	if r < '0' || r > '9' {
		return
	}
	d.buffer += string(r)
	switch d.segment {
	case dateSegmentYear:
		if len(d.buffer) > 4 {
			d.buffer = d.buffer[len(d.buffer)-4:]
		}
		if val, err := strconv.Atoi(d.buffer); err == nil {
			d.year = val
		}
	case dateSegmentMonth:
		if len(d.buffer) > 2 {
			d.buffer = d.buffer[len(d.buffer)-2:]
		}
		if val, err := strconv.Atoi(d.buffer); err == nil {
			d.month = min(max(val, 1), 12)
		}
		if len(d.buffer) >= 2 {
			d.segmentRight()
		}
	case dateSegmentDay:
		if len(d.buffer) > 2 {
			d.buffer = d.buffer[len(d.buffer)-2:]
		}
		if val, err := strconv.Atoi(d.buffer); err == nil {
			d.day = min(max(val, 1), daysInMonth(d.year, d.month))
		}
		if len(d.buffer) >= 2 {
			d.buffer = ""
		}
	}
	d.ensureDayInMonth()
}

func (d *dateField) ensureDayInMonth() {
	d.day = min(max(d.day, 1), daysInMonth(d.year, d.month))
}

func daysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 31
	}
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 1, -1).Day()
}

// handleDateKey reports whether the key was consumed by the date field.
func (m *Model) handleDateKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left":
		m.form.date.segmentLeft()
		return true
	case "right":
		m.form.date.segmentRight()
		return true
	case "up":
		m.form.date.increment(1)
		return true
	case "down":
		m.form.date.increment(-1)
		return true
	}
	if len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '0' && r <= '9' {
			m.form.date.handleDigit(r)
			return true
		}
	}
	return false
}
