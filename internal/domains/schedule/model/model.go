package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	EntityName = "slot"

	FieldDate = "date"
	FieldTime = "time"

	slotValueLayout = "%02d:00"
)

var (
	ErrInvalidHours   = errors.New("business hours must satisfy 0 <= start < end <= 24")
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
)

// Hours is a half-open interval [Start, End) of whole hours.
type Hours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (h Hours) Validate() error {
	if h.Start < 0 || h.End > 24 || h.Start >= h.End {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidHours, h.Start, h.End)
	}

	return nil
}

// BusinessHours maps a weekday to its opening hours. A missing weekday is closed.
type BusinessHours map[time.Weekday]Hours

// DefaultBusinessHours is Monday to Friday 9-18 and Saturday 9-17.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		time.Monday:    {Start: 9, End: 18},
		time.Tuesday:   {Start: 9, End: 18},
		time.Wednesday: {Start: 9, End: 18},
		time.Thursday:  {Start: 9, End: 18},
		time.Friday:    {Start: 9, End: 18},
		time.Saturday:  {Start: 9, End: 17},
	}
}

func (b BusinessHours) Validate() error {
	for weekday, hours := range b {
		if weekday < time.Sunday || weekday > time.Saturday {
			return fmt.Errorf("%w: got %d", ErrInvalidWeekday, weekday)
		}

		if err := hours.Validate(); err != nil {
			return fmt.Errorf("%s: %w", weekday, err)
		}
	}

	return nil
}

// String renders the table in the format accepted by ParseBusinessHours.
func (b BusinessHours) String() string {
	weekdays := make([]int, 0, len(b))
	for weekday := range b {
		weekdays = append(weekdays, int(weekday))
	}

	sort.Ints(weekdays)

	parts := make([]string, 0, len(weekdays))
	for _, weekday := range weekdays {
		hours := b[time.Weekday(weekday)]
		parts = append(parts, fmt.Sprintf("%d=%d-%d", weekday, hours.Start, hours.End))
	}

	return strings.Join(parts, ",")
}

// ParseBusinessHours reads a table such as "1=9-18,2=9-18,6=9-17".
// An empty value yields DefaultBusinessHours.
func ParseBusinessHours(value string) (BusinessHours, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultBusinessHours(), nil
	}

	hours := BusinessHours{}

	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		day, span, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("malformed business hours entry %q", entry)
		}

		weekday, err := strconv.Atoi(strings.TrimSpace(day))
		if err != nil {
			return nil, fmt.Errorf("malformed weekday in %q: %w", entry, err)
		}

		start, end, ok := strings.Cut(span, "-")
		if !ok {
			return nil, fmt.Errorf("malformed hour range in %q", entry)
		}

		startHour, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("malformed start hour in %q: %w", entry, err)
		}

		endHour, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("malformed end hour in %q: %w", entry, err)
		}

		hours[time.Weekday(weekday)] = Hours{Start: startHour, End: endHour}
	}

	if err := hours.Validate(); err != nil {
		return nil, err
	}

	return hours, nil
}

// Slot is one bookable hour. Value is the submitted form value, Label is what the client sees.
type Slot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func NewSlot(hour int) Slot {
	return Slot{
		Value: fmt.Sprintf(slotValueLayout, hour),
		Label: HourLabel(hour),
	}
}

// HourLabel renders a 12-hour clock label. Midnight stays "0:00 AM".
func HourLabel(hour int) string {
	switch {
	case hour == 12:
		return "12:00 PM"
	case hour > 12:
		return fmt.Sprintf("%d:00 PM", hour-12)
	default:
		return fmt.Sprintf("%d:00 AM", hour)
	}
}

// DeriveSlots lists the hourly slots for the weekday of date. Closed days yield an empty slice.
func DeriveSlots(date time.Time, hours BusinessHours) []Slot {
	open, ok := hours[date.Weekday()]
	if !ok {
		return []Slot{}
	}

	slots := make([]Slot, 0, max(0, open.End-open.Start))
	for hour := open.Start; hour < open.End; hour++ {
		slots = append(slots, NewSlot(hour))
	}

	return slots
}
