package domain

import "time"

// BookingHorizon is how far ahead appointments may be requested.
const BookingHorizon = 28 * 24 * time.Hour

// DailySlots is the fixed slot grid offered by every provider.
var DailySlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM",
}

const slotLayout = "3:04 PM"

// AvailableSlots lists the open slots for date as seen at now.
// Past dates and dates beyond the horizon have none; today only keeps slots still ahead.
func AvailableSlots(date, now time.Time) []string {
	loc := now.Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if day.Before(today) || day.After(today.Add(BookingHorizon)) {
		return nil
	}

	out := make([]string, 0, len(DailySlots))
	for _, s := range DailySlots {
		if day.Equal(today) {
			t, err := time.ParseInLocation(slotLayout, s, loc)
			if err != nil {
				continue
			}
			at := day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
			if !at.After(now) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
