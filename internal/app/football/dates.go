package football

import (
	"github.com/namousaymane/KooraGoal/internal/domain/matches"
	"github.com/namousaymane/KooraGoal/internal/timeutil"
)

// stripRadius is how many days the picker shows on each side of today.
const stripRadius = 3

// TodayLabel replaces the weekday of the current day in the date strip.
const TodayLabel = "Today"

// DateStrip returns the seven days around today for the matches screen picker.
func (s *Service) DateStrip() []matches.Day {
	start := timeutil.StartOfDay(s.now(), s.loc)
	out := make([]matches.Day, 0, 2*stripRadius+1)
	for offset := -stripRadius; offset <= stripRadius; offset++ {
		d := start.AddDate(0, 0, offset)
		day := matches.Day{
			Weekday: d.Format("Mon"),
			Label:   d.Format(timeutil.DayMonthLayout),
			Value:   timeutil.FormatDate(d),
		}
		if offset == 0 {
			day.Weekday = TodayLabel
			day.Active = true
		}
		out = append(out, day)
	}
	return out
}

func (s *Service) today() string {
	return timeutil.FormatDate(s.now().In(s.loc))
}

// resolveDate returns date when it is a valid YYYY-MM-DD, today otherwise.
func (s *Service) resolveDate(date string) string {
	if _, err := timeutil.ParseDate(date); err != nil {
		return s.today()
	}
	return date
}
