package apifootball

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/namousaymane/KooraGoal/internal/domain/stats"
)

// MapStatistics merges the two per-team stat blocks into display rows.
// Rows are matched by stat type and ordered by the home block; a type missing
// on one side counts as zero. Fewer than two blocks yields no rows.
func MapStatistics(raw json.RawMessage) ([]stats.Statistic, error) {
	items, err := decodeList[statisticsItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]stats.Statistic, 0)
	if len(items) < 2 {
		return out, nil
	}
	home, away := items[0].Statistics, items[1].Statistics

	awayByType := make(map[string]any, len(away))
	for _, e := range away {
		awayByType[e.Type] = e.Value
	}
	seen := make(map[string]bool, len(home))
	for _, e := range home {
		seen[e.Type] = true
		out = append(out, mergeStat(e.Type, e.Value, awayByType[e.Type]))
	}
	for _, e := range away {
		if !seen[e.Type] {
			out = append(out, mergeStat(e.Type, nil, e.Value))
		}
	}
	return out, nil
}

func mergeStat(label string, home, away any) stats.Statistic {
	s := stats.Statistic{
		Label: label,
		Home:  displayValue(home),
		Away:  displayValue(away),
	}
	if isPercentageStat(label) {
		s.HomeValue, s.AwayValue = percentSplit(numericValue(home), numericValue(away))
	} else {
		s.HomeValue, s.AwayValue = ratioSplit(numericValue(home), numericValue(away))
	}
	return s
}

// isPercentageStat reports whether the label is a share that already sums to 100 across teams.
func isPercentageStat(label string) bool {
	return strings.Contains(strings.ToLower(label), "possession")
}

// percentSplit reads both sides as shares of 100. When they do not add up
// (one side missing, rounding from upstream), they are rescaled so the bars sum to 1.
func percentSplit(home, away float64) (float64, float64) {
	total := home + away
	if total <= 0 {
		return 0.5, 0.5
	}
	if math.Abs(total-100) > 1 {
		return home / total, away / total
	}
	return home / 100, away / 100
}

func ratioSplit(home, away float64) (float64, float64) {
	total := home + away
	if total == 0 {
		return 0.5, 0.5
	}
	return home / total, away / total
}

func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "0"
	case string:
		if strings.TrimSpace(val) == "" {
			return "0"
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return "0"
	}
}

// numericValue coerces numbers and "55%" style strings; anything else is 0.
func numericValue(v any) float64 {
	switch val := v.(type) {
	case float64:
		if val < 0 {
			return 0
		}
		return val
	case string:
		trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "%"))
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}
