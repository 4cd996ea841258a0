package ingest

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
)

var (
	// scorePattern matches "254/6 (50.0 Ov)" and close variants. The overs
	// token is optional; the "Ov" marker is not.
	scorePattern = regexp.MustCompile(`(\d+)/(\d+)\s*\(?([\d.]+)?\s*[Oo]v\)?`)

	// bareRunsPattern is the fallback for score strings that carry only a
	// run total, like "180".
	bareRunsPattern = regexp.MustCompile(`\d+`)
)

// ParsedScore is the structured form of a free-text score string. A field is
// absent when the text carried no such token.
type ParsedScore struct {
	Runs    sql.NullInt64
	Wickets sql.NullInt64
	Overs   sql.NullFloat64
}

// ParseScore extracts (runs, wickets, overs) from a scraped score string.
// Unparseable text yields all-absent, never an error.
func ParseScore(text string) ParsedScore {
	if text == "" {
		return ParsedScore{}
	}

	if m := scorePattern.FindStringSubmatch(text); m != nil {
		runs, _ := strconv.ParseInt(m[1], 10, 64)
		wickets, _ := strconv.ParseInt(m[2], 10, 64)
		score := ParsedScore{
			Runs:    sql.NullInt64{Int64: runs, Valid: true},
			Wickets: sql.NullInt64{Int64: wickets, Valid: true},
		}
		if m[3] != "" {
			if overs, err := strconv.ParseFloat(m[3], 64); err == nil {
				score.Overs = sql.NullFloat64{Float64: overs, Valid: true}
			}
		}
		return score
	}

	if m := bareRunsPattern.FindString(text); m != "" {
		if runs, err := strconv.ParseInt(m, 10, 64); err == nil {
			return ParsedScore{Runs: sql.NullInt64{Int64: runs, Valid: true}}
		}
	}

	return ParsedScore{}
}

// BattingStats are the coerced figures for one batting entry
type BattingStats struct {
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
	IsNotOut   bool
	Dismissal  string
}

// ParseBattingStats coerces one batting entry, honoring the short-form field
// aliases (4s, 6s, sr) some scorecards use. The not-out flag is derived from
// the dismissal text; no dismissal text means out.
func ParseBattingStats(entry *BattingEntry) BattingStats {
	return BattingStats{
		Runs:       ToInt(entry.Runs),
		Balls:      ToInt(entry.Balls),
		Fours:      ToInt(firstValue(entry.Fours, entry.FoursAlt)),
		Sixes:      ToInt(firstValue(entry.Sixes, entry.SixesAlt)),
		StrikeRate: ToFloat(firstValue(entry.StrikeRate, entry.StrikeRateAlt)),
		IsNotOut:   strings.Contains(strings.ToLower(entry.Dismissal), "not out"),
		Dismissal:  entry.Dismissal,
	}
}

// BowlingStats are the coerced figures for one bowling entry
type BowlingStats struct {
	Overs        float64
	Maidens      int
	RunsConceded int
	Wickets      int
	Economy      float64
}

// ParseBowlingStats coerces one bowling entry
func ParseBowlingStats(entry *BowlingEntry) BowlingStats {
	return BowlingStats{
		Overs:        ToFloat(entry.Overs),
		Maidens:      ToInt(entry.Maidens),
		RunsConceded: ToInt(entry.Runs),
		Wickets:      ToInt(entry.Wickets),
		Economy:      ToFloat(entry.Economy),
	}
}

func firstValue(v, alias any) any {
	if v != nil {
		return v
	}
	return alias
}
