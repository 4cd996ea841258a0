package ingest

import (
	"bytes"
	"encoding/json"
)

// MatchDocument is one scraped match as produced upstream. The upstream
// contract is this JSON shape; where scrapers have emitted looser variants
// (bare player-name strings, team sheets as arrays) the types below absorb
// them at the decode boundary.
type MatchDocument struct {
	MatchURL   string    `json:"match_url"`
	MatchTitle string    `json:"match_title"`
	MatchInfo  MatchInfo `json:"match_info"`
	Playing11  PlayingXI `json:"playing_11"`
	Scorecard  []Innings `json:"scorecard"`
}

// MatchInfo carries the headline facts for a match
type MatchInfo struct {
	MatchTitle    string `json:"match_title"`
	Team1Name     string `json:"team1_name"`
	Team2Name     string `json:"team2_name"`
	Team1Score    string `json:"team1_score"`
	Team2Score    string `json:"team2_score"`
	Winner        string `json:"winner"`
	Result        string `json:"result"`
	PlayerOfMatch string `json:"player_of_match"`
	Venue         string `json:"venue"`
}

// PlayingXI lists both teams' line-ups
type PlayingXI struct {
	Team1 TeamSheet `json:"team1"`
	Team2 TeamSheet `json:"team2"`
}

// TeamSheet is one team's fielded players. Scrapers emit either the object
// form {"players": [...]} or a bare array of player entries; both decode to
// the same slice.
type TeamSheet struct {
	Players []PlayerEntry `json:"players"`
}

// UnmarshalJSON accepts both the object and bare-array sheet shapes
func (t *TeamSheet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &t.Players)
	}

	type sheet TeamSheet // avoid recursing into this method
	var s sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t.Players = s.Players
	return nil
}

// PlayerEntry is a tagged variant: either a plain name string or a
// {name, designation} record. Both resolve to a uniform (name, designation)
// pair here so the loader never branches on the wire shape. The designation
// defaults to "Player".
type PlayerEntry struct {
	Name        string
	Designation string
}

// UnmarshalJSON accepts both player entry shapes
func (p *PlayerEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &p.Name); err != nil {
			return err
		}
		p.Designation = "Player"
		return nil
	}

	var rec struct {
		Name        string `json:"name"`
		Designation string `json:"designation"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	p.Name = rec.Name
	p.Designation = rec.Designation
	if p.Designation == "" {
		p.Designation = "Player"
	}
	return nil
}

// Innings is one innings of the scorecard, in play order
type Innings struct {
	Batting []BattingEntry `json:"batting"`
	Bowling []BowlingEntry `json:"bowling"`
}

// BattingEntry is one scorecard batting line. Stat fields stay loosely typed
// (numbers or numeric strings in the wild) and go through the coercion
// helpers; fours, sixes and strike rate have short-form aliases.
type BattingEntry struct {
	Batsman       string `json:"batsman"`
	Player        string `json:"player"`
	Runs          any    `json:"runs"`
	Balls         any    `json:"balls"`
	Fours         any    `json:"fours"`
	FoursAlt      any    `json:"4s"`
	Sixes         any    `json:"sixes"`
	SixesAlt      any    `json:"6s"`
	StrikeRate    any    `json:"strike_rate"`
	StrikeRateAlt any    `json:"sr"`
	Dismissal     string `json:"dismissal"`
}

// PlayerName returns the batsman field, falling back to the player alias
func (b *BattingEntry) PlayerName() string {
	if b.Batsman != "" {
		return b.Batsman
	}
	return b.Player
}

// BowlingEntry is one scorecard bowling line
type BowlingEntry struct {
	Bowler  string `json:"bowler"`
	Player  string `json:"player"`
	Overs   any    `json:"overs"`
	Maidens any    `json:"maidens"`
	Runs    any    `json:"runs"`
	Wickets any    `json:"wickets"`
	Economy any    `json:"economy"`
}

// PlayerName returns the bowler field, falling back to the player alias
func (b *BowlingEntry) PlayerName() string {
	if b.Bowler != "" {
		return b.Bowler
	}
	return b.Player
}
