package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

const (
	StageGroup      = "Group"
	StageSemiFinal  = "Semi-Final"
	StageThirdPlace = "3rd Place"
	StageFinal      = "Final"
)

// Match is one scheduled or completed fixture of a tournament. Team sides
// reference normalized feed/CMS identifiers; a side whose participant is not
// known yet (bracket placeholder) carries an empty TeamID and keeps the
// symbolic display name from the schedule.
type Match struct {
	ID           string
	TournamentID string
	Stage        string
	Group        string
	MatchNumber  int
	HomeTeamID   string
	AwayTeamID   string
	HomeName     string
	AwayName     string
	KickoffUTC   time.Time
	HomeScore    *int
	AwayScore    *int
	Status       string
	WinnerTeamID string
	Penalties    bool
}

// HasBothTeams reports whether both sides reference a concrete team.
func (m Match) HasBothTeams() bool {
	return m.HomeTeamID != "" && m.AwayTeamID != ""
}

// IsDecided reports whether the match has finished with a declared winner.
func (m Match) IsDecided() bool {
	return IsFinishedStatus(m.Status) && m.WinnerTeamID != ""
}

// IsDraw reports whether the match finished without a declared winner.
func (m Match) IsDraw() bool {
	return IsFinishedStatus(m.Status) && m.WinnerTeamID == ""
}

// LoserTeamID is whichever side is not the declared winner; empty while the
// match is undecided.
func (m Match) LoserTeamID() string {
	if !m.IsDecided() {
		return ""
	}
	if m.WinnerTeamID == m.HomeTeamID {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "PLAYING", "IN_PLAY", "HT", "1H", "2H", "ET":
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT", "AET", "PEN", "FULLTIME", "RESULT", "PLAYED":
		return true
	default:
		return false
	}
}
