package nbastats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/prop-edge/internal/models"
)

// toGameLog converts a raw stat row into a game log. Rows with zero minutes
// are kept: DNPs still belong in the window so rolling averages reflect them.
func (r *statRow) toGameLog() (*models.PlayerGameLog, error) {
	minutes, err := parseMinutes(r.Min)
	if err != nil {
		return nil, fmt.Errorf("player %d game %d: %w", r.Player.ID, r.Game.ID, err)
	}

	gameDate, err := parseGameDate(r.Game.Date)
	if err != nil {
		return nil, fmt.Errorf("player %d game %d: %w", r.Player.ID, r.Game.ID, err)
	}

	return &models.PlayerGameLog{
		PlayerID:           r.Player.ID,
		PlayerName:         r.Player.FirstName + " " + r.Player.LastName,
		TeamAbbr:           r.Team.Abbreviation,
		GameID:             strconv.FormatInt(r.Game.ID, 10),
		GameDate:           gameDate,
		Home:               r.Team.ID == r.Game.HomeTeamID,
		Minutes:            minutes,
		Points:             r.Pts,
		Assists:            r.Ast,
		Rebounds:           r.Reb,
		FieldGoalAttempts:  r.FGA,
		FreeThrowAttempts:  r.FTA,
		ThreePointAttempts: r.FG3A,
		Turnovers:          r.TOV,
	}, nil
}

// parseMinutes handles the feed's three minute formats: "", "34", "34:25"
func parseMinutes(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	if mins, secs, found := strings.Cut(raw, ":"); found {
		m, err := strconv.ParseFloat(mins, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes %q", raw)
		}
		s, err := strconv.ParseFloat(secs, 64)
		if err != nil || s < 0 || s >= 60 {
			return 0, fmt.Errorf("invalid minutes %q", raw)
		}
		return m + s/60, nil
	}

	m, err := strconv.ParseFloat(raw, 64)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("invalid minutes %q", raw)
	}
	return m, nil
}

// parseGameDate handles both date-only and RFC 3339 game dates
func parseGameDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid game date %q", raw)
}
