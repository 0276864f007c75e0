package features

import "strings"

// teamAbbreviations maps bookmaker event team names to the abbreviations
// used by the stats feed
var teamAbbreviations = map[string]string{
	"Atlanta Hawks":          "ATL",
	"Boston Celtics":         "BOS",
	"Brooklyn Nets":          "BKN",
	"Charlotte Hornets":      "CHA",
	"Chicago Bulls":          "CHI",
	"Cleveland Cavaliers":    "CLE",
	"Dallas Mavericks":       "DAL",
	"Denver Nuggets":         "DEN",
	"Detroit Pistons":        "DET",
	"Golden State Warriors":  "GSW",
	"Houston Rockets":        "HOU",
	"Indiana Pacers":         "IND",
	"Los Angeles Clippers":   "LAC",
	"LA Clippers":            "LAC",
	"Los Angeles Lakers":     "LAL",
	"Memphis Grizzlies":      "MEM",
	"Miami Heat":             "MIA",
	"Milwaukee Bucks":        "MIL",
	"Minnesota Timberwolves": "MIN",
	"New Orleans Pelicans":   "NOP",
	"New York Knicks":        "NYK",
	"Oklahoma City Thunder":  "OKC",
	"Orlando Magic":          "ORL",
	"Philadelphia 76ers":     "PHI",
	"Phoenix Suns":           "PHX",
	"Portland Trail Blazers": "POR",
	"Sacramento Kings":       "SAC",
	"San Antonio Spurs":      "SAS",
	"Toronto Raptors":        "TOR",
	"Utah Jazz":              "UTA",
	"Washington Wizards":     "WAS",
}

// TeamAbbr resolves a full team name to its abbreviation. Returns the input
// unchanged when the name is already an abbreviation or unknown.
func TeamAbbr(name string) string {
	if abbr, ok := teamAbbreviations[name]; ok {
		return abbr
	}
	return name
}

// Matchup resolves a player's side of an event from their roster team.
// Returns the opponent abbreviation and whether the player is at home;
// ok is false when the player's team is in neither slot, which happens
// when the roster is stale or the prop belongs to a different game.
func Matchup(playerTeamAbbr, homeTeam, awayTeam string) (opponent string, home bool, ok bool) {
	homeAbbr := TeamAbbr(homeTeam)
	awayAbbr := TeamAbbr(awayTeam)

	switch playerTeamAbbr {
	case homeAbbr:
		return awayAbbr, true, true
	case awayAbbr:
		return homeAbbr, false, true
	default:
		return "", false, false
	}
}

// NormalizeName canonicalizes a player name for matching between the odds
// feed and the stats feed. Both feeds disagree on punctuation and suffixes
// for the same player.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "-", " ")

	fields := strings.Fields(s)
	for len(fields) > 1 {
		switch fields[len(fields)-1] {
		case "jr", "sr", "ii", "iii", "iv", "v":
			fields = fields[:len(fields)-1]
		default:
			return strings.Join(fields, " ")
		}
	}
	return strings.Join(fields, " ")
}
