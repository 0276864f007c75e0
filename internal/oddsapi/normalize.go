package oddsapi

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prop-edge/internal/models"
)

// maxQuoteAge is how old a fetched line may be before scoring refuses it
const maxQuoteAge = 30 * time.Minute

// pairKey identifies one player prop line within an event
type pairKey struct {
	player string
	line   string
}

// normalizeEventOdds flattens the bookmaker/market/outcome tree into one
// MarketLine per player and line, with over and under prices pivoted onto a
// single quote per book. Outcomes missing either side are dropped.
//
// Some feeds swap the outcome name and description fields, putting the
// player where the side belongs. Both orientations are accepted.
func normalizeEventOdds(payload *eventOdds, stat models.StatType, fetchedAt time.Time) []*models.MarketLine {
	type sideQuote struct {
		title string
		over  int
		under int
	}

	quotes := make(map[pairKey]map[string]*sideQuote)

	for _, book := range payload.Bookmakers {
		for _, market := range book.Markets {
			if market.Key != stat.MarketKey() {
				continue
			}
			for _, outcome := range market.Outcomes {
				side, player := outcome.Name, outcome.Description
				if side != "Over" && side != "Under" {
					side, player = player, side
				}
				if side != "Over" && side != "Under" || player == "" {
					continue
				}

				key := pairKey{player: player, line: fmt.Sprintf("%.1f", outcome.Point)}
				if quotes[key] == nil {
					quotes[key] = make(map[string]*sideQuote)
				}
				q := quotes[key][book.Key]
				if q == nil {
					q = &sideQuote{title: book.Title}
					quotes[key][book.Key] = q
				}
				if side == "Over" {
					q.over = outcome.Price
				} else {
					q.under = outcome.Price
				}
			}
		}
	}

	lines := make([]*models.MarketLine, 0, len(quotes))
	for key, books := range quotes {
		line := &models.MarketLine{
			EventID:      payload.ID,
			CommenceTime: payload.CommenceTime,
			HomeTeam:     payload.HomeTeam,
			AwayTeam:     payload.AwayTeam,
			Player:       key.player,
			Stat:         stat,
			Line:         decimal.RequireFromString(key.line),
			FetchedAt:    fetchedAt,
		}
		for bookKey, q := range books {
			if q.over == 0 || q.under == 0 {
				// One-sided quote, unusable for de-vigging
				continue
			}
			line.Quotes = append(line.Quotes, models.BookQuote{
				BookKey:    bookKey,
				BookTitle:  q.title,
				OverPrice:  q.over,
				UnderPrice: q.under,
			})
		}
		if len(line.Quotes) == 0 {
			continue
		}
		sort.Slice(line.Quotes, func(i, j int) bool {
			return line.Quotes[i].BookKey < line.Quotes[j].BookKey
		})
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Player != lines[j].Player {
			return lines[i].Player < lines[j].Player
		}
		return lines[i].Line.Cmp(lines[j].Line) < 0
	})
	return lines
}

// FilterToday keeps events commencing on the given local date. The odds feed
// reports commence times in UTC, so the comparison happens in the pipeline's
// configured zone.
func FilterToday(events []Event, day time.Time, loc *time.Location) []Event {
	y, m, d := day.In(loc).Date()

	var todays []Event
	for _, ev := range events {
		ey, em, ed := ev.CommenceTime.In(loc).Date()
		if ey == y && em == m && ed == d {
			todays = append(todays, ev)
		}
	}
	return todays
}

// CheckFreshness rejects lines fetched too long before scoring
func CheckFreshness(line *models.MarketLine, now time.Time) error {
	if age := now.Sub(line.FetchedAt); age > maxQuoteAge {
		return fmt.Errorf("%w: %s %s fetched %s ago",
			models.ErrStaleOdds, line.Player, line.Stat, age.Round(time.Second))
	}
	return nil
}
