package models

import (
	"time"

	"github.com/google/uuid"
)

// Side is the side of a prop market
type Side string

const (
	SideOver  Side = "OVER"
	SideUnder Side = "UNDER"
)

// EdgeCandidate is one side of one prop market scored against the model.
// Probabilities lie in [0,1]; Edge may be negative until filtering.
type EdgeCandidate struct {
	PlayerID     int64       `json:"player_id"`
	PlayerName   string      `json:"player_name"`
	PlayerTeam   string      `json:"player_team"`
	OpponentTeam string      `json:"opponent_team"`
	Stat         StatType    `json:"stat"`
	Side         Side        `json:"side"`
	Line         float64     `json:"line"`
	Price        int         `json:"price"`
	Book         string      `json:"book"`
	BookName     string      `json:"book_name"`
	Quotes       []BookQuote `json:"quotes"`
	ModelProb    float64     `json:"model_prob"`
	ImpliedProb  float64     `json:"implied_prob"`
	Edge         float64     `json:"edge"`
	Rating       float64     `json:"rating"`
}

// Slate is the final bounded, ordered selection of picks for one run
type Slate struct {
	RunID       uuid.UUID       `json:"run_id"`
	Stat        StatType        `json:"stat"`
	GeneratedAt time.Time       `json:"generated_at"`
	Picks       []EdgeCandidate `json:"picks"`
}

// Overs returns the OVER-side picks in slate rank order
func (s *Slate) Overs() []EdgeCandidate {
	return s.side(SideOver)
}

// Unders returns the UNDER-side picks in slate rank order
func (s *Slate) Unders() []EdgeCandidate {
	return s.side(SideUnder)
}

func (s *Slate) side(side Side) []EdgeCandidate {
	picks := make([]EdgeCandidate, 0, len(s.Picks))
	for _, p := range s.Picks {
		if p.Side == side {
			picks = append(picks, p)
		}
	}
	return picks
}
