package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/yourusername/prop-edge/internal/models"
)

func gameWith(points, minutes float64) *models.PlayerGameLog {
	return &models.PlayerGameLog{
		PlayerID: 1,
		GameDate: time.Now(),
		Points:   points,
		Minutes:  minutes,
	}
}

func TestScoringRateRollingSums(t *testing.T) {
	window := []*models.PlayerGameLog{
		gameWith(20, 30),
		gameWith(30, 35),
		gameWith(10, 15),
	}

	rate, err := ScoringRate(window, models.StatPoints)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 60.0 / 80.0
	if rate != expected {
		t.Fatalf("expected rate %v, got %v", expected, rate)
	}
}

func TestScoringRateZeroMinutes(t *testing.T) {
	window := []*models.PlayerGameLog{
		gameWith(0, 0),
		gameWith(0, 0),
	}

	_, err := ScoringRate(window, models.StatPoints)
	if !errors.Is(err, models.ErrNoRate) {
		t.Fatalf("expected ErrNoRate, got %v", err)
	}
}

func TestScoringRateEmptyWindow(t *testing.T) {
	_, err := ScoringRate(nil, models.StatPoints)
	if !errors.Is(err, models.ErrDataGap) {
		t.Fatalf("expected ErrDataGap, got %v", err)
	}
}

func TestExpectedValueExact(t *testing.T) {
	ev, err := ExpectedValue(30, 0.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev != 24.0 {
		t.Fatalf("expected 24.0 exactly, got %v", ev)
	}
}

func TestExpectedValueRejectsNegatives(t *testing.T) {
	if _, err := ExpectedValue(-1, 0.8); err == nil {
		t.Fatal("expected error for negative minutes")
	}
	if _, err := ExpectedValue(30, -0.1); err == nil {
		t.Fatal("expected error for negative rate")
	}
}
