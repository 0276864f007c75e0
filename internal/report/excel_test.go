package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/prop-edge/internal/models"
)

func testSlate() *models.Slate {
	return &models.Slate{
		RunID:       uuid.New(),
		Stat:        models.StatPoints,
		GeneratedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		Picks: []models.EdgeCandidate{
			{
				PlayerID: 1, PlayerName: "Jayson Tatum", PlayerTeam: "BOS", OpponentTeam: "MIA",
				Stat: models.StatPoints, Side: models.SideOver, Line: 26.5, Price: -110,
				Book: "fanduel", BookName: "FanDuel",
				Quotes: []models.BookQuote{
					{BookKey: "bet365", BookTitle: "Bet365", OverPrice: -115, UnderPrice: -105},
					{BookKey: "fanduel", BookTitle: "FanDuel", OverPrice: -110, UnderPrice: -110},
				},
				ModelProb: 0.61, ImpliedProb: 0.5, Edge: 0.11, Rating: 11.0,
			},
			{
				PlayerID: 2, PlayerName: "Bam Adebayo", PlayerTeam: "MIA", OpponentTeam: "BOS",
				Stat: models.StatPoints, Side: models.SideUnder, Line: 18.5, Price: 105,
				Book: "bet365", BookName: "Bet365",
				ModelProb: 0.55, ImpliedProb: 0.48, Edge: 0.07, Rating: 7.0,
			},
		},
	}
}

func TestWriteProducesWorkbook(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, "NBA Points Props")

	path, err := writer.Write(testSlate())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "slate_points_2026-01-15.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	flat := map[string]bool{}
	for _, row := range rows {
		for _, cell := range row {
			flat[cell] = true
		}
	}

	assert.True(t, flat["OVERS"], "overs section header")
	assert.True(t, flat["UNDERS"], "unders section header")
	assert.True(t, flat["Jayson Tatum"])
	assert.True(t, flat["Bam Adebayo"])
	assert.True(t, flat["+105"], "positive odds carry an explicit sign")
	assert.True(t, flat["-110"])
	assert.True(t, flat["Bet365 -115"], "second book's price shown alongside the pick")
}

func TestWriteNoPartialFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, "NBA Points Props")

	_, err := writer.Write(testSlate())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "slate_points_2026-01-15.xlsx", entries[0].Name())
}

func TestWriteEmptySlate(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, "NBA Points Props")

	slate := testSlate()
	slate.Picks = nil

	path, err := writer.Write(slate)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		for _, cell := range row {
			if cell == "No qualifying picks" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestArchiveCopiesReport(t *testing.T) {
	dir := t.TempDir()
	archiveDir := t.TempDir()
	writer := NewWriter(dir, "NBA Points Props")

	slate := testSlate()
	path, err := writer.Write(slate)
	require.NoError(t, err)

	archived, err := Archive(path, archiveDir, slate.GeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(archiveDir, "2026-01-15", "slate_points_2026-01-15.xlsx"), archived)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	dst, err := os.ReadFile(archived)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}
