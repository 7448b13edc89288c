package playlistview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/icons"
	"github.com/llehouerou/hnl/internal/ui/testutil"
)

func TestView_ZeroSize(t *testing.T) {
	m, _ := newView(t, "A")
	m.SetSize(0, 0)
	assert.Empty(t, m.View())
}

func TestView_Empty(t *testing.T) {
	m, _ := newView(t)
	out := m.View()
	assert.Contains(t, testutil.StripANSI(out), "Drop files here")
	assert.Len(t, testutil.SplitLines(out), 14)
}

func TestView_HeaderAndRows(t *testing.T) {
	m, _ := newView(t, "Atmosphere", "Isolation")
	out := m.View()

	header := testutil.FindLine(out, "Title")
	require.NotEmpty(t, header)
	for _, name := range []string{"Track", "Artist", "Album"} {
		assert.Contains(t, header, name)
	}

	row := testutil.FindLine(out, "Isolation")
	assert.Contains(t, row, "Artist Isolation")
	assert.Contains(t, row, "?", "missing album renders as ?")
}

func TestView_LinesFitWidth(t *testing.T) {
	m, _ := newView(t, strings.Repeat("long title ", 20), "B")
	for _, line := range testutil.SplitLines(m.View()) {
		assert.Equal(t, 100, testutil.MeasureWidth(line))
	}
}

func TestView_ColumnWidthInCells(t *testing.T) {
	m, _ := newView(t, "Disintegration Loops")
	title, err := columns.NewColumn("Title", 60, "%title%")
	require.NoError(t, err)
	narrow, err := columns.NewColumn("No", 1, "%tracknumber%")
	require.NoError(t, err)
	m.SetColumns(columns.New(title, narrow))

	row := testutil.FindLine(m.View(), "Disintegr")
	assert.Contains(t, row, "Disintegr… 1  ")
}

func TestView_EvalErrorShownInCell(t *testing.T) {
	m, _ := newView(t, "A")
	col, err := columns.NewColumn("Bad", 240, "$div(1,0)")
	require.NoError(t, err)
	m.SetColumns(columns.New(col))

	assert.Contains(t, testutil.StripANSI(m.View()), "!")
}

func TestView_Markers(t *testing.T) {
	m, _ := newView(t, "A", "B", "C")
	m.SetPlaying(1)
	m.SetSelection(2)

	out := m.View()
	assert.Contains(t, testutil.FindLine(out, "Artist B"), icons.Playing())
	assert.Contains(t, testutil.FindLine(out, "Artist C"), icons.Selected())
	assert.NotContains(t, testutil.FindLine(out, "Artist A"), icons.Playing())
}

func TestView_DropHintAfterLastRow(t *testing.T) {
	m, _ := newView(t, "A", "B")
	m.SetDropHint(2)
	out := m.View()
	assert.Equal(t, listTop+2, testutil.LineIndex(out, icons.Marker()))

	m.SetDropHint(-1)
	assert.Equal(t, -1, testutil.LineIndex(m.View(), icons.Marker()))
}

func TestView_ScrollsWithCursor(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = "Song " + string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	m, _ := newView(t, names...)
	m.SetCursor(39)

	out := m.View()
	assert.NotEmpty(t, testutil.FindLine(out, "Artist Song Nb"))
	assert.Empty(t, testutil.FindLine(out, "Artist Song Aa"))
}
