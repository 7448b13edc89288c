package drop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{
			name:    "uri list",
			payload: "file:///music/a.mp3\r\nfile:///music/b.flac\r\n",
			want:    []string{"/music/a.mp3", "/music/b.flac"},
		},
		{
			name:    "percent encoded",
			payload: "file:///music/My%20Album/01%20-%20%C3%89t%C3%A9.mp3",
			want:    []string{"/music/My Album/01 - Été.mp3"},
		},
		{
			name:    "localhost host",
			payload: "file://localhost/music/a.mp3",
			want:    []string{"/music/a.mp3"},
		},
		{
			name:    "comments and blanks skipped",
			payload: "# dragged from browser\n\n  file:///a.mp3  \n",
			want:    []string{"/a.mp3"},
		},
		{
			name:    "plain path with spaces",
			payload: "/music/My Album/track one.mp3",
			want:    []string{"/music/My Album/track one.mp3"},
		},
		{
			name:    "shell quoted words",
			payload: `'/music/a b.mp3' '/music/it'\''s.mp3' "/music/c.mp3"`,
			want:    []string{"/music/a b.mp3", "/music/it's.mp3", "/music/c.mp3"},
		},
		{
			name:    "backslash escaped",
			payload: `/music/a\ b.mp3 /music/c.mp3`,
			want:    []string{"/music/a b.mp3", "/music/c.mp3"},
		},
		{
			name:    "empty",
			payload: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePayload(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePayload_NonLocal(t *testing.T) {
	got, err := ParsePayload("https://example.com/a.mp3\nfile:///b.mp3\nfile://otherhost/c.mp3\n")

	assert.Equal(t, []string{"/b.mp3"}, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotLocal))
}
