package navigator

import (
	"slices"
	"testing"
)

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2 - Intro.flac", "10 - Outro.flac", -1},
		{"Disc 10", "Disc 9", 1},
		{"abc", "ABD", -1},
		{"track01", "track1", 1},
		{"track1", "track1", 0},
		{"a", "ab", -1},
		{"Album", "album", -1},
		{"007", "8", -1},
	}
	for _, tt := range tests {
		if got := naturalCompare(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalCompare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := naturalCompare(tt.b, tt.a); got != -tt.want {
			t.Errorf("naturalCompare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestNaturalCompare_SortsTrackNames(t *testing.T) {
	names := []string{"10 Ten.mp3", "1 One.mp3", "2 Two.mp3", "b.mp3", "A.mp3"}
	slices.SortFunc(names, naturalCompare)
	want := []string{"1 One.mp3", "2 Two.mp3", "10 Ten.mp3", "A.mp3", "b.mp3"}
	if !slices.Equal(names, want) {
		t.Errorf("sorted = %v, want %v", names, want)
	}
}
