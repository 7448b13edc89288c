package tags

import (
	"testing"
	"time"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/song.mp3", true},
		{"/music/song.MP3", true},
		{"/music/song.flac", true},
		{"/music/song.opus", true},
		{"/music/song.ogg", true},
		{"/music/song.oga", true},
		{"/music/song.m4a", true},
		{"/music/song.mp4", true},
		{"/music/cover.jpg", false},
		{"/music/z.tmp", false},
		{"/music/noext", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseNumberPair(t *testing.T) {
	tests := []struct {
		input     string
		wantNum   int
		wantTotal int
	}{
		{"", 0, 0},
		{"5", 5, 0},
		{"5/10", 5, 10},
		{" 7 / 9 ", 7, 9},
		{"invalid", 0, 0},
		{"5/invalid", 5, 0},
		{"invalid/10", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			num, total := parseNumberPair(tt.input)
			if num != tt.wantNum || total != tt.wantTotal {
				t.Errorf("parseNumberPair(%q) = (%d, %d), want (%d, %d)",
					tt.input, num, total, tt.wantNum, tt.wantTotal)
			}
		})
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{3*time.Minute + 25*time.Second, "3:25"},
		{3*time.Minute + 25*time.Second + 600*time.Millisecond, "3:26"},
		{75 * time.Minute, "1:15:00"},
	}

	for _, tt := range tests {
		if got := formatLength(tt.d); got != tt.want {
			t.Errorf("formatLength(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCodecForExt(t *testing.T) {
	if got := codecForExt(ExtOGA); got != "Vorbis" {
		t.Errorf("codecForExt(.oga) = %q, want Vorbis", got)
	}
	if got := codecForExt(".tmp"); got != "" {
		t.Errorf("codecForExt(.tmp) = %q, want empty", got)
	}
}
