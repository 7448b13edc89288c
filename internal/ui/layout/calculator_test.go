package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{"header only", 40, ContentOpts{HeaderHeight: 1}, 39},
		{"header and status", 40, ContentOpts{HeaderHeight: 1, StatusHeight: 1}, 38},
		{"too small", 1, ContentOpts{HeaderHeight: 1, StatusHeight: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.windowHeight, tt.opts); got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNavigatorWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		divisor int
		visible bool
		want    int
	}{
		{"third", 120, 3, true, 40},
		{"hidden", 120, 3, false, 0},
		{"bad divisor", 120, 0, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NavigatorWidth(tt.width, tt.divisor, tt.visible); got != tt.want {
				t.Errorf("NavigatorWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNavigatorVisible(t *testing.T) {
	if NavigatorVisible(59, 60) {
		t.Error("59 columns should hide the navigator")
	}
	if !NavigatorVisible(60, 60) {
		t.Error("60 columns should show the navigator")
	}
}

func TestPlaylistWidth(t *testing.T) {
	if got := PlaylistWidth(120, 40); got != 80 {
		t.Errorf("PlaylistWidth() = %d, want 80", got)
	}
	if got := PlaylistWidth(10, 40); got != 0 {
		t.Errorf("PlaylistWidth() = %d, want 0", got)
	}
}
