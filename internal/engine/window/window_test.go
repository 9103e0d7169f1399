package window

import "testing"

func TestWindowedSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int32
	}{
		{"explicit", 800, 600, 800, 600},
		{"unset", 0, 0, WindowedFallbackWidth, WindowedFallbackHeight},
		{"width only", 1024, 0, WindowedFallbackWidth, WindowedFallbackHeight},
		{"negative", -1, 600, WindowedFallbackWidth, WindowedFallbackHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := windowedSize(tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("windowedSize(%d, %d) = %dx%d, want %dx%d", tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
