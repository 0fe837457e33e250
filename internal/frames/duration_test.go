package frames

import (
	"math"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{
			name:   "typical header",
			input:  "Input #0, mov,mp4\n  Duration: 00:04:12.44, start: 0.000000, bitrate: 657 kb/s\n",
			want:   252.44,
			wantOK: true,
		},
		{
			name:   "hours",
			input:  "  Duration: 01:00:00.50, start: 0.0",
			want:   3600.5,
			wantOK: true,
		},
		{"not available", "  Duration: N/A, start: 0.0", 0, false},
		{"no duration line", "Invalid data found when processing input", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDuration() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimestamps(t *testing.T) {
	durations := []float64{0, 1, 29.9, 30, 59.99, 61, 252.44, 600, 3600.5}
	intervals := []int{1, 10, 30, 45}
	maxCounts := []int{0, 1, 3, 10}

	for _, d := range durations {
		for _, interval := range intervals {
			for _, maxCount := range maxCounts {
				got := Timestamps(d, interval, maxCount)

				want := int(math.Floor(d / float64(interval)))
				if want > maxCount {
					want = maxCount
				}
				if want < 0 {
					want = 0
				}
				if len(got) != want {
					t.Fatalf("Timestamps(%v, %d, %d) len = %d, want %d", d, interval, maxCount, len(got), want)
				}

				prev := 0.0
				for _, ts := range got {
					if ts <= prev || ts >= d {
						t.Fatalf("Timestamps(%v, %d, %d) = %v: not strictly increasing inside (0, d)", d, interval, maxCount, got)
					}
					prev = ts
				}
			}
		}
	}
}

func TestTimestampsEvenSpacing(t *testing.T) {
	got := Timestamps(100, 30, 10)
	want := []float64{25, 50, 75}
	if len(got) != len(want) {
		t.Fatalf("Timestamps() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Timestamps()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
