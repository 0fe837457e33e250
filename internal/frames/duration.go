package frames

import (
	"math"
	"strconv"
	"strings"
)

// ParseDuration extracts the total seconds from ffmpeg's
// "Duration: HH:MM:SS.ff, start: ..." diagnostic line.
func ParseDuration(diagnostics string) (float64, bool) {
	for _, line := range strings.Split(diagnostics, "\n") {
		_, after, found := strings.Cut(line, "Duration:")
		if !found {
			continue
		}

		value, _, _ := strings.Cut(after, ",")
		parts := strings.Split(strings.TrimSpace(value), ":")
		if len(parts) != 3 {
			return 0, false
		}

		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, false
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, false
		}
		s, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, false
		}
		return float64(h)*3600 + float64(m)*60 + s, true
	}
	return 0, false
}

// Timestamps returns min(floor(duration/interval), maxCount) instants evenly
// spaced strictly inside (0, duration).
func Timestamps(duration float64, interval, maxCount int) []float64 {
	if duration <= 0 || interval <= 0 || maxCount <= 0 {
		return nil
	}

	count := int(math.Floor(duration / float64(interval)))
	if count > maxCount {
		count = maxCount
	}
	if count <= 0 {
		return nil
	}

	step := duration / float64(count+1)
	timestamps := make([]float64, 0, count)
	for i := 1; i <= count; i++ {
		timestamps = append(timestamps, step*float64(i))
	}
	return timestamps
}
