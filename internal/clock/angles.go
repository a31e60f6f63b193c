package clock

import "time"

// ArcStart is the angle (degrees) where the seconds arc begins: 12 o'clock.
const ArcStart = -90.0

// Sample is one reading of the host clock on a 12-hour dial.
type Sample struct {
	Hour   int // 0-11
	Minute int // 0-59
	Second int // 0-59
}

// Angles are hand rotations and the seconds sweep, in degrees clockwise from 12 o'clock.
type Angles struct {
	Hour        float64
	Minute      float64
	SecondSweep float64
}

// SampleFromTime breaks t into a dial sample using t's own location.
func SampleFromTime(t time.Time) Sample {
	return Sample{Hour: t.Hour() % 12, Minute: t.Minute(), Second: t.Second()}
}

// ComputeAngles derives continuous hand angles from s.
// Inputs are bounded by the clock, so the results already lie in [0, 360).
func ComputeAngles(s Sample) Angles {
	hour := float64(s.Hour%12) + float64(s.Minute)/60
	minute := float64(s.Minute) + float64(s.Second)/60
	return Angles{
		Hour:        hour * 30,
		Minute:      minute * 6,
		SecondSweep: float64(s.Second) / 60 * 360,
	}
}
