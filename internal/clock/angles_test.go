package clock

import (
	"fmt"
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func TestComputeAngles(t *testing.T) {
	var tests = []struct {
		sample Sample
		want   Angles
	}{
		{Sample{0, 0, 0}, Angles{0, 0, 0}},
		{Sample{3, 15, 30}, Angles{97.5, 93, 180}},
		{Sample{6, 0, 0}, Angles{180, 0, 0}},
		{Sample{11, 59, 59}, Angles{359.5, 359.9, 354}},
		{Sample{9, 30, 15}, Angles{285, 181.5, 90}},
	}

	for _, tt := range tests {
		testname := fmt.Sprintf("%02d:%02d:%02d", tt.sample.Hour, tt.sample.Minute, tt.sample.Second)
		t.Run(testname, func(t *testing.T) {
			got := ComputeAngles(tt.sample)
			if math.Abs(got.Hour-tt.want.Hour) > epsilon ||
				math.Abs(got.Minute-tt.want.Minute) > epsilon ||
				math.Abs(got.SecondSweep-tt.want.SecondSweep) > epsilon {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHourAngleRange(t *testing.T) {
	for hour := 0; hour < 12; hour++ {
		for minute := 0; minute < 60; minute++ {
			got := ComputeAngles(Sample{Hour: hour, Minute: minute}).Hour
			want := (float64(hour%12) + float64(minute)/60) * 30
			if math.Abs(got-want) > epsilon {
				t.Fatalf("hour angle for %d:%02d = %v, want %v", hour, minute, got, want)
			}
			if got < 0 || got >= 360 {
				t.Fatalf("hour angle for %d:%02d out of range: %v", hour, minute, got)
			}
		}
	}
}

func TestMinuteAngleRange(t *testing.T) {
	for minute := 0; minute < 60; minute++ {
		for second := 0; second < 60; second++ {
			got := ComputeAngles(Sample{Minute: minute, Second: second}).Minute
			want := (float64(minute) + float64(second)/60) * 6
			if math.Abs(got-want) > epsilon {
				t.Fatalf("minute angle for %02d:%02d = %v, want %v", minute, second, got, want)
			}
			if got < 0 || got >= 360 {
				t.Fatalf("minute angle for %02d:%02d out of range: %v", minute, second, got)
			}
		}
	}
}

func TestSecondSweepMonotonic(t *testing.T) {
	prev := -1.0
	for second := 0; second < 60; second++ {
		got := ComputeAngles(Sample{Second: second}).SecondSweep
		if got <= prev {
			t.Fatalf("sweep at %d (%v) not greater than previous (%v)", second, got, prev)
		}
		prev = got
	}
	if reset := ComputeAngles(Sample{Minute: 1, Second: 0}).SecondSweep; reset != 0 {
		t.Errorf("sweep should reset to 0 at minute boundary, got %v", reset)
	}
}

func TestSampleFromTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 15, 15, 30, 0, time.UTC)
	got := SampleFromTime(at)
	want := Sample{Hour: 3, Minute: 15, Second: 30}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	midnight := SampleFromTime(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	if midnight.Hour != 0 {
		t.Errorf("expected hour 0 at midnight, got %d", midnight.Hour)
	}
	noon := SampleFromTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	if noon.Hour != 0 {
		t.Errorf("expected hour 0 at noon, got %d", noon.Hour)
	}
}
