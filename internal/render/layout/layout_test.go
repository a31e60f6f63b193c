package layout

import (
	"fmt"
	"image"
	"testing"
)

func TestArcBoxIsCenteredSquare(t *testing.T) {
	sizes := [][2]int{{400, 400}, {320, 172}, {172, 320}, {1920, 1080}, {1, 1}, {401, 233}}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			lay, ok := ComputeDialLayout(DialParams{
				CanvasWidth:  size[0],
				CanvasHeight: size[1],
				DialDiameter: 300,
				EdgeInsetDp:  20,
				Density:      1.5,
				Scale:        1,
			})
			if !ok {
				t.Fatal("expected a layout")
			}
			box := lay.ArcBox
			if box.Dx() != box.Dy() {
				t.Errorf("arc box %+v is not square", box)
			}
			cx, cy := box.Center()
			if cx != float64(size[0])/2 || cy != float64(size[1])/2 {
				t.Errorf("arc box centered at (%v,%v), want (%v,%v)", cx, cy, float64(size[0])/2, float64(size[1])/2)
			}
			if lay.CenterX != cx || lay.CenterY != cy {
				t.Errorf("layout center (%v,%v) differs from arc box center", lay.CenterX, lay.CenterY)
			}
		})
	}
}

func TestArcBoxInset(t *testing.T) {
	lay, _ := ComputeDialLayout(DialParams{
		CanvasWidth: 400, CanvasHeight: 400,
		DialDiameter: 360, EdgeInsetDp: 48, Density: 2, Scale: 1,
	})
	// half side = 180 - 96
	if got := lay.ArcBox.Dx(); got != 168 {
		t.Errorf("arc box side = %v, want 168", got)
	}
	if lay.ArcBox.MinX != 116 || lay.ArcBox.MinY != 116 {
		t.Errorf("arc box min = (%v,%v), want (116,116)", lay.ArcBox.MinX, lay.ArcBox.MinY)
	}
}

func TestArcBoxInsetLargerThanDial(t *testing.T) {
	lay, ok := ComputeDialLayout(DialParams{
		CanvasWidth: 100, CanvasHeight: 100,
		DialDiameter: 40, EdgeInsetDp: 30, Density: 1, Scale: 1,
	})
	if !ok {
		t.Fatal("expected a layout")
	}
	if !lay.ArcBox.Empty() {
		t.Errorf("inset beyond the dial radius should collapse the box, got %+v", lay.ArcBox)
	}
}

func TestPivotOffsetScalesWithArtwork(t *testing.T) {
	var tests = []struct {
		scale      float64
		handHeight float64
		want       float64
	}{
		{1, 150, 150 - 7*3},
		{0.5, 75, 75 - 7*3*0.5},
		{2, 300, 300 - 7*3*2},
	}
	for _, tt := range tests {
		lay, ok := ComputeDialLayout(DialParams{
			CanvasWidth: 400, CanvasHeight: 400,
			HourHandHeight: tt.handHeight, MinuteHandHeight: tt.handHeight * 2,
			PivotOffsetDp: 7, Density: 3, Scale: tt.scale,
		})
		if !ok {
			t.Fatal("expected a layout")
		}
		if lay.HourPivotOffset != tt.want {
			t.Errorf("scale %v: hour pivot = %v, want %v", tt.scale, lay.HourPivotOffset, tt.want)
		}
		wantMinute := tt.handHeight*2 - 7*3*tt.scale
		if lay.MinutePivotOffset != wantMinute {
			t.Errorf("scale %v: minute pivot = %v, want %v", tt.scale, lay.MinutePivotOffset, wantMinute)
		}
	}
}

func TestComputeDialLayoutInvalid(t *testing.T) {
	var tests = []DialParams{
		{CanvasWidth: 0, CanvasHeight: 400, Scale: 1},
		{CanvasWidth: 400, CanvasHeight: -1, Scale: 1},
		{CanvasWidth: 400, CanvasHeight: 400, Scale: 0},
	}
	for _, p := range tests {
		if _, ok := ComputeDialLayout(p); ok {
			t.Errorf("expected no layout for %+v", p)
		}
	}
}

func TestDefaultDensity(t *testing.T) {
	lay, _ := ComputeDialLayout(DialParams{
		CanvasWidth: 200, CanvasHeight: 200, DialDiameter: 200, EdgeInsetDp: 10, Scale: 1,
	})
	if got := lay.ArcBox.Dx(); got != 180 {
		t.Errorf("zero density should fall back to 1, arc side = %v", got)
	}
}

func TestFitSquare(t *testing.T) {
	var tests = []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{"landscape", image.Rect(0, 0, 320, 172), image.Rect(74, 0, 246, 172)},
		{"portrait", image.Rect(0, 0, 240, 320), image.Rect(0, 40, 240, 280)},
		{"square", image.Rect(0, 0, 400, 400), image.Rect(0, 0, 400, 400)},
		{"inverted", image.Rectangle{Min: image.Pt(100, 50), Max: image.Pt(0, 0)}, image.Rect(25, 0, 75, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitSquare(tt.in); got != tt.want {
				t.Errorf("FitSquare(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCenterRectClamps(t *testing.T) {
	if got := CenterRect(image.Rect(0, 0, 100, 50), 200, -4); got != image.Rect(0, 25, 100, 25) {
		t.Errorf("CenterRect = %v", got)
	}
}

func TestRectFInset(t *testing.T) {
	r := RectF{0, 0, 100, 40}.Inset(10)
	if r != (RectF{10, 10, 90, 30}) {
		t.Errorf("Inset = %+v", r)
	}
	collapsed := RectF{0, 0, 10, 10}.Inset(20)
	if !collapsed.Empty() {
		t.Errorf("expected empty rect, got %+v", collapsed)
	}
	if cx, cy := collapsed.Center(); cx != 5 || cy != 5 {
		t.Errorf("collapsed rect should keep center, got (%v,%v)", cx, cy)
	}
}
