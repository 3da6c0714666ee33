package geom

import "testing"

func TestRangeEmpty(t *testing.T) {
	r := EmptyRange[float64]()
	if !r.IsEmpty() {
		t.Fatal("EmptyRange must be empty")
	}
	if NewRange(0.0, 1.0).IsEmpty() {
		t.Error("[0, 1] is not empty")
	}
	if NewRange(2.0, 2.0).IsEmpty() {
		t.Error("a single-point interval is not empty")
	}
	if !NewRange(3.0, 1.0).IsEmpty() {
		t.Error("Max < Min must read as empty")
	}
}

func TestRangeExtend(t *testing.T) {
	r := EmptyRange[float64]()

	r.Extend(2)
	if r.Min != 2 || r.Max != 2 {
		t.Fatalf("first extend should snap to the value, got [%v, %v]", r.Min, r.Max)
	}

	r.Extend(-1)
	r.Extend(5)
	r.Extend(3) // interior value changes nothing
	if r.Min != -1 || r.Max != 5 {
		t.Errorf("got [%v, %v], want [-1, 5]", r.Min, r.Max)
	}
}

func TestRangeIntersect(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Range[float64]
		wantEmpty bool
		min, max  float64
	}{
		{
			name: "Overlapping intervals",
			a:    NewRange(0.0, 4.0),
			b:    NewRange(2.0, 6.0),
			min:  2, max: 4,
		},
		{
			name:      "Disjoint intervals are empty",
			a:         NewRange(0.0, 1.0),
			b:         NewRange(2.0, 3.0),
			wantEmpty: true,
		},
		{
			name: "Touching endpoints give a single point",
			a:    NewRange(0.0, 2.0),
			b:    NewRange(2.0, 5.0),
			min:  2, max: 2,
		},
		{
			name:      "Anything intersected with empty is empty",
			a:         NewRange(0.0, 10.0),
			b:         EmptyRange[float64](),
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got.IsEmpty() != tt.wantEmpty {
				t.Fatalf("empty = %v, want %v ([%v, %v])",
					got.IsEmpty(), tt.wantEmpty, got.Min, got.Max)
			}
			if !tt.wantEmpty && (got.Min != tt.min || got.Max != tt.max) {
				t.Errorf("got [%v, %v], want [%v, %v]", got.Min, got.Max, tt.min, tt.max)
			}

			// Intersection is symmetric.
			flipped := tt.b.Intersect(tt.a)
			if flipped.IsEmpty() != got.IsEmpty() {
				t.Error("intersection must be symmetric")
			}
		})
	}
}

func TestRangeOffsetNormalize(t *testing.T) {
	r := NewRange(2.0, 6.0).Offset(-2)
	if r.Min != 0 || r.Max != 4 {
		t.Fatalf("got [%v, %v], want [0, 4]", r.Min, r.Max)
	}

	if got := r.Normalize(1); got != 0.25 {
		t.Errorf("Normalize(1) = %v, want 0.25", got)
	}
	if got := r.Normalize(0); got != 0 {
		t.Errorf("Normalize(0) = %v, want 0", got)
	}
	if got := r.Normalize(4); got != 1 {
		t.Errorf("Normalize(4) = %v, want 1", got)
	}
}

func TestRangeFloat32(t *testing.T) {
	r := EmptyRange[float32]()
	if !r.IsEmpty() {
		t.Fatal("float32 EmptyRange must be empty")
	}
	r.Extend(1.5)
	r.Extend(-0.5)
	if r.Min != -0.5 || r.Max != 1.5 {
		t.Errorf("got [%v, %v], want [-0.5, 1.5]", r.Min, r.Max)
	}
}
