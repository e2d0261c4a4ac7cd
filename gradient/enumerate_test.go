package gradient

import (
	"slices"
	"testing"
)

func TestOdometer(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  [][]int
	}{
		{"no axes", nil, nil},
		{"empty axis", []int{2, 0, 3}, nil},
		{"single axis", []int{3}, [][]int{{0}, {1}, {2}}},
		{"last fastest", []int{2, 1, 2}, [][]int{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}, {1, 0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]int
			for idx := range odometer(tt.sizes...) {
				got = append(got, idx)
			}
			if !slices.EqualFunc(got, tt.want, slices.Equal[[]int]) {
				t.Errorf("odometer(%v) = %v, want %v", tt.sizes, got, tt.want)
			}
		})
	}
}

func TestOdometer_StopsEarly(t *testing.T) {
	n := 0
	for range odometer(10, 10) {
		if n++; n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iteration continued after break, n = %d", n)
	}
}

func TestOdometer_YieldsCopies(t *testing.T) {
	var kept [][]int
	for idx := range odometer(2, 2) {
		kept = append(kept, idx)
	}
	if kept[0][1] != 0 || kept[3][1] != 1 {
		t.Errorf("yielded slices were reused: %v", kept)
	}
}
