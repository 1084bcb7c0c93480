package core

import (
	"math"
	"testing"
)

func TestKgToMound(t *testing.T) {
	cases := []struct {
		kg   float64
		want float64
	}{
		{40, 1},
		{20, 0.5},
		{0, 0},
		{15, 0.375},
		{1, 0.025},
	}
	for _, tc := range cases {
		if got := KgToMound(tc.kg); got != tc.want {
			t.Errorf("KgToMound(%v) = %v, want %v", tc.kg, got, tc.want)
		}
	}
}

func TestMoundToKg(t *testing.T) {
	cases := []struct {
		mound float64
		want  float64
	}{
		{1, 40},
		{0.5, 20},
		{0, 0},
		{2.25, 90},
	}
	for _, tc := range cases {
		if got := MoundToKg(tc.mound); got != tc.want {
			t.Errorf("MoundToKg(%v) = %v, want %v", tc.mound, got, tc.want)
		}
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, kg := range []float64{0, 0.01, 1, 7.3, 15, 39.99, 40, 123.456, 10000} {
		got := MoundToKg(KgToMound(kg))
		if math.Abs(got-kg) > 1e-9 {
			t.Errorf("round trip of %v kg drifted to %v", kg, got)
		}
	}
}
