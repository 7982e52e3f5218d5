package freight

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		rate  float64
		want  float64
	}{
		{
			name:  "2 percent of 1000",
			value: 1000,
			rate:  2,
			want:  20,
		},
		{
			name:  "5 percent of 1000",
			value: 1000,
			rate:  5,
			want:  50,
		},
		{
			name:  "zero value",
			value: 0,
			rate:  2,
			want:  0,
		},
		{
			name:  "zero rate",
			value: 1500.50,
			rate:  0,
			want:  0,
		},
		{
			name:  "fractional rate",
			value: 200,
			rate:  2.5,
			want:  5,
		},
		{
			name:  "fractional value keeps precision",
			value: 123.45,
			rate:  3,
			want:  3.7035,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.value, tt.rate)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Compute(%v, %v) = %v, want %v", tt.value, tt.rate, got, tt.want)
			}
		})
	}
}
