package embedding

import "testing"

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{"Identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"Scaled copy", []float32{1, 2}, []float32{2, 4}, 1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"Opposite clamps to zero", []float32{1, 0}, []float32{-1, 0}, 0},
		{"Rounded to four decimals", []float32{1, 0}, []float32{1, 1}, 0.7071},
		{"Nil left", nil, []float32{1, 2}, 0},
		{"Nil right", []float32{1, 2}, nil, 0},
		{"Both nil", nil, nil, 0},
		{"Zero norm", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); got != tt.want {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCosineSymmetric(t *testing.T) {
	a := []float32{0.3, -0.1, 0.9}
	b := []float32{0.2, 0.5, 0.4}
	if Cosine(a, b) != Cosine(b, a) {
		t.Errorf("Cosine(a, b) = %v, Cosine(b, a) = %v, want equal", Cosine(a, b), Cosine(b, a))
	}
}
