package embedding

import "math"

// Cosine computes the cosine similarity of two vectors, rounded to 4 decimal
// places. An absent (nil or empty) vector on either side yields 0, as does a
// zero-norm vector. Both vectors must come from the same embedding space;
// dimensionality is not validated here.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		sim = 0
	}

	return math.Round(sim*10000) / 10000
}
