package hemicube

import "github.com/df07/go-radiosity/pkg/core"

// multiplier holds the precomputed per-cell weight for one hemicube face.
// A weight compensates for the face's foreshortening relative to the
// hemisphere (the dot product with the face normal) and applies Lambert's
// cosine law relative to the patch normal, so that summing
// weight*exitance over every cell a patch is visible through approximates
// that patch's form factor contribution.
type multiplier struct {
	rows, cols int
	weights    []float64
	sum        float64
}

// buildMultiplier fires one ray per cell of a numRows x numCols face,
// starting at startingPoint and stepping along row/col (normalized here and
// scaled to one cell step of 1/subdivisions), and records the Lambertian
// weight at each cell.
func buildMultiplier(centerPoint, startingPoint core.Point, patchNormal, faceNormal, row, col core.Vector, numRows, numCols, subdivisions int) *multiplier {
	row.Normalize()
	col.Normalize()
	dp := 1.0 / float64(subdivisions)
	row = row.Multiply(dp)
	col = col.Multiply(dp)

	m := &multiplier{rows: numRows, cols: numCols, weights: make([]float64, 0, numRows*numCols)}

	e := row.Add(col).Multiply(0.5).Translate(startingPoint)
	for r := 0; r < numRows; r++ {
		f := e
		for c := 0; c < numCols; c++ {
			ray := core.VectorBetween(f, centerPoint)
			ray.Normalize()

			value := ray.Dot(faceNormal)
			value *= ray.Dot(patchNormal)

			m.weights = append(m.weights, value)
			m.sum += value

			f = col.Translate(f)
		}
		e = row.Translate(e)
	}
	return m
}

// normalize divides every weight (and the running sum) by factor, so that
// the five faces together sum to 1.
func (m *multiplier) normalize(factor float64) {
	for i := range m.weights {
		m.weights[i] /= factor
	}
	m.sum /= factor
}

func (m *multiplier) weightAt(row, col int) float64 {
	return m.weights[row*m.cols+col]
}
