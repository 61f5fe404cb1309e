package extremality

import (
	"math/big"

	"github.com/exactcut/groupfn/utils"
)

// sparseRow is a sparse linear form over the grid variables, column index
// to rational coefficient. The additivity system only ever has rows with
// at most three nonzero entries.
type sparseRow map[int]*big.Rat

// addScaled adds c times other to r in place and drops entries that
// cancel to zero.
func (r sparseRow) addScaled(c *big.Rat, other sparseRow) {
	for col, coef := range other {
		cur, ok := r[col]
		if !ok {
			cur = new(big.Rat)
			r[col] = cur
		}
		cur.Add(cur, new(big.Rat).Mul(c, coef))
		if cur.Sign() == 0 {
			delete(r, col)
		}
	}
}

func (r sparseRow) minCol() int {
	m := -1
	for col := range r {
		if m < 0 || col < m {
			m = col
		}
	}
	return m
}

// kernelBasis returns a basis of the null space of the homogeneous system
// rows over n variables, in reduced row echelon form with the smallest
// column of each row as its pivot. The basis is canonical: one vector per
// free column in ascending column order, each with coefficient one at its
// free column.
func kernelBasis(rows []sparseRow, n int) [][]*big.Rat {
	pivots := make(map[int]sparseRow)
	for _, row := range rows {
		r := make(sparseRow, len(row))
		for col, coef := range row {
			r[col] = new(big.Rat).Set(coef)
		}
		// eliminate every column that already has a pivot
		for {
			hit := -1
			for col := range r {
				if _, ok := pivots[col]; ok && (hit < 0 || col < hit) {
					hit = col
				}
			}
			if hit < 0 {
				break
			}
			r.addScaled(new(big.Rat).Neg(r[hit]), pivots[hit])
		}
		if len(r) == 0 {
			continue
		}
		p := r.minCol()
		inv := new(big.Rat).Inv(r[p])
		for col, coef := range r {
			r[col] = new(big.Rat).Mul(coef, inv)
		}
		pivots[p] = r
	}

	// back substitution to full reduced form, highest pivot first
	cols := utils.GetSortedKeys(pivots)
	for i := len(cols) - 1; i >= 0; i-- {
		row := pivots[cols[i]]
		p := cols[i]
		present := make([]int, 0, len(row))
		for col := range row {
			if col != p {
				present = append(present, col)
			}
		}
		for _, col := range present {
			if other, ok := pivots[col]; ok {
				row.addScaled(new(big.Rat).Neg(row[col]), other)
			}
		}
	}

	var basis [][]*big.Rat
	for free := 0; free < n; free++ {
		if _, ok := pivots[free]; ok {
			continue
		}
		v := make([]*big.Rat, n)
		for i := range v {
			v[i] = new(big.Rat)
		}
		v[free].SetInt64(1)
		for p, row := range pivots {
			if coef, ok := row[free]; ok {
				v[p].Neg(coef)
			}
		}
		basis = append(basis, v)
	}
	return basis
}
