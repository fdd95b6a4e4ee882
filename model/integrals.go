// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/matrix"
)

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// spinBlock lifts an N×N spatial matrix to the 2N×2N spin-orbital block diagonal.
func spinBlock[S matrix.Scalar](spatial *matrix.Dense[S]) (*matrix.Dense[S], error) {
	return matrix.BlockDiag(spatial, spatial)
}

// onSiteTensor returns the spin-orbital two-body tensor with value u on every
// listed site, in the four index patterns of the on-site interaction.
func onSiteTensor(sites int, u float64, at ...int) (*matrix.Tensor4[float64], error) {
	out, err := matrix.NewTensor4[float64](2 * sites)
	if err != nil {
		return nil, err
	}
	for _, i := range at {
		up, dn := i, sites+i
		for _, idx := range [][4]int{
			{up, dn, up, dn},
			{dn, up, dn, up},
			{up, up, up, up},
			{dn, dn, dn, dn},
		} {
			if err = out.Set(idx[0], idx[1], idx[2], idx[3], u); err != nil {
				return nil, fmt.Errorf("onSiteTensor: %w", err)
			}
		}
	}

	return out, nil
}

// spatialOnSite returns the N⁴ spatial tensor with value u at (i,i,i,i) for each listed site.
func spatialOnSite(sites int, u float64, at ...int) (*matrix.Tensor4[float64], error) {
	out, err := matrix.NewTensor4[float64](sites)
	if err != nil {
		return nil, err
	}
	for _, i := range at {
		if err = out.Set(i, i, i, i, u); err != nil {
			return nil, fmt.Errorf("spatialOnSite: %w", err)
		}
	}

	return out, nil
}
