// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/image/math/f64"

const opToMat4 = "ToMat4"

// ToMat4 exports a 4×4 matrix as an x/image f64.Mat4
// (row major: element (r, c) lands at index 4*r + c).
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize (m is not 4×4).
func ToMat4(m Matrix) (f64.Mat4, error) {
	var out f64.Mat4
	if err := ValidateSize(m, 4, 4); err != nil {
		return out, matrixErrorf(opToMat4, err)
	}
	if dm, ok := m.(*Dense); ok {
		copy(out[:], dm.data)
		return out, nil
	}
	var err error
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if out[4*r+c], err = m.At(r, c); err != nil {
				return f64.Mat4{}, matrixErrorf(opToMat4, err)
			}
		}
	}

	return out, nil
}

// FromMat4 imports an x/image f64.Mat4 as a 4×4 Dense.
func FromMat4(m f64.Mat4) *Dense { return transform4([16]float64(m)) }
