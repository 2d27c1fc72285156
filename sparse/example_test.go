// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/sparse"
)

// ExampleMatrix_Mul multiplies two small integer matrices.
func ExampleMatrix_Mul() {
	a, _ := sparse.FromRows([][]int{{1, 2}, {0, 3}})
	b, _ := sparse.FromRows([][]int{{4, 0}, {0, 5}})

	p, _ := a.Mul(b)
	fmt.Print(p)
	fmt.Println("stored:", p.RealSize())
	// Output:
	// 4 10
	// 0 15
	// stored: 3
}

// ExampleVector_Set shows that assigning zero frees the slot.
func ExampleVector_Set() {
	v, _ := sparse.NewVector[float64](4)
	_ = v.Set(2, 1.5)
	fmt.Println(v, v.RealSize())

	_ = v.Set(2, 0)
	fmt.Println(v, v.RealSize())
	// Output:
	// 0 0 1.5 0 1
	// 0 0 0 0 0
}

// ExampleMatrix_RowOperation scales a row in place.
func ExampleMatrix_RowOperation() {
	m, _ := sparse.FromRows([][]float64{{2, 4}, {1, 1}})
	_ = m.RowOperation(0, 2, sparse.OpDivide)
	fmt.Print(m)

	err := m.RowOperation(0, 0, sparse.OpDivide)
	fmt.Println(err)
	// Output:
	// 1 2
	// 1 1
	// RowOperation(0, Divide): sparse: division by zero
}
