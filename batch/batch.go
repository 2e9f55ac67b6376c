package batch

import (
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

//Batch is a fixed size grid of bits where row i holds message i.
// The dimensions never change once created, any transformation produces a new Batch.
type Batch struct {
	bits mat.SparseMat
}

//New creates a rows x cols batch with every bit cleared.
func New(rows, cols int) *Batch {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("batch dimensions must be >0 but found (%v, %v)", rows, cols))
	}
	return &Batch{bits: mat.CSRMat(rows, cols)}
}

//FromRows creates a batch from the given rows, all rows must have the same length.
func FromRows(rows ...[]int) *Batch {
	if len(rows) == 0 {
		panic("at least one row is required")
	}
	b := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			panic(fmt.Sprintf("row length == %v required but found %v for row %v", len(rows[0]), len(row), i))
		}
		for j, bit := range row {
			b.Set(i, j, bit)
		}
	}
	return b
}

func (b *Batch) Dims() (rows, cols int) {
	return b.bits.Dims()
}

func (b *Batch) At(i, j int) int {
	return b.bits.At(i, j)
}

//Set stores bit at (i,j); bit must be 0 or 1.
func (b *Batch) Set(i, j, bit int) {
	if bit != 0 && bit != 1 {
		panic(fmt.Sprintf("bit value must be 0 or 1 but found %v", bit))
	}
	b.bits.Set(i, j, bit)
}

//Flip inverts the bit at (i,j).
func (b *Batch) Flip(i, j int) {
	b.bits.Set(i, j, b.bits.At(i, j)^1)
}

func (b *Batch) Copy() *Batch {
	return &Batch{bits: mat.CSRMatCopy(b.bits)}
}

//Row returns a copy of the bits in row i.
func (b *Batch) Row(i int) []int {
	_, cols := b.Dims()
	row := make([]int, cols)
	for j := range row {
		row[j] = b.bits.At(i, j)
	}
	return row
}

//Region returns a copy of the top left rows x cols of the batch.
func (b *Batch) Region(rows, cols int) *Batch {
	r, c := b.Dims()
	if rows <= 0 || cols <= 0 || rows > r || cols > c {
		panic(fmt.Sprintf("region (%v, %v) must fit inside (%v, %v)", rows, cols, r, c))
	}
	return &Batch{bits: mat.CSRMatCopy(b.bits.Slice(0, 0, rows, cols))}
}

//Grow returns a rows x cols copy of the batch with the original bits in the top left
// and every new bit cleared.
func (b *Batch) Grow(rows, cols int) *Batch {
	r, c := b.Dims()
	if rows < r || cols < c {
		panic(fmt.Sprintf("grow (%v, %v) must be at least (%v, %v)", rows, cols, r, c))
	}
	result := New(rows, cols)
	result.bits.SetMatrix(b.bits, 0, 0)
	return result
}

//RowParity returns the GF(2) sum of every row, that is B*1.
func (b *Batch) RowParity() mat.SparseVector {
	rows, cols := b.Dims()
	parity := mat.CSRVec(rows)
	parity.MatMul(b.bits, ones(cols))
	return parity
}

//ColumnParity returns the GF(2) sum of every column, that is 1*B.
func (b *Batch) ColumnParity() mat.SparseVector {
	rows, cols := b.Dims()
	parity := mat.DOKVec(cols)
	parity.MulMat(ones(rows), b.bits)
	return parity
}

func (b *Batch) Equals(other *Batch) bool {
	if other == nil {
		return false
	}
	r1, c1 := b.Dims()
	r2, c2 := other.Dims()
	if r1 != r2 || c1 != c2 {
		return false
	}
	return b.bits.Equals(other.bits)
}

func (b *Batch) String() string {
	rows, cols := b.Dims()
	buf := strings.Builder{}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(fmt.Sprint(b.bits.At(i, j)))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

func ones(n int) mat.SparseVector {
	v := mat.CSRVec(n)
	for i := 0; i < n; i++ {
		v.Set(i, 1)
	}
	return v
}
