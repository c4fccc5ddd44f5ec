package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_At(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int{10, 20, 30}}

	value, err := mem.At(0)
	assert.NoError(err)
	assert.Equal(10, value)

	value, err = mem.At(2)
	assert.NoError(err)
	assert.Equal(30, value)

	_, err = mem.At(3)
	assert.ErrorIs(err, ErrMemoryRange)

	_, err = mem.At(-1)
	assert.ErrorIs(err, ErrMemoryRange)
}

func TestMemory_Set(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int{1, 2}}

	err := mem.Set(1, 9)
	assert.NoError(err)
	assert.Equal([]int{1, 9}, mem.Cells)

	err = mem.Set(2, 9)
	assert.ErrorIs(err, ErrMemoryRange)
	assert.Equal([]int{1, 9}, mem.Cells)
}

func TestMemory_Insert(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int{1, 2}}

	// Append at the end is legal.
	err := mem.Insert(2, 3)
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, mem.Cells)

	// Insert in the middle shifts later cells right.
	err = mem.Insert(1, 9)
	assert.NoError(err)
	assert.Equal([]int{1, 9, 2, 3}, mem.Cells)

	err = mem.Insert(5, 9)
	assert.ErrorIs(err, ErrInsertRange)
	assert.Equal([]int{1, 9, 2, 3}, mem.Cells)

	err = mem.Insert(-1, 9)
	assert.ErrorIs(err, ErrInsertRange)
}

func TestMemory_Insert_Empty(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	err := mem.Insert(0, 7)
	assert.NoError(err)
	assert.Equal([]int{7}, mem.Cells)
}

func TestMemory_Erase(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int{4, 5, 6}}

	err := mem.Erase(1)
	assert.NoError(err)
	assert.Equal([]int{4, 6}, mem.Cells)

	err = mem.Erase(2)
	assert.ErrorIs(err, ErrMemoryRange)
	assert.Equal([]int{4, 6}, mem.Cells)
}

func TestMemory_Snapshot(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int{1, 2}}

	snap := mem.Snapshot()
	assert.Equal([]int{1, 2}, snap)

	// The snapshot is a copy, not a live view.
	snap[0] = 99
	assert.Equal([]int{1, 2}, mem.Cells)
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	initial := []int{1, 2}
	mem := &Memory{}
	mem.Load(initial)

	// The machine owns its cells; the caller's slice is not aliased.
	initial[0] = 99
	assert.Equal([]int{1, 2}, mem.Cells)
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int{1, 2}}
	mem.Reset()
	assert.Equal(0, mem.Size())
}
