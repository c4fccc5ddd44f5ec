package vm

import (
	"slices"
)

// Memory is the machine's data memory: an ordered, 0-indexed, resizable
// sequence of signed integer cells. Size changes only via Insert and
// Erase; all other accessors require the location to already exist.
type Memory struct {
	Cells []int
}

// Valid returns true if the location names an existing cell.
func (mem *Memory) Valid(location int) bool {
	return location >= 0 && location < len(mem.Cells)
}

// Size returns the number of cells.
func (mem *Memory) Size() int {
	return len(mem.Cells)
}

// At returns the value at the location.
func (mem *Memory) At(location int) (value int, err error) {
	if !mem.Valid(location) {
		err = ErrMemoryRange
		return
	}

	value = mem.Cells[location]
	return
}

// Set stores a value at an existing location.
func (mem *Memory) Set(location int, value int) (err error) {
	if !mem.Valid(location) {
		err = ErrMemoryRange
		return
	}

	mem.Cells[location] = value
	return
}

// Insert places a value at the location, shifting later cells right.
// The location may equal the current size, appending at the end.
func (mem *Memory) Insert(location int, value int) (err error) {
	if location < 0 || location > len(mem.Cells) {
		err = ErrInsertRange
		return
	}

	mem.Cells = slices.Insert(mem.Cells, location, value)
	return
}

// Erase removes the cell at an existing location, shifting later cells left.
func (mem *Memory) Erase(location int) (err error) {
	if !mem.Valid(location) {
		err = ErrMemoryRange
		return
	}

	mem.Cells = slices.Delete(mem.Cells, location, location+1)
	return
}

// Snapshot returns a value copy of the cells, never the live slice.
func (mem *Memory) Snapshot() []int {
	return slices.Clone(mem.Cells)
}

// Load replaces the cells with a copy of the initial contents.
func (mem *Memory) Load(initial []int) {
	mem.Cells = slices.Clone(initial)
}

// Reset empties the memory.
func (mem *Memory) Reset() {
	mem.Cells = nil
}
