package vm

// Status is the machine lifecycle state.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_WAITING = Status(0) // WAITING
	STATUS_READY   = Status(1) // READY
	STATUS_RUNNING = Status(2) // RUNNING
	STATUS_HALTED  = Status(3) // HALTED
	STATUS_ERRORED = Status(4) // ERRORED
)

// Terminal returns true if the status can only be left via Reset.
func (st Status) Terminal() bool {
	return st == STATUS_HALTED || st == STATUS_ERRORED
}
