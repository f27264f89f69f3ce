// Package coe reads and writes Xilinx COE memory initialization files, and
// the MIF simulation files derived from them.
package coe

// Policy selects how encoded bytes are wrapped into rows.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	// POLICY_REFLOW ignores instruction boundaries: every row holds exactly
	// Width bytes, except possibly the last.
	POLICY_REFLOW = Policy(0) // reflow
	// POLICY_STREAM keeps each instruction on one row, ending the row only
	// when the running byte count is an exact multiple of Width.
	POLICY_STREAM = Policy(1) // stream
)

// ParsePolicy returns the Policy named by its String() form.
func ParsePolicy(name string) (policy Policy, err error) {
	switch name {
	case POLICY_REFLOW.String():
		policy = POLICY_REFLOW
	case POLICY_STREAM.String():
		policy = POLICY_STREAM
	default:
		err = ErrPolicyInvalid(name)
	}
	return
}
