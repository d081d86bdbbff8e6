// Package instance reads and writes the plain-text formats around the
// round solvers.
//
// An instance is "n m" followed by m pairs "u v" of 1-based server ids.
// A solve produces two artifacts: a rounds file holding a single integer
// and an allocation file holding "<id> <round>" for every server in id
// order. Both can be mirrored to a console stream while they are written.
// Lines starting with '#' are comments in every format.
package instance
