package pipeline

import "github.com/backmassage/mediasweep/internal/sizes"

// RunStats summarizes one run: how many candidates were found and how many
// bytes they held at listing time. Deleted stays zero on preview runs.
type RunStats struct {
	Candidates int
	Deleted    int
	Bytes      sizes.Bytes
}
