package outcome

// Reason is the closed set of structured failure causes a pipeline stage can
// report. The first two are genuine user/environment errors and carry a
// visible message; the rest mean "nothing matched the cleanup criteria this
// run" and are deliberately silent.
type Reason int

const (
	ReasonNone Reason = iota
	PathNameCannotBeEmpty
	DirectoryNotFound
	FilesNotFound
	NoLeafNodesFound
	SubdirectoriesDoNotExist
	SubdirectoriesBelowThresholdDoNotExist
)

// Message maps a reason to its user-facing text. Expected criteria-miss
// reasons map to the empty string so the CLI stays quiet and exits zero.
func (r Reason) Message() string {
	switch r {
	case PathNameCannotBeEmpty:
		return "path name cannot be empty"
	case DirectoryNotFound:
		return "directory not found"
	default:
		return ""
	}
}

// String returns the reason's identifier for debug logging.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case PathNameCannotBeEmpty:
		return "path name cannot be empty"
	case DirectoryNotFound:
		return "directory not found"
	case FilesNotFound:
		return "no orphaned files found"
	case NoLeafNodesFound:
		return "no leaf directories found"
	case SubdirectoriesDoNotExist:
		return "no subdirectories exist"
	case SubdirectoriesBelowThresholdDoNotExist:
		return "no directories below threshold"
	default:
		return "unknown"
	}
}
