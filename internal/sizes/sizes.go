// Package sizes provides unit-tagged integer size types so byte counts and
// kilobyte/megabyte thresholds cannot be mixed up silently. All conversions
// are truncating integer divisions.
package sizes

// Bytes is a raw byte count as reported by the filesystem.
type Bytes int64

// Kilobytes is a byte count divided down once by 1024.
type Kilobytes int64

// Megabytes is a byte count divided down twice by 1024.
type Megabytes int64

// Unit names the unit a threshold comparison happens in.
type Unit string

const (
	UnitBytes     Unit = "B"
	UnitKilobytes Unit = "KB"
	UnitMegabytes Unit = "MB"
)

// Kilobytes converts with a single truncating division.
func (b Bytes) Kilobytes() Kilobytes {
	return Kilobytes(b / 1024)
}

// Megabytes converts with two truncating divisions. This is intentionally
// not one division by 1,048,576: the two-step form is the comparison the
// rest of the system is calibrated against.
func (b Bytes) Megabytes() Megabytes {
	return Megabytes(b / 1024 / 1024)
}

// In returns the byte count expressed in u, truncating.
func (b Bytes) In(u Unit) int64 {
	switch u {
	case UnitKilobytes:
		return int64(b.Kilobytes())
	case UnitMegabytes:
		return int64(b.Megabytes())
	default:
		return int64(b)
	}
}
