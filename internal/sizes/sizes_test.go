package sizes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionsTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     Bytes
		wantKB Kilobytes
		wantMB Megabytes
	}{
		{"zero", 0, 0, 0},
		{"below one KB", 1023, 0, 0},
		{"exactly one KB", 1024, 1, 0},
		{"just under one MB", 1024*1024 - 1, 1023, 0},
		{"exactly one MB", 1024 * 1024, 1024, 1},
		{"hundred MB minus one byte", 100*1024*1024 - 1, 100*1024 - 1, 99},
		{"hundred MB", 100 * 1024 * 1024, 100 * 1024, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKB, tt.in.Kilobytes())
			assert.Equal(t, tt.wantMB, tt.in.Megabytes())
		})
	}
}

func TestIn(t *testing.T) {
	b := Bytes(5 * 1024 * 1024)
	assert.Equal(t, int64(5*1024*1024), b.In(UnitBytes))
	assert.Equal(t, int64(5*1024), b.In(UnitKilobytes))
	assert.Equal(t, int64(5), b.In(UnitMegabytes))
}
