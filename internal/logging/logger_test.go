package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters(&out, &errOut, false)

	l.Info("scanning %s", "/lib")
	l.Warn("slow listing")
	l.Error("boom")

	assert.Contains(t, out.String(), "[INFO] scanning /lib")
	assert.Contains(t, out.String(), "[WARN] slow listing")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "[ERROR] boom")
}

func TestLoggerDebugGatedByVerbose(t *testing.T) {
	var quiet, chatty bytes.Buffer

	NewWithWriters(&quiet, &quiet, false).Debug("hidden")
	NewWithWriters(&chatty, &chatty, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, chatty.String(), "[DEBUG] shown")
}
