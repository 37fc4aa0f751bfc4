package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"check vendor open items", "check_vendor_open_items"},
		{"SE16H: BSIK / UMSKZ=A", "SE16H__BSIK___UMSKZ_A"},
		{"", "run"},
		{"///", "run"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSanitize_TruncatesLongNames(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, sanitize(string(long)), 60)
}

func TestNewAdapter_WritesToTempDir(t *testing.T) {
	cfg := DefaultConfig("unit test run")
	cfg.Dir = t.TempDir()

	log, err := NewAdapter(cfg)
	assert.NoError(t, err)

	log.Info("message", "key", "value")
	log.WithField("run_id", "abc").Debug("scoped")
	log.Close()
}
