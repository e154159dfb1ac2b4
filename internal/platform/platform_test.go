package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFor(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{goos: "linux", want: "linux"},
		{goos: "darwin", want: "mac"},
		{goos: "windows", want: "windows"},
		{goos: "freebsd", want: "linux"},
		{goos: "openbsd", want: "linux"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, nameFor(tt.goos))
		})
	}
}

func TestName(t *testing.T) {
	// Whatever the host is, the result must be one of the three
	// identifiers conditions can match against.
	assert.Contains(t, []string{"linux", "mac", "windows"}, Name())
}
