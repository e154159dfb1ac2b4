package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty defaults", input: "", want: DefaultProfile},
		{name: "whitespace only defaults", input: "   ", want: DefaultProfile},
		{name: "lowercased", input: "Production", want: "production"},
		{name: "trimmed", input: "  ci  ", want: "ci"},
		{name: "already canonical", input: "development", want: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestGet_Default(t *testing.T) {
	t.Setenv(EnvVarName, "")
	assert.Equal(t, DefaultProfile, Get())
}

func TestGet_FromEnv(t *testing.T) {
	t.Setenv(EnvVarName, "CI")
	assert.Equal(t, "ci", Get())
}

func TestSet(t *testing.T) {
	t.Setenv(EnvVarName, "")

	got := Set("  Staging ")

	assert.Equal(t, "staging", got)
	assert.Equal(t, "staging", Get())
}
