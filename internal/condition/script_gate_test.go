package condition

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskforge/internal/config"
	"taskforge/internal/rustinfo"
	"taskforge/internal/script"
)

// These tests exercise the gate with a real script runner: the condition
// script leaves a marker file, so its (non-)execution is observable as a
// filesystem side effect.

func markerStep(marker string, cond *config.TaskCondition) *config.Step {
	return &config.Step{
		Name: "marked",
		Config: config.TaskConfig{
			Condition:       cond,
			ConditionScript: []string{"touch " + marker},
		},
	}
}

func TestScriptGate_RunsWhenCriteriaPass(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	marker := filepath.Join(t.TempDir(), "marker")
	e := NewEvaluator(script.NewQuietRunner())
	e.SetEnvLookup(mapEnv{})
	e.SetPlatformFunc(func() string { return "linux" })

	step := markerStep(marker, &config.TaskCondition{Platforms: []string{"linux"}})
	got := e.ValidateCondition(testFlow(rustinfo.RustInfo{}), step)

	assert.True(t, got)
	_, err := os.Stat(marker)
	assert.NoError(t, err, "condition script should have run")
}

func TestScriptGate_NeverRunsWhenCriteriaFail(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	marker := filepath.Join(t.TempDir(), "marker")
	e := NewEvaluator(script.NewQuietRunner())
	e.SetEnvLookup(mapEnv{})
	e.SetPlatformFunc(func() string { return "linux" })

	step := markerStep(marker, &config.TaskCondition{Platforms: []string{"windows"}})
	got := e.ValidateCondition(testFlow(rustinfo.RustInfo{}), step)

	require.False(t, got)
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "condition script must not run when criteria fail")
}
