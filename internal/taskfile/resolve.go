package taskfile

import (
	"fmt"

	"taskforge/internal/config"
	"taskforge/internal/platform"
)

// maxAliasDepth bounds alias chains. Chains deeper than this are treated as
// loops even if they would eventually terminate.
const maxAliasDepth = 10

// Resolver follows task aliases to a concrete task definition.
//
// A task may declare a generic alias plus per-platform overrides; the alias
// matching the current platform wins, then the generic alias, then the task
// itself. Use [NewResolver] for the current host platform.
type Resolver struct {
	taskfile *Taskfile

	// platformName is injected for tests; defaults to platform.Name.
	platformName func() string
}

// NewResolver creates a Resolver over the given task file for the current
// host platform.
func NewResolver(tf *Taskfile) *Resolver {
	return &Resolver{
		taskfile:     tf,
		platformName: platform.Name,
	}
}

// SetPlatformFunc overrides platform detection. Intended for tests.
func (r *Resolver) SetPlatformFunc(fn func() string) {
	r.platformName = fn
}

// Resolve returns the concrete [config.Step] for a task name, following
// alias chains.
//
// Returns [ErrTaskNotFound] when the name (or any alias target) is not
// defined, and [ErrAliasLoop] when the alias chain cycles.
func (r *Resolver) Resolve(name string) (*config.Step, error) {
	current := name
	for depth := 0; depth <= maxAliasDepth; depth++ {
		task, ok := r.taskfile.Tasks[current]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, current)
		}

		target := r.aliasTarget(task)
		if target == "" || target == current {
			return &config.Step{Name: current, Config: task}, nil
		}

		current = target
	}

	return nil, fmt.Errorf("%w: starting at %s", ErrAliasLoop, name)
}

// aliasTarget picks the alias for the current platform, if any.
func (r *Resolver) aliasTarget(task config.TaskConfig) string {
	var platformAlias string
	switch r.platformName() {
	case "linux":
		platformAlias = task.LinuxAlias
	case "mac":
		platformAlias = task.MacAlias
	case "windows":
		platformAlias = task.WindowsAlias
	}

	if platformAlias != "" {
		return platformAlias
	}
	return task.Alias
}
