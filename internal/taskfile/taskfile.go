// Package taskfile reads task definitions from the taskforge task file.
//
// The task file is YAML mapping task names to their configuration:
//
//	tasks:
//	  build:
//	    description: Compile the project
//	    script:
//	      - cargo build
//	  build-nightly:
//	    condition:
//	      channels: [nightly]
//	    script:
//	      - cargo build --all-features
//
// Key types:
//   - [Taskfile] holds the parsed task map
//   - [Resolver] follows task aliases (including per-platform aliases) to a
//     concrete task
package taskfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"taskforge/internal/config"
)

// EnvVarName is the environment variable overriding the task file location.
const EnvVarName = "TASKFORGE_TASKFILE"

// DiscoveryPaths lists the file names searched (in priority order) when no
// explicit task file path is given.
var DiscoveryPaths = []string{
	"taskforge.yaml",
	".taskforge.yaml",
}

// Sentinel errors for task lookup.
var (
	// ErrTaskNotFound indicates the requested task name (or an alias target)
	// is not defined in the task file.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAliasLoop indicates a cycle in the alias chain.
	ErrAliasLoop = errors.New("alias loop detected")
)

// Taskfile holds the task definitions parsed from one task file.
type Taskfile struct {
	// Tasks maps task names to their configuration.
	Tasks map[string]config.TaskConfig `yaml:"tasks"`
}

// ResolvePath determines the task file location.
//
// Resolution order:
//  1. TASKFORGE_TASKFILE environment variable (used as-is if set)
//  2. Explicit path parameter (if non-empty, e.g. from --taskfile or config)
//  3. Auto-discovery of [DiscoveryPaths] under basePath
//  4. Falls back to taskforge.yaml (will error on read if absent)
//
// basePath is the directory to search; empty means the current directory.
func ResolvePath(basePath, explicit string) string {
	if envPath := os.Getenv(EnvVarName); envPath != "" {
		return envPath
	}

	if explicit != "" {
		return explicit
	}

	for _, p := range DiscoveryPaths {
		fullPath := filepath.Join(basePath, p)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath
		}
	}

	return filepath.Join(basePath, DiscoveryPaths[0])
}

// Load reads and parses the task file at path.
func Load(path string) (*Taskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var tf Taskfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse task file %s: %w", path, err)
	}

	if tf.Tasks == nil {
		tf.Tasks = map[string]config.TaskConfig{}
	}

	return &tf, nil
}

// Names returns all defined task names in unspecified order.
func (t *Taskfile) Names() []string {
	names := make([]string, 0, len(t.Tasks))
	for name := range t.Tasks {
		names = append(names, name)
	}
	return names
}
