// Package config provides the taskforge data model and settings loading.
//
// Two kinds of configuration meet here:
//   - Tool settings ([Config]), loaded by [Loader] via Viper with TASKFORGE_
//     environment overrides.
//   - Task definitions ([TaskConfig] and the condition structures), parsed
//     from the task file by the taskfile package.
//
// Condition structures are immutable snapshots: every field is optional and
// an absent field means "no constraint" for that dimension. Absence is
// encoded explicitly (nil slices, nil maps, nil pointers), never via
// sentinel values.
package config

import (
	"runtime"

	"taskforge/internal/rustinfo"
)

// Config represents the tool settings loaded by [Loader].
type Config struct {
	// Taskfile is an explicit path to the task definition file.
	// Empty means auto-discovery (see the taskfile package).
	Taskfile string `mapstructure:"taskfile"`

	// DefaultScriptRunner is the interpreter used for task and condition
	// scripts that do not name their own runner.
	// Default: "sh" ("cmd.exe" on windows).
	DefaultScriptRunner string `mapstructure:"default_script_runner"`

	// Output contains terminal output settings.
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig contains terminal output settings.
type OutputConfig struct {
	// Color controls styled output. Default: true.
	Color bool `mapstructure:"color"`
}

// DefaultConfig returns a new [Config] with defaults that work without any
// configuration file.
func DefaultConfig() *Config {
	return &Config{
		DefaultScriptRunner: defaultScriptRunner(),
		Output: OutputConfig{
			Color: true,
		},
	}
}

func defaultScriptRunner() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "sh"
}

// TaskConfig is a single task definition from the task file.
type TaskConfig struct {
	// Description is shown by `taskforge list`.
	Description string `yaml:"description,omitempty" mapstructure:"description"`

	// Script is the task body: shell script lines executed when the task runs
	// and its condition holds.
	Script []string `yaml:"script,omitempty" mapstructure:"script"`

	// ScriptRunner is the interpreter for Script and ConditionScript.
	// Empty means the configured default runner.
	ScriptRunner string `yaml:"script_runner,omitempty" mapstructure:"script_runner"`

	// Condition gates execution of this task. Nil means always run.
	Condition *TaskCondition `yaml:"condition,omitempty" mapstructure:"condition"`

	// ConditionScript is an optional script whose exit status gates
	// execution: status 0 allows the task, anything else skips it. It only
	// runs after Condition (if any) already passed.
	ConditionScript []string `yaml:"condition_script,omitempty" mapstructure:"condition_script"`

	// Alias redirects this task name to another task. The platform-specific
	// aliases win over Alias on their platform.
	Alias        string `yaml:"alias,omitempty" mapstructure:"alias"`
	LinuxAlias   string `yaml:"linux_alias,omitempty" mapstructure:"linux_alias"`
	MacAlias     string `yaml:"mac_alias,omitempty" mapstructure:"mac_alias"`
	WindowsAlias string `yaml:"windows_alias,omitempty" mapstructure:"windows_alias"`
}

// TaskCondition is the declarative gate attached to a task.
//
// Every field is optional; an absent field imposes no constraint. All present
// constraints must hold for the condition to pass.
type TaskCondition struct {
	// Platforms lists accepted platform identifiers ("linux", "mac",
	// "windows").
	Platforms []string `yaml:"platforms,omitempty" mapstructure:"platforms"`

	// Profiles lists accepted build profile names.
	Profiles []string `yaml:"profiles,omitempty" mapstructure:"profiles"`

	// Channels lists accepted toolchain channels ("stable", "beta",
	// "nightly").
	Channels []string `yaml:"channels,omitempty" mapstructure:"channels"`

	// Env maps environment variable names to required exact values.
	Env map[string]string `yaml:"env,omitempty" mapstructure:"env"`

	// EnvSet lists environment variables that must be present.
	EnvSet []string `yaml:"env_set,omitempty" mapstructure:"env_set"`

	// EnvNotSet lists environment variables that must be absent.
	EnvNotSet []string `yaml:"env_not_set,omitempty" mapstructure:"env_not_set"`

	// RustVersion constrains the installed toolchain version.
	RustVersion *RustVersionCondition `yaml:"rust_version,omitempty" mapstructure:"rust_version"`
}

// RustVersionCondition is a version range constraint. Min and Max are
// inclusive bounds; Equal is an exact pin. Any subset may be present.
type RustVersionCondition struct {
	Min   *string `yaml:"min,omitempty" mapstructure:"min"`
	Max   *string `yaml:"max,omitempty" mapstructure:"max"`
	Equal *string `yaml:"equal,omitempty" mapstructure:"equal"`
}

// Step is one task invocation: a resolved task name plus its definition.
type Step struct {
	Name   string
	Config TaskConfig
}

// EnvInfo captures the ambient toolchain facts for a run.
type EnvInfo struct {
	RustInfo rustinfo.RustInfo
}

// FlowInfo is the execution context shared by every step of a run.
// It is constructed once per run and read-only afterwards.
type FlowInfo struct {
	Config  *Config
	EnvInfo EnvInfo
}
