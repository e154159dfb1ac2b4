// Package condition decides whether a task may run in the current execution
// context.
//
// A task carries an optional declarative [config.TaskCondition] (platform,
// profile, toolchain channel, environment and toolchain-version constraints)
// and an optional condition script. The [Evaluator] combines both into a
// single boolean: the structural criteria are checked first, in a fixed
// order with short-circuit AND, and only if they all hold is the condition
// script executed. Every failure mode is absorbed into the boolean; the
// evaluator never returns an error.
//
// The evaluator reads ambient state (environment variables, platform,
// profile) through injectable providers so tests can substitute fixed
// snapshots; see [Evaluator.SetEnvLookup] and friends.
package condition

import (
	"log/slog"
	"os"
	"slices"

	"taskforge/internal/config"
	"taskforge/internal/platform"
	"taskforge/internal/profile"
	"taskforge/internal/rustinfo"
	"taskforge/internal/version"
)

// EnvLookup is the interface for reading environment variables.
//
// The production implementation is the process environment; tests use a
// fixed map so evaluation never depends on real process state.
type EnvLookup interface {
	// LookupEnv retrieves the value of the named variable and whether it is
	// present, with os.LookupEnv semantics.
	LookupEnv(key string) (string, bool)
}

// osEnv reads the real process environment.
type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ScriptRunner is the interface for executing condition scripts.
//
// Run executes the script lines with the named interpreter and returns the
// process exit status; 0 means the gate passes. The [script.Runner] type
// implements this interface.
type ScriptRunner interface {
	Run(script []string, runner string) int
}

// Evaluator evaluates task conditions.
//
// Evaluation is stateless: the evaluator holds only its collaborators, so a
// single instance may serve concurrent step decisions. Use [NewEvaluator]
// to create one with production defaults.
type Evaluator struct {
	env     EnvLookup
	scripts ScriptRunner

	// platformName and profileName are injected for tests.
	platformName func() string
	profileName  func() string

	logger *slog.Logger
}

// NewEvaluator creates an Evaluator using the process environment, host
// platform and active profile, with scripts executed by the given runner.
func NewEvaluator(scripts ScriptRunner) *Evaluator {
	return &Evaluator{
		env:          osEnv{},
		scripts:      scripts,
		platformName: platform.Name,
		profileName:  profile.Get,
		logger:       slog.Default(),
	}
}

// SetEnvLookup substitutes the environment provider. Intended for tests.
func (e *Evaluator) SetEnvLookup(env EnvLookup) {
	e.env = env
}

// SetPlatformFunc substitutes platform detection. Intended for tests.
func (e *Evaluator) SetPlatformFunc(fn func() string) {
	e.platformName = fn
}

// SetProfileFunc substitutes profile lookup. Intended for tests.
func (e *Evaluator) SetProfileFunc(fn func() string) {
	e.profileName = fn
}

// SetLogger substitutes the diagnostic logger.
func (e *Evaluator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// ValidateCondition reports whether the step may run in the given flow
// context.
//
// The structural criteria are evaluated first; the condition script is
// executed only when they pass, so a step ruled out by its declarative
// condition never observes the script's side effects.
func (e *Evaluator) ValidateCondition(flow *config.FlowInfo, step *config.Step) bool {
	return e.validateCriteria(flow, step) && e.validateScript(flow, step)
}

// validateCriteria checks the declarative condition, if any. The checks run
// in a fixed order with short-circuit AND; the order only affects which
// diagnostic fires first, since all must hold.
func (e *Evaluator) validateCriteria(flow *config.FlowInfo, step *config.Step) bool {
	cond := step.Config.Condition
	if cond == nil {
		return true
	}

	e.logger.Debug("checking task condition structure", "task", step.Name)

	return e.validatePlatform(cond) &&
		e.validateProfile(cond) &&
		e.validateChannel(cond, flow) &&
		e.validateEnv(cond) &&
		e.validateEnvSet(cond) &&
		e.validateEnvNotSet(cond) &&
		e.validateRustVersion(cond, flow)
}

// validateScript runs the condition script, if any, and maps its exit
// status to a boolean. Script output is not shown; the runner supplied at
// construction decides where (if anywhere) it goes.
func (e *Evaluator) validateScript(flow *config.FlowInfo, step *config.Step) bool {
	if len(step.Config.ConditionScript) == 0 {
		return true
	}

	e.logger.Debug("checking task condition script", "task", step.Name)

	runner := step.Config.ScriptRunner
	if runner == "" && flow.Config != nil {
		runner = flow.Config.DefaultScriptRunner
	}

	status := e.scripts.Run(step.Config.ConditionScript, runner)
	if status != 0 {
		e.logger.Debug("condition script failed", "task", step.Name, "exit_status", status)
		return false
	}
	return true
}

func (e *Evaluator) validatePlatform(cond *config.TaskCondition) bool {
	if cond.Platforms == nil {
		return true
	}

	current := e.platformName()
	if !slices.Contains(cond.Platforms, current) {
		e.logger.Debug("failed platform condition", "current_platform", current)
		return false
	}
	return true
}

func (e *Evaluator) validateProfile(cond *config.TaskCondition) bool {
	if cond.Profiles == nil {
		return true
	}

	current := e.profileName()
	if !slices.Contains(cond.Profiles, current) {
		e.logger.Debug("failed profile condition", "current_profile", current)
		return false
	}
	return true
}

// validateChannel checks toolchain channel membership. An unknown channel
// cannot satisfy a channel constraint, so it fails rather than passes.
func (e *Evaluator) validateChannel(cond *config.TaskCondition, flow *config.FlowInfo) bool {
	if cond.Channels == nil {
		return true
	}

	channel := flow.EnvInfo.RustInfo.Channel
	if !channel.IsKnown() {
		e.logger.Debug("failed channel condition", "current_channel", "unknown")
		return false
	}

	if !slices.Contains(cond.Channels, channel.Name()) {
		e.logger.Debug("failed channel condition", "current_channel", channel.Name())
		return false
	}
	return true
}

// validateEnv requires every listed variable to be present with exactly the
// expected value.
func (e *Evaluator) validateEnv(cond *config.TaskCondition) bool {
	for key, expected := range cond.Env {
		value, found := e.env.LookupEnv(key)
		if !found || value != expected {
			e.logger.Debug("failed env condition", "key", key)
			return false
		}
	}
	return true
}

// validateEnvSet requires every listed variable to be present, value
// irrelevant.
func (e *Evaluator) validateEnvSet(cond *config.TaskCondition) bool {
	for _, key := range cond.EnvSet {
		if _, found := e.env.LookupEnv(key); !found {
			e.logger.Debug("failed env_set condition", "key", key)
			return false
		}
	}
	return true
}

// validateEnvNotSet requires every listed variable to be absent.
func (e *Evaluator) validateEnvNotSet(cond *config.TaskCondition) bool {
	for _, key := range cond.EnvNotSet {
		if _, found := e.env.LookupEnv(key); found {
			e.logger.Debug("failed env_not_set condition", "key", key)
			return false
		}
	}
	return true
}

func (e *Evaluator) validateRustVersion(cond *config.TaskCondition, flow *config.FlowInfo) bool {
	if cond.RustVersion == nil {
		return true
	}
	if !e.validateRustVersionCondition(flow.EnvInfo.RustInfo, *cond.RustVersion) {
		e.logger.Debug("failed rust version condition",
			"current_version", flow.EnvInfo.RustInfo.Version)
		return false
	}
	return true
}

// validateRustVersionCondition checks the version range against the current
// toolchain version.
//
// When the current version is unknown the check passes unconditionally:
// version constraints cannot be evaluated without a known version, and the
// policy is to not block execution in that case. Min and Max are inclusive
// bounds (exact string match or strictly ordered); Equal is an exact pin. A
// malformed bound or current version fails its sub-condition through
// [version.IsNewer]'s fail-closed parsing.
func (e *Evaluator) validateRustVersionCondition(info rustinfo.RustInfo, cond config.RustVersionCondition) bool {
	current := info.Version
	if current == "" {
		return true
	}

	valid := true
	if cond.Min != nil {
		valid = *cond.Min == current || version.IsNewer(current, *cond.Min, true)
	}

	if valid && cond.Max != nil {
		valid = *cond.Max == current || version.IsNewer(*cond.Max, current, true)
	}

	if valid && cond.Equal != nil {
		valid = *cond.Equal == current
	}

	return valid
}
