// Package runner executes single tasks, gated by their conditions.
//
// The [Executor] resolves a task name to its definition, asks the condition
// engine whether the task may run in the current flow context, and only then
// executes the task script. A task whose condition does not hold is skipped,
// not failed: the run reports status 0 and moves on, matching the gating
// model where conditions select work rather than signal errors.
//
// The [Executor] requires a [TaskResolver], a [ConditionValidator] and a
// [ScriptRunner]; production wiring uses the taskfile, condition and script
// packages, while tests substitute mocks.
package runner

import (
	"fmt"

	"taskforge/internal/config"
	"taskforge/internal/output"
	"taskforge/internal/rustinfo"
)

// TaskResolver resolves a task name (following aliases) to a concrete step.
// The [taskfile.Resolver] type implements this interface.
type TaskResolver interface {
	Resolve(name string) (*config.Step, error)
}

// ConditionValidator decides whether a step may run in a flow context.
// The [condition.Evaluator] type implements this interface.
type ConditionValidator interface {
	ValidateCondition(flow *config.FlowInfo, step *config.Step) bool
}

// ScriptRunner executes a script with the named interpreter and returns its
// exit status. The [script.Runner] type implements this interface.
type ScriptRunner interface {
	Run(script []string, runner string) int
}

// NewFlowInfo builds the execution context for one run: the tool settings
// plus a single toolchain snapshot shared by every condition evaluation in
// the run.
func NewFlowInfo(cfg *config.Config) *config.FlowInfo {
	return &config.FlowInfo{
		Config:  cfg,
		EnvInfo: config.EnvInfo{RustInfo: rustinfo.Probe()},
	}
}

// Executor runs single named tasks.
type Executor struct {
	flow      *config.FlowInfo
	resolver  TaskResolver
	validator ConditionValidator
	scripts   ScriptRunner
	printer   *output.Printer
}

// NewExecutor creates an Executor with the given collaborators.
func NewExecutor(flow *config.FlowInfo, resolver TaskResolver, validator ConditionValidator, scripts ScriptRunner, printer *output.Printer) *Executor {
	return &Executor{
		flow:      flow,
		resolver:  resolver,
		validator: validator,
		scripts:   scripts,
		printer:   printer,
	}
}

// Run executes the named task and returns its exit status.
//
// Resolution failures (unknown task, alias loop) return an error. A task
// gated out by its condition is skipped with status 0. Otherwise the task
// script runs and its exit status is returned; a task with no script
// succeeds trivially.
func (e *Executor) Run(name string) (int, error) {
	step, err := e.resolver.Resolve(name)
	if err != nil {
		return 1, fmt.Errorf("cannot run task %s: %w", name, err)
	}

	if !e.validator.ValidateCondition(e.flow, step) {
		e.printer.TaskSkipped(step.Name)
		return 0, nil
	}

	e.printer.TaskStart(step.Name)

	if len(step.Config.Script) == 0 {
		e.printer.TaskSuccess(step.Name)
		return 0, nil
	}

	runner := step.Config.ScriptRunner
	if runner == "" {
		runner = e.flow.Config.DefaultScriptRunner
	}

	status := e.scripts.Run(step.Config.Script, runner)
	if status != 0 {
		e.printer.TaskFailure(step.Name, status)
		return status, nil
	}

	e.printer.TaskSuccess(step.Name)
	return 0, nil
}

// Check evaluates the named task's condition without running the task
// script. The condition script, if any, still executes as part of the
// decision.
func (e *Executor) Check(name string) (bool, error) {
	step, err := e.resolver.Resolve(name)
	if err != nil {
		return false, fmt.Errorf("cannot check task %s: %w", name, err)
	}
	return e.validator.ValidateCondition(e.flow, step), nil
}
