package condition

import (
	"taskforge/internal/config"
	"taskforge/internal/rustinfo"
)

// mapEnv is an EnvLookup backed by a fixed map, for tests.
type mapEnv map[string]string

func (m mapEnv) LookupEnv(key string) (string, bool) {
	value, found := m[key]
	return value, found
}

// MockScriptRunner records script executions and returns a fixed status.
type MockScriptRunner struct {
	// ExitStatus is returned from every Run call.
	ExitStatus int
	// Calls records each script passed to Run.
	Calls [][]string
	// Runners records the runner name of each call.
	Runners []string
}

func (m *MockScriptRunner) Run(script []string, runner string) int {
	m.Calls = append(m.Calls, script)
	m.Runners = append(m.Runners, runner)
	return m.ExitStatus
}

// testEvaluator builds an Evaluator with fully fixed ambient state.
func testEvaluator(env mapEnv, platformName, profileName string, scripts ScriptRunner) *Evaluator {
	if scripts == nil {
		scripts = &MockScriptRunner{}
	}
	e := NewEvaluator(scripts)
	e.SetEnvLookup(env)
	e.SetPlatformFunc(func() string { return platformName })
	e.SetProfileFunc(func() string { return profileName })
	return e
}

// testFlow builds a FlowInfo with the given toolchain snapshot.
func testFlow(info rustinfo.RustInfo) *config.FlowInfo {
	return &config.FlowInfo{
		Config:  config.DefaultConfig(),
		EnvInfo: config.EnvInfo{RustInfo: info},
	}
}

// strPtr returns a pointer to s, for optional condition fields.
func strPtr(s string) *string {
	return &s
}
