package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tileactor/prefabs"
)

// ScriptMover runs a tengo movement script once per tick. The script sees
// the globals `tick` (int), `speed` (float) and `x` (float) and must leave
// the horizontal step for this tick in `dx`.
type ScriptMover struct {
	scriptPath string
	compiled   *tengo.Compiled
	tick       int
}

// NewScriptMover compiles the named prefab script.
func NewScriptMover(scriptPath string, speed float64) (*ScriptMover, error) {
	if strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("system: empty script path")
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("system: load script %s: %w", scriptPath, err)
	}
	m, err := CompileScriptMover(src, speed)
	if err != nil {
		return nil, fmt.Errorf("system: compile script %s: %w", scriptPath, err)
	}
	m.scriptPath = scriptPath
	return m, nil
}

// CompileScriptMover compiles raw tengo source.
func CompileScriptMover(src []byte, speed float64) (*ScriptMover, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("speed", speed)
	_ = script.Add("x", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("dx") {
		return nil, fmt.Errorf("script does not define dx")
	}
	return &ScriptMover{compiled: compiled}, nil
}

func (m *ScriptMover) ScriptPath() string { return m.scriptPath }

// Step runs the script for the next tick and returns its dx.
func (m *ScriptMover) Step(x float64) (float64, error) {
	if m == nil || m.compiled == nil {
		return 0, nil
	}
	if err := m.compiled.Set("tick", m.tick); err != nil {
		return 0, err
	}
	if err := m.compiled.Set("x", x); err != nil {
		return 0, err
	}
	m.tick++
	if err := m.compiled.Run(); err != nil {
		return 0, err
	}
	return m.compiled.Get("dx").Float(), nil
}
