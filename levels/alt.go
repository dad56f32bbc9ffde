package levels

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/deadzone/prefabs"
)

const altResultVar = "__alt"

// AltPattern is a tengo boolean expression over the cell coordinates x and y
// that picks the alternate wall top texture.
type AltPattern struct {
	src      string
	compiled *tengo.Compiled
}

// CompileAltPattern compiles expr, e.g. "(x + y) % 2 == 0". The math and
// rand modules are importable.
func CompileAltPattern(expr string) (*AltPattern, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("levels: empty alt pattern")
	}
	script := tengo.NewScript([]byte(altResultVar + " := (" + expr + ")"))
	_ = script.Add("x", 0)
	_ = script.Add("y", 0)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("levels: compile alt pattern %q: %w", expr, err)
	}
	return &AltPattern{src: expr, compiled: compiled}, nil
}

// AltPatternForLevel returns the level's inline pattern, else its script from
// prefabs/scripts, else nil.
func AltPatternForLevel(lvl *Level) (*AltPattern, error) {
	switch {
	case lvl.AltPattern != "":
		return CompileAltPattern(lvl.AltPattern)
	case lvl.AltScript != "":
		src, err := prefabs.LoadScript(lvl.AltScript)
		if err != nil {
			return nil, fmt.Errorf("levels: load alt script %s: %w", lvl.AltScript, err)
		}
		return CompileAltPattern(string(src))
	}
	return nil, nil
}

// Eval runs the pattern for one cell.
func (p *AltPattern) Eval(x, y int) (bool, error) {
	if p == nil || p.compiled == nil {
		return false, nil
	}
	if err := p.compiled.Set("x", x); err != nil {
		return false, err
	}
	if err := p.compiled.Set("y", y); err != nil {
		return false, err
	}
	if err := p.compiled.Run(); err != nil {
		return false, fmt.Errorf("levels: alt pattern %q at %d,%d: %w", p.src, x, y, err)
	}
	return p.compiled.Get(altResultVar).Bool(), nil
}

func (p *AltPattern) String() string {
	if p == nil {
		return ""
	}
	return p.src
}
