package system

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptChooser delegates spawn picks to a tengo script. The script reads
// __group, __options and __roll and assigns its pick to __result.
type ScriptChooser struct {
	mu       sync.Mutex
	compiled *tengo.Compiled
}

func NewScriptChooser(src []byte) (*ScriptChooser, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for name, value := range map[string]interface{}{
		"__group":   "",
		"__options": []interface{}{},
		"__roll":    0,
		"__result":  "",
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("spawn script: add %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn script: compile: %w", err)
	}
	return &ScriptChooser{compiled: compiled}, nil
}

func (c *ScriptChooser) Choose(group string, options []string, roll int) (string, error) {
	if c == nil || c.compiled == nil {
		return "", fmt.Errorf("spawn script: not compiled")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	opts := &tengo.Array{Value: make([]tengo.Object, 0, len(options))}
	for _, o := range options {
		opts.Value = append(opts.Value, &tengo.String{Value: o})
	}
	if err := c.compiled.Set("__group", group); err != nil {
		return "", err
	}
	if err := c.compiled.Set("__options", opts); err != nil {
		return "", err
	}
	if err := c.compiled.Set("__roll", roll); err != nil {
		return "", err
	}
	if err := c.compiled.Run(); err != nil {
		return "", fmt.Errorf("spawn script: run: %w", err)
	}
	return c.compiled.Get("__result").String(), nil
}
