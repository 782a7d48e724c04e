// Package rules runs optional tengo scripts for the parts of the game whose
// policy is left to the level designer: what a mystery bag turns out to be
// worth and how moles wander. A missing script leaves the rule disabled.
package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

const (
	MysteryBag = "mystery_bag"
	Mole       = "mole"
)

// entry points each rule script must define
var entryPoints = map[string]string{
	MysteryBag: "reveal",
	Mole:       "move",
}

type rule struct {
	path     string
	compiled *tengo.Compiled
}

type Runtime struct {
	dir   string
	log   *zap.Logger
	rules map[string]*rule
}

func NewRuntime(dir string, log *zap.Logger) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runtime{dir: dir, log: log, rules: make(map[string]*rule)}
}

// LoadAll loads every known rule from the script directory. Missing files
// are skipped; a script that fails to compile is reported and left out.
func (r *Runtime) LoadAll() error {
	var errs []error
	for name := range entryPoints {
		if _, err := r.Load(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load reads <dir>/<name>.tengo. It reports whether the rule is now active.
func (r *Runtime) Load(name string) (bool, error) {
	if r.dir == "" {
		return false, nil
	}
	path := filepath.Join(r.dir, name+".tengo")
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		delete(r.rules, name)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("rules: read %s: %w", path, err)
	}
	if err := r.compile(name, path, src); err != nil {
		return false, err
	}
	r.log.Info("rule loaded", zap.String("rule", name), zap.String("path", path))
	return true, nil
}

// LoadSource compiles src as the named rule.
func (r *Runtime) LoadSource(name string, src []byte) error {
	return r.compile(name, "", src)
}

// Reload recompiles the rule backed by path, if any.
func (r *Runtime) Reload(path string) (bool, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, ok := entryPoints[name]; !ok {
		return false, nil
	}
	return r.Load(name)
}

func (r *Runtime) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.rules[name]
	return ok
}

func (r *Runtime) compile(name, path string, src []byte) error {
	fn, ok := entryPoints[name]
	if !ok {
		return fmt.Errorf("rules: unknown rule %q", name)
	}

	full := string(src) + "\n__result = " + fn + "(__input)\n"
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__input", map[string]any{})
	_ = script.Add("__result", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("rules: compile %s: %w", name, err)
	}
	r.rules[name] = &rule{path: path, compiled: compiled}
	return nil
}

func (r *Runtime) call(name string, input map[string]any) (map[string]any, bool, error) {
	if r == nil {
		return nil, false, nil
	}
	ru, ok := r.rules[name]
	if !ok {
		return nil, false, nil
	}
	if err := ru.compiled.Set("__input", input); err != nil {
		return nil, true, fmt.Errorf("rules: %s: %w", name, err)
	}
	if err := ru.compiled.Run(); err != nil {
		return nil, true, fmt.Errorf("rules: %s: %w", name, err)
	}
	out := ru.compiled.Get("__result").Map()
	if out == nil {
		return nil, true, fmt.Errorf("rules: %s: %s must return a map", name, entryPoints[name])
	}
	return out, true, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
