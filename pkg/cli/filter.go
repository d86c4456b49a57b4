package cli

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/mcpconsole/pkg/classify"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

// filterEnv is what a --where expression sees for each instance.
type filterEnv struct {
	ID          string   `expr:"id"`
	Name        string   `expr:"name"`
	Description string   `expr:"description"`
	URL         string   `expr:"url"`
	Tables      []string `expr:"tables"`
	Count       int      `expr:"count"`
	Scheme      string   `expr:"scheme"`
}

func newFilterEnv(inst instance.Instance) filterEnv {
	return filterEnv{
		ID:          inst.ID,
		Name:        inst.Name,
		Description: inst.Description,
		URL:         inst.EndpointURL,
		Tables:      inst.PermittedCategories,
		Count:       inst.CategoryCount(),
		Scheme:      classify.ForInstance(inst).Name,
	}
}

// instanceFilter selects instances by a name glob and a boolean expression.
// Either part may be empty.
type instanceFilter struct {
	match string
	where *vm.Program
}

func newInstanceFilter(where, match string) (*instanceFilter, error) {
	f := &instanceFilter{match: match}
	if match != "" && !doublestar.ValidatePattern(match) {
		return nil, fmt.Errorf("invalid --match pattern %q", match)
	}
	if where != "" {
		program, err := expr.Compile(where, expr.Env(filterEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("invalid --where expression: %w", err)
		}
		f.where = program
	}
	return f, nil
}

// Apply returns the instances that pass both filters, in order.
func (f *instanceFilter) Apply(list []instance.Instance) ([]instance.Instance, error) {
	out := make([]instance.Instance, 0, len(list))
	for _, inst := range list {
		if f.match != "" {
			ok, err := doublestar.Match(f.match, inst.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid --match pattern %q: %w", f.match, err)
			}
			if !ok {
				continue
			}
		}
		if f.where != nil {
			result, err := expr.Run(f.where, newFilterEnv(inst))
			if err != nil {
				return nil, fmt.Errorf("--where failed on %s: %w", inst.ID, err)
			}
			if keep, _ := result.(bool); !keep {
				continue
			}
		}
		out = append(out, inst)
	}
	return out, nil
}
