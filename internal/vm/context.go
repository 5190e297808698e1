package vm

// ExecutionContext is a chain of context frames, each mapping a name to a
// raw cell pointer (§3's ExecutionContext). Codegen currently emits a single
// flat root frame per program — Resolve/Bind walk the full chain so the
// model still supports multiple frames if a future codegen pass pushes one.
type ExecutionContext struct {
	frames []map[string]*Cell
}

// NewExecutionContext creates a context with a single root frame, into
// which the VM binds the name "undefined" to the shared Undefined cell at
// construction (§3's invariant: "the undefined cell is allocated at VM
// initialization and bound under the name undefined in the root context").
func NewExecutionContext() *ExecutionContext {
	return &ExecutionContext{frames: []map[string]*Cell{make(map[string]*Cell)}}
}

// Resolve walks from innermost to outermost frame looking for name.
func (ec *ExecutionContext) Resolve(name string) (*Cell, bool) {
	for i := len(ec.frames) - 1; i >= 0; i-- {
		if c, ok := ec.frames[i][name]; ok {
			return c, true
		}
	}
	return nil, false
}

// Bind writes name into the innermost frame where it is already declared,
// falling back to declaring it fresh in the innermost frame — mirroring
// internal/runtime.Scope.Assign's declaring-frame semantics for the VM's
// context chain.
func (ec *ExecutionContext) Bind(name string, cell *Cell) {
	for i := len(ec.frames) - 1; i >= 0; i-- {
		if _, ok := ec.frames[i][name]; ok {
			ec.frames[i][name] = cell
			return
		}
	}
	ec.frames[len(ec.frames)-1][name] = cell
}
