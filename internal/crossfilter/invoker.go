package crossfilter

import (
	"fmt"
	"sort"
)

// Computation is a pure function from the dataset and the synchronized
// value to a renderable artifact. Stateless, no side effects; invoked
// fresh on every relevant change. D is whatever the hosting environment
// hands its computations (a table, or a table plus viewport); this
// package never inspects it.
type Computation[D any] func(dataset D, value FilterValue) (string, error)

// ComputationInvoker holds the registered computations and re-executes
// them with the current value bound to their declared parameter.
type ComputationInvoker[D any] struct {
	computations map[string]Computation[D]
}

func NewComputationInvoker[D any]() *ComputationInvoker[D] {
	return &ComputationInvoker[D]{computations: make(map[string]Computation[D])}
}

// Register adds a computation under id. Registering the same id twice is
// a ConfigurationError.
func (ci *ComputationInvoker[D]) Register(id string, fn Computation[D]) error {
	if id == "" {
		return &ConfigurationError{Msg: "empty computation id"}
	}
	if fn == nil {
		return &ConfigurationError{Msg: fmt.Sprintf("computation %q is nil", id)}
	}
	if _, ok := ci.computations[id]; ok {
		return &ConfigurationError{Msg: fmt.Sprintf("computation %q registered twice", id)}
	}
	ci.computations[id] = fn
	return nil
}

// Registered reports whether id is known.
func (ci *ComputationInvoker[D]) Registered(id string) bool {
	_, ok := ci.computations[id]
	return ok
}

// IDs returns all registered computation ids, sorted. Registration
// surfaces validate their targets against this set.
func (ci *ComputationInvoker[D]) IDs() []string {
	ids := make([]string, 0, len(ci.computations))
	for id := range ci.computations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Invoke runs the computation registered under id with value bound to
// the named parameter and returns its renderable. A failure inside the
// computation comes back as a ComputationError; there is no retry, the
// caller simply re-invokes on the next change. An unknown id means the
// resolver and invoker disagree, which fail-fast registration is meant
// to make impossible.
func (ci *ComputationInvoker[D]) Invoke(id, parameter string, value FilterValue, dataset D) (string, error) {
	fn, ok := ci.computations[id]
	if !ok {
		return "", &ConfigurationError{Msg: fmt.Sprintf("unknown computation %q", id)}
	}
	out, err := fn(dataset, value)
	if err != nil {
		return "", &ComputationError{
			ComputationID: id,
			Err:           fmt.Errorf("%s=%s: %w", parameter, value, err),
		}
	}
	return out, nil
}
