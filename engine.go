package studytracker

import "sync"

// Reducer builds the next state from the current one and an event.
// Reducers must not mutate slices reachable from the incoming state.
type Reducer func(state State, event Event) State

// Validator decides whether an event may be applied to the current state
type Validator func(state State, event Event) bool

// Listener observes accepted events together with the state they produced
type Listener func(state State, event Event)

// Engine applies events to a single State. Dispatch is serialized: validators,
// reducers and listeners for one event all run before the next event is looked at.
// Listeners must not call Emit.
type Engine struct {
	dispatch sync.Mutex
	mu       sync.RWMutex

	state     State
	handlers  map[string]*Registration
	listeners []Listener
}

// Registration collects the validators and reducers for one event type
type Registration struct {
	validators []Validator
	reducers   []Reducer
}

// NewEngine creates an engine starting from the given state
func NewEngine(initial State) *Engine {
	return &Engine{
		state:    initial,
		handlers: make(map[string]*Registration),
	}
}

// When returns the registration for an event type, creating it on first use
func (e *Engine) When(eventType string) *Registration {
	e.mu.Lock()
	defer e.mu.Unlock()

	reg, ok := e.handlers[eventType]
	if !ok {
		reg = &Registration{}
		e.handlers[eventType] = reg
	}
	return reg
}

// Requires adds validators that must all pass before the event is applied
func (r *Registration) Requires(validators ...Validator) *Registration {
	r.validators = append(r.validators, validators...)
	return r
}

// Updates adds a reducer for the event
func (r *Registration) Updates(reducer Reducer) *Registration {
	r.reducers = append(r.reducers, reducer)
	return r
}

// Listen registers a listener for every accepted event
func (e *Engine) Listen(listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit processes an event. It returns false when the event type is unknown or a
// validator rejected it; rejected events leave the state untouched.
func (e *Engine) Emit(event Event) bool {
	e.dispatch.Lock()
	defer e.dispatch.Unlock()

	e.mu.RLock()
	reg, ok := e.handlers[event.Type()]
	current := e.state
	listeners := e.listeners
	e.mu.RUnlock()

	if !ok {
		return false
	}

	for _, valid := range reg.validators {
		if !valid(current, event) {
			return false
		}
	}

	next := current
	for _, reduce := range reg.reducers {
		next = reduce(next, event)
	}

	e.mu.Lock()
	e.state = next
	e.mu.Unlock()

	for _, listener := range listeners {
		listener(next, event)
	}

	return true
}

// State returns the current state
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}
