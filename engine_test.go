package studytracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngine_RejectedEventLeavesStateAlone(t *testing.T) {
	engine := NewEngine(State{Session: Session{DateKey: "Mon Oct 19 2026", Tasks: []Task{}}})
	registerHandlers(engine)

	var seen []string
	engine.Listen(func(state State, event Event) {
		seen = append(seen, event.Type())
	})

	assert.False(t, engine.Emit(TaskAdded{TaskID: "T1", Text: "   ", Time: time.Now()}))
	assert.False(t, engine.Emit(TaskToggled{TaskID: "missing", Time: time.Now()}))
	assert.False(t, engine.Emit(TaskRemoved{TaskID: "missing", Time: time.Now()}))

	assert.Empty(t, engine.State().Session.Tasks)
	assert.Empty(t, seen, "listeners only see accepted events")
}

func TestEngine_UnknownEventType(t *testing.T) {
	engine := NewEngine(State{})
	assert.False(t, engine.Emit(TaskAdded{TaskID: "T1", Text: "x"}))
}

func TestEngine_ReducersDoNotMutatePreviousState(t *testing.T) {
	engine := NewEngine(State{Session: Session{Tasks: []Task{}}})
	registerHandlers(engine)

	engine.Emit(TaskAdded{TaskID: "T1", Text: "first"})
	before := engine.State()

	engine.Emit(TaskToggled{TaskID: "T1"})
	engine.Emit(TaskAdded{TaskID: "T2", Text: "second"})
	engine.Emit(TaskRemoved{TaskID: "T1"})

	assert.Equal(t, []Task{{ID: "T1", Text: "first"}}, before.Session.Tasks)
	assert.Equal(t, []Task{{ID: "T2", Text: "second"}}, engine.State().Session.Tasks)
}

func TestEngine_DuplicateTaskIDRejected(t *testing.T) {
	engine := NewEngine(State{Session: Session{Tasks: []Task{}}})
	registerHandlers(engine)

	assert.True(t, engine.Emit(TaskAdded{TaskID: "T1", Text: "a"}))
	assert.False(t, engine.Emit(TaskAdded{TaskID: "T1", Text: "b"}))
	assert.False(t, engine.Emit(TaskAdded{TaskID: "", Text: "c"}))
	assert.Len(t, engine.State().Session.Tasks, 1)
}

func TestEngine_ListenersRunInOrderAndMayReadState(t *testing.T) {
	engine := NewEngine(State{Session: Session{Tasks: []Task{}}})
	registerHandlers(engine)

	var order []string
	engine.Listen(func(state State, event Event) {
		order = append(order, "first")
		assert.Equal(t, state, engine.State())
	})
	engine.Listen(func(state State, event Event) {
		order = append(order, "second")
	})

	engine.Emit(TaskAdded{TaskID: "T1", Text: "a"})
	assert.Equal(t, []string{"first", "second"}, order)
}
