package studytracker

// persist writes the part of the session an event changed. Failures are logged
// and swallowed: the in-memory session stays authoritative and the next change
// overwrites the stored copy in full anyway.
func (t *Tracker) persist(state State, event Event) {
	session := state.Session

	switch event.Type() {
	case EventTaskAdded, EventTaskToggled, EventTaskRemoved:
		if err := t.repo.SaveTasks(session.DateKey, session.Tasks); err != nil {
			t.logger.Error("failed to persist tasks", "date", session.DateKey, "event", event.Type(), "error", err)
		}
	case EventTimerTicked, EventTimerReset:
		if err := t.repo.SaveTime(session.DateKey, session.TotalStudySeconds); err != nil {
			t.logger.Error("failed to persist study time", "date", session.DateKey, "event", event.Type(), "error", err)
		}
	}
}

// publish fans the new state out to subscribers
func (t *Tracker) publish(state State, event Event) {
	t.subMu.RLock()
	subscribers := make([]func(Snapshot), 0, len(t.subscribers))
	for _, fn := range t.subscribers {
		subscribers = append(subscribers, fn)
	}
	t.subMu.RUnlock()

	if len(subscribers) == 0 {
		return
	}

	snapshot := newSnapshot(state)
	for _, fn := range subscribers {
		fn(snapshot)
	}
}
