package libtrigger

type mockScheduler struct {
	ScheduleFunc func(task func()) error
}

func (m *mockScheduler) Schedule(task func()) error {
	return m.ScheduleFunc(task)
}
