package libtrigger

import (
	"github.com/stretchr/testify/mock"
)

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ListenerAdded(event string) {
	m.Called(event)
}

func (m *mockMetrics) ListenerRemoved(event string, n int) {
	m.Called(event, n)
}

func (m *mockMetrics) Fired(event string, listeners int) {
	m.Called(event, listeners)
}

func (m *mockMetrics) Deferred(event string) {
	m.Called(event)
}
