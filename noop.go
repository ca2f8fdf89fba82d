package libtrigger

type noopLogger struct{}

func (l noopLogger) WithField(string, any) Logger { return l }

func (noopLogger) Debug(...any)          {}
func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Debugln(...any)        {}
func (noopLogger) Info(...any)           {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Infoln(...any)         {}
func (noopLogger) Warn(...any)           {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Warnln(...any)         {}
func (noopLogger) Error(...any)          {}
func (noopLogger) Errorf(string, ...any) {}
func (noopLogger) Errorln(...any)        {}

// NoopLogger returns a Logger that discards everything.
func NoopLogger() Logger { return noopLogger{} }

type noopMetrics struct{}

func (noopMetrics) ListenerAdded(string)        {}
func (noopMetrics) ListenerRemoved(string, int) {}
func (noopMetrics) Fired(string, int)           {}
func (noopMetrics) Deferred(string)             {}
