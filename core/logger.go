package core

// Logger is any service that can report application events; implementations
// may forward errors to an external monitor.
type Logger interface {
	Enable(enabled bool)
	// expected args: error, map[string]interface{}, user.User
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
