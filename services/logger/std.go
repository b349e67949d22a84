// Package logsvc provides core.Logger implementations.
package logsvc

import (
	"log"

	"github.com/aliHasanov22/holb-st-m/core"
)

type stdLogger struct {
	std     *log.Logger
	enabled bool
}

var _ core.Logger = (*stdLogger)(nil)

// NewStdLogger returns a Logger that writes to the given std logger only;
// for local development and tests.
func NewStdLogger(std *log.Logger) *stdLogger {
	return &stdLogger{std: std, enabled: true}
}

func (l *stdLogger) Enable(enabled bool) {
	l.enabled = enabled
}

func (l *stdLogger) Info(msg string, args ...interface{}) {
	l.print("INFO: "+msg, args)
}

func (l *stdLogger) Error(msg string, args ...interface{}) {
	l.print("ERROR: "+msg, args)
}

func (l *stdLogger) print(msg string, args []interface{}) {
	if !l.enabled {
		return
	}
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}
