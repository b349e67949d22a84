package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/aliHasanov22/holb-st-m/core"
	"github.com/aliHasanov22/holb-st-m/core/user"
)

type rollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*rollbarLogger)(nil)

// NewRollbarLogger returns a Logger that reports to Rollbar in addition to
// the given std logger.
func NewRollbarLogger(std *log.Logger, conf *core.Config) *rollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetStackTracer(errors.StackTracer)
	return &rollbarLogger{std: std}
}

func (l rollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected args fmt: error, map[string]interface{}, user.User
func (l rollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var usrSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		// set logged in User
		if usr, ok := arg.(user.User); ok {
			if !usrSet { // only set one User
				rollbar.SetPerson(usr.ID, usr.Username, usr.Email)
				usrSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !usrSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l rollbarLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l rollbarLogger) Info(msg string, args ...interface{}) {
	l.print("INFO: "+msg, args)
	rollbar.Info(l.prepare(msg, args)...)
}

func (l rollbarLogger) Error(msg string, args ...interface{}) {
	l.print("ERROR: "+msg, args)
	rollbar.Error(l.prepare(msg, args)...)
}
