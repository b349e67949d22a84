package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/user"
)

const (
	authScheme = "Bearer"

	contextUserKey    = "user"
	contextSessionKey = "session"
)

// sessionAuthMiddleware authenticates requests by the opaque token carried in
// the Authorization header. The token is resolved against the injected
// SessionStore; expired sessions are forgotten by the store on first sight.
func sessionAuthMiddleware(sessions user.SessionStore, svc *user.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := extractToken(ctx)
			if err != nil {
				return err
			}

			sess, err := sessions.GetSession(token)
			if err != nil {
				switch errors.Cause(err) {
				case user.ErrSessionExpired:
					return errSessionExpired
				case user.ErrSessionNotFound:
					return errUnauthorized
				}
				return errors.Wrap(err, "getting session")
			}

			usr, err := svc.GetByID(sess.UserID)
			if err != nil {
				if errors.Cause(err) == user.ErrNotFound {
					return errUnauthorized
				}
				return errors.Wrap(err, "finding user by ID")
			}
			if !usr.IsActive {
				return errAccountDeactivated
			}

			ctx.Set(contextUserKey, usr)
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func extractToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(authScheme) && strings.EqualFold(header[:len(authScheme)], authScheme) {
		if token := strings.TrimSpace(header[len(authScheme):]); token != "" {
			return token, nil
		}
	}
	return "", errUnauthorized
}

func getContextUser(ctx echo.Context) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}
	return user.User{}, errUnauthorized
}

func getContextSession(ctx echo.Context) (user.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(user.Session); ok {
		return sess, nil
	}
	return user.Session{}, errUnauthorized
}
