package study

import "time"

var NowFunc = time.Now // mockable

type (
	Repository interface {
		CreateSession(s Session) (Session, error)
		// QueryAllSessions returns all sessions, newest first.
		QueryAllSessions() ([]Session, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Log(ns NewSession) (Session, error) {
	s := Session{
		Subject:         ns.Subject,
		DurationMinutes: ns.Duration,
		Date:            NowFunc().UTC(),
	}
	return svc.repo.CreateSession(s)
}

func (svc *Service) QueryAll() ([]Session, error) {
	return svc.repo.QueryAllSessions()
}
