package usecase

import (
	"fahrplan/internal/query"
	"fahrplan/pkg/datemath"
	pkgLog "fahrplan/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	dateMath *datemath.Parser
}

// New creates a new query UseCase instance.
func New(l pkgLog.Logger, dateMath *datemath.Parser) query.UseCase {
	return &implUseCase{
		l:        l,
		dateMath: dateMath,
	}
}
