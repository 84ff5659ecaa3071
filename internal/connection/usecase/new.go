package usecase

import (
	"fahrplan/internal/connection"
	"fahrplan/internal/connection/repository"
	pkgLog "fahrplan/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.TimetableRepository
	limit int
}

// New creates a new connection UseCase. limit caps the number of requested
// connections, 0 leaves it to the timetable service.
func New(l pkgLog.Logger, repo repository.TimetableRepository, limit int) connection.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		limit: limit,
	}
}
