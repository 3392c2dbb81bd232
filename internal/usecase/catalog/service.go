package catalog

import (
	"time"

	"amendtrack/internal/ports"
)

// Service covers the lookup entities that amendments refer to by name or id:
// employees, applications and application versions.
type Service struct {
	repo ports.CatalogRepository
	uow  ports.UnitOfWork
}

func NewService(repo ports.CatalogRepository, uow ports.UnitOfWork) *Service {
	return &Service{
		repo: repo,
		uow:  uow,
	}
}

type CreateEmployeeInput struct {
	EmployeeName string
	Initials     *string
	Email        *string
	WindowsLogin *string
}

type CreateApplicationInput struct {
	ApplicationName string
	Description     *string
}

type CreateApplicationVersionInput struct {
	ApplicationID uint64
	Version       string
	ReleasedDate  *time.Time
	Notes         *string
}

func optionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
