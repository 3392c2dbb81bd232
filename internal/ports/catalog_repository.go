package ports

import (
	"context"
	"time"
)

type EmployeeRecord struct {
	EmployeeID   uint64
	EmployeeName string
	Initials     *string
	Email        *string
	WindowsLogin *string
	IsActive     bool
	CreatedOn    time.Time
	ModifiedOn   time.Time
}

type ApplicationRecord struct {
	ApplicationID   uint64
	ApplicationName string
	Description     *string
	IsActive        bool
	CreatedOn       time.Time
	ModifiedOn      time.Time
}

type ApplicationVersionRecord struct {
	ApplicationVersionID uint64
	ApplicationID        uint64
	Version              string
	ReleasedDate         *time.Time
	Notes                *string
	IsActive             bool
	CreatedOn            time.Time
	ModifiedOn           time.Time
}

// CatalogRepository covers the lookup entities: employees, applications and
// their versions. Deleting an application cascades to its versions.
type CatalogRepository interface {
	CreateEmployee(ctx context.Context, record EmployeeRecord) (EmployeeRecord, error)
	ListEmployees(ctx context.Context) ([]EmployeeRecord, error)

	CreateApplication(ctx context.Context, record ApplicationRecord) (ApplicationRecord, error)
	GetApplication(ctx context.Context, applicationID uint64) (ApplicationRecord, error)
	ListApplications(ctx context.Context) ([]ApplicationRecord, error)
	DeleteApplication(ctx context.Context, applicationID uint64) error

	CreateApplicationVersion(ctx context.Context, record ApplicationVersionRecord) (ApplicationVersionRecord, error)
	ListApplicationVersions(ctx context.Context, applicationID uint64) ([]ApplicationVersionRecord, error)
}
