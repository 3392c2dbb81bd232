package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/infrastructure/persistence/sqlite/model"
	"amendtrack/internal/ports"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *CatalogRepository) CreateEmployee(ctx context.Context, record ports.EmployeeRecord) (ports.EmployeeRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.EmployeeRecord{}, err
	}

	row := model.Employee{
		EmployeeName: record.EmployeeName,
		Initials:     record.Initials,
		Email:        record.Email,
		WindowsLogin: record.WindowsLogin,
		IsActive:     record.IsActive,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.EmployeeRecord{}, errs.WithKind(errs.Wrap(err, "insert employee"), errs.KindStorage)
	}
	return mapEmployee(row), nil
}

func (r *CatalogRepository) ListEmployees(ctx context.Context) ([]ports.EmployeeRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Employee
	if err := db.Order("employee_name asc").Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query employees"), errs.KindStorage)
	}

	items := make([]ports.EmployeeRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapEmployee(row))
	}
	return items, nil
}

func (r *CatalogRepository) CreateApplication(ctx context.Context, record ports.ApplicationRecord) (ports.ApplicationRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ApplicationRecord{}, err
	}

	row := model.Application{
		ApplicationName: record.ApplicationName,
		Description:     record.Description,
		IsActive:        record.IsActive,
	}
	if err := db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ApplicationRecord{}, errs.Ef(errs.KindConflict, "application %q already exists", record.ApplicationName)
		}
		return ports.ApplicationRecord{}, errs.WithKind(errs.Wrap(err, "insert application"), errs.KindStorage)
	}
	return mapApplication(row), nil
}

func (r *CatalogRepository) GetApplication(ctx context.Context, applicationID uint64) (ports.ApplicationRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ApplicationRecord{}, err
	}

	var row model.Application
	if err := db.First(&row, "application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ApplicationRecord{}, errs.Wrapf(amendment.ErrApplicationNotFound, "application %d", applicationID)
		}
		return ports.ApplicationRecord{}, errs.WithKind(errs.Wrap(err, "query application"), errs.KindStorage)
	}
	return mapApplication(row), nil
}

func (r *CatalogRepository) ListApplications(ctx context.Context) ([]ports.ApplicationRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Application
	if err := db.Order("application_name asc").Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query applications"), errs.KindStorage)
	}

	items := make([]ports.ApplicationRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapApplication(row))
	}
	return items, nil
}

// DeleteApplication removes the application and all of its versions.
func (r *CatalogRepository) DeleteApplication(ctx context.Context, applicationID uint64) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Application{}, "application_id = ?", applicationID)
		if result.Error != nil {
			return errs.Wrap(result.Error, "delete application")
		}
		if result.RowsAffected == 0 {
			return errs.Wrapf(amendment.ErrApplicationNotFound, "application %d", applicationID)
		}
		if err := tx.Where("application_id = ?", applicationID).
			Delete(&model.ApplicationVersion{}).Error; err != nil {
			return errs.Wrap(err, "delete application versions")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, amendment.ErrApplicationNotFound) {
			return err
		}
		return errs.WithKind(err, errs.KindStorage)
	}
	return nil
}

func (r *CatalogRepository) CreateApplicationVersion(ctx context.Context, record ports.ApplicationVersionRecord) (ports.ApplicationVersionRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ApplicationVersionRecord{}, err
	}

	row := model.ApplicationVersion{
		ApplicationID: record.ApplicationID,
		Version:       record.Version,
		ReleasedDate:  record.ReleasedDate,
		Notes:         record.Notes,
		IsActive:      record.IsActive,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.ApplicationVersionRecord{}, errs.WithKind(errs.Wrap(err, "insert application version"), errs.KindStorage)
	}
	return mapApplicationVersion(row), nil
}

func (r *CatalogRepository) ListApplicationVersions(ctx context.Context, applicationID uint64) ([]ports.ApplicationVersionRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.ApplicationVersion
	if err := db.
		Where("application_id = ?", applicationID).
		Order("application_version_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query application versions"), errs.KindStorage)
	}

	items := make([]ports.ApplicationVersionRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapApplicationVersion(row))
	}
	return items, nil
}

func mapEmployee(row model.Employee) ports.EmployeeRecord {
	return ports.EmployeeRecord{
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Initials:     row.Initials,
		Email:        row.Email,
		WindowsLogin: row.WindowsLogin,
		IsActive:     row.IsActive,
		CreatedOn:    row.CreatedOn,
		ModifiedOn:   row.ModifiedOn,
	}
}

func mapApplication(row model.Application) ports.ApplicationRecord {
	return ports.ApplicationRecord{
		ApplicationID:   row.ApplicationID,
		ApplicationName: row.ApplicationName,
		Description:     row.Description,
		IsActive:        row.IsActive,
		CreatedOn:       row.CreatedOn,
		ModifiedOn:      row.ModifiedOn,
	}
}

func mapApplicationVersion(row model.ApplicationVersion) ports.ApplicationVersionRecord {
	return ports.ApplicationVersionRecord{
		ApplicationVersionID: row.ApplicationVersionID,
		ApplicationID:        row.ApplicationID,
		Version:              row.Version,
		ReleasedDate:         row.ReleasedDate,
		Notes:                row.Notes,
		IsActive:             row.IsActive,
		CreatedOn:            row.CreatedOn,
		ModifiedOn:           row.ModifiedOn,
	}
}
