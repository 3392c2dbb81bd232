package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/infrastructure/persistence/sqlite/model"
	"amendtrack/internal/ports"
)

func setupCatalogRepository(t *testing.T) *CatalogRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "catalog.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(
		&model.Employee{},
		&model.Application{},
		&model.ApplicationVersion{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewCatalogRepository(db)
}

func TestEmployeesSortedByName(t *testing.T) {
	repo := setupCatalogRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Zoe Adams", "Alex Brown", "Mira Chen"} {
		if _, err := repo.CreateEmployee(ctx, ports.EmployeeRecord{
			EmployeeName: name,
			IsActive:     true,
		}); err != nil {
			t.Fatalf("CreateEmployee(%s) error = %v", name, err)
		}
	}

	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if len(employees) != 3 {
		t.Fatalf("ListEmployees() len = %d", len(employees))
	}
	if employees[0].EmployeeName != "Alex Brown" || employees[2].EmployeeName != "Zoe Adams" {
		t.Fatalf("ListEmployees() order = %s ... %s", employees[0].EmployeeName, employees[2].EmployeeName)
	}
}

func TestCreateApplicationDuplicateName(t *testing.T) {
	repo := setupCatalogRepository(t)
	ctx := context.Background()

	if _, err := repo.CreateApplication(ctx, ports.ApplicationRecord{
		ApplicationName: "FIS-Core",
		IsActive:        true,
	}); err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	_, err := repo.CreateApplication(ctx, ports.ApplicationRecord{
		ApplicationName: "FIS-Core",
		IsActive:        true,
	})
	if err == nil {
		t.Fatal("CreateApplication(duplicate) error = nil")
	}
	if kind := errs.KindOf(err); kind != errs.KindConflict {
		t.Fatalf("KindOf() = %v, want KindConflict", kind)
	}
}

func TestDeleteApplicationRemovesVersions(t *testing.T) {
	repo := setupCatalogRepository(t)
	ctx := context.Background()

	app, err := repo.CreateApplication(ctx, ports.ApplicationRecord{
		ApplicationName: "Dispatcher",
		IsActive:        true,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}
	keeper, err := repo.CreateApplication(ctx, ports.ApplicationRecord{
		ApplicationName: "Gateway",
		IsActive:        true,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	for _, version := range []string{"1.0.0", "1.1.0"} {
		if _, err := repo.CreateApplicationVersion(ctx, ports.ApplicationVersionRecord{
			ApplicationID: app.ApplicationID,
			Version:       version,
			IsActive:      true,
		}); err != nil {
			t.Fatalf("CreateApplicationVersion(%s) error = %v", version, err)
		}
	}
	if _, err := repo.CreateApplicationVersion(ctx, ports.ApplicationVersionRecord{
		ApplicationID: keeper.ApplicationID,
		Version:       "2.0.0",
		IsActive:      true,
	}); err != nil {
		t.Fatalf("CreateApplicationVersion(keeper) error = %v", err)
	}

	if err := repo.DeleteApplication(ctx, app.ApplicationID); err != nil {
		t.Fatalf("DeleteApplication() error = %v", err)
	}

	if _, err := repo.GetApplication(ctx, app.ApplicationID); !errors.Is(err, amendment.ErrApplicationNotFound) {
		t.Fatalf("GetApplication(deleted) error = %v, want ErrApplicationNotFound", err)
	}
	versions, err := repo.ListApplicationVersions(ctx, app.ApplicationID)
	if err != nil {
		t.Fatalf("ListApplicationVersions() error = %v", err)
	}
	if len(versions) != 0 {
		t.Fatalf("versions survived deletion: %d", len(versions))
	}

	kept, err := repo.ListApplicationVersions(ctx, keeper.ApplicationID)
	if err != nil {
		t.Fatalf("ListApplicationVersions(keeper) error = %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("keeper versions = %d, want 1", len(kept))
	}

	if err := repo.DeleteApplication(ctx, app.ApplicationID); !errors.Is(err, amendment.ErrApplicationNotFound) {
		t.Fatalf("DeleteApplication(missing) error = %v, want ErrApplicationNotFound", err)
	}
}
