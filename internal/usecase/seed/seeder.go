package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"amendtrack/internal/bootstrap/logging"
	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// Seeder fills an empty database with synthetic employees, applications,
// versions, amendments, progress entries and links for local development.
// A fixed RNG seed keeps runs reproducible.
type Seeder struct {
	repo    ports.AmendmentRepository
	catalog ports.CatalogRepository
	uow     ports.UnitOfWork
	clock   ports.Clock
	rng     *rand.Rand
}

func New(repo ports.AmendmentRepository, catalog ports.CatalogRepository, uow ports.UnitOfWork, clock ports.Clock) *Seeder {
	return &Seeder{
		repo:    repo,
		catalog: catalog,
		uow:     uow,
		clock:   clock,
		rng:     rand.New(rand.NewSource(42)),
	}
}

var (
	developers = []string{"John Smith", "Sarah Johnson", "Mike Davis", "Emma Wilson", "Tom Brown"}
	qaTeam     = []string{"Alice Cooper", "Bob Taylor", "Carol White"}
	reporters  = []string{"User A", "User B", "User C", "System Admin", "Project Manager"}

	seedApplications = []struct {
		name    string
		version string
	}{
		{"FIS-Core", "2.1.0"},
		{"FIS-Web", "1.5.2"},
		{"FIS-Mobile", "3.0.1"},
		{"FIS-Reports", "1.2.0"},
		{"FIS-Admin", "2.0.0"},
	}

	descriptions = []string{
		"Fix login authentication issue",
		"Add export functionality to reports",
		"Update user interface for better accessibility",
		"Optimize database queries for performance",
		"Fix data validation error on form submission",
		"Implement new dashboard widgets",
		"Add bulk update capability",
		"Fix memory leak in background service",
		"Update API endpoints for new requirements",
		"Add support for multi-language interface",
		"Fix incorrect date formatting",
		"Improve error handling and logging",
		"Add user preference settings",
		"Fix security vulnerability in authentication",
		"Implement caching for frequently accessed data",
	}

	progressTemplates = []string{
		"Started initial analysis and planning",
		"Completed code implementation",
		"Fixed review comments",
		"Deployed to test environment",
		"Ready for QA testing",
		"Fixed reported bugs",
		"Updated documentation",
		"Investigating issue",
		"Design review completed",
		"Database changes implemented",
	}
)

// Run seeds count amendments plus supporting catalog rows. Everything goes
// in as one transaction.
func (s *Seeder) Run(ctx context.Context, count int) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.catalog == nil || s.uow == nil {
		return errors.New("repositories and unit of work are required")
	}
	if count <= 0 {
		count = 50
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "seed"))

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		appIDs, err := s.seedCatalog(txCtx)
		if err != nil {
			return err
		}

		ids, err := s.seedAmendments(txCtx, count, appIDs)
		if err != nil {
			return err
		}

		if err := s.seedLinks(txCtx, ids); err != nil {
			return err
		}

		logging.Info(logCtx, "seeded database",
			slog.Int("amendments", len(ids)),
			slog.Int("applications", len(appIDs)),
		)
		return nil
	})
}

func (s *Seeder) seedCatalog(ctx context.Context) (map[string]uint64, error) {
	for _, name := range developers {
		if _, err := s.catalog.CreateEmployee(ctx, ports.EmployeeRecord{
			EmployeeName: name,
			IsActive:     true,
		}); err != nil {
			return nil, errs.Wrapf(err, "seed employee %q", name)
		}
	}
	for _, name := range qaTeam {
		if _, err := s.catalog.CreateEmployee(ctx, ports.EmployeeRecord{
			EmployeeName: name,
			IsActive:     true,
		}); err != nil {
			return nil, errs.Wrapf(err, "seed employee %q", name)
		}
	}

	appIDs := make(map[string]uint64, len(seedApplications))
	for _, app := range seedApplications {
		created, err := s.catalog.CreateApplication(ctx, ports.ApplicationRecord{
			ApplicationName: app.name,
			IsActive:        true,
		})
		if err != nil {
			return nil, errs.Wrapf(err, "seed application %q", app.name)
		}
		appIDs[app.name] = created.ApplicationID

		if _, err := s.catalog.CreateApplicationVersion(ctx, ports.ApplicationVersionRecord{
			ApplicationID: created.ApplicationID,
			Version:       app.version,
			IsActive:      true,
		}); err != nil {
			return nil, errs.Wrapf(err, "seed version for %q", app.name)
		}
	}
	return appIDs, nil
}

func (s *Seeder) seedAmendments(ctx context.Context, count int, appIDs map[string]uint64) ([]uint64, error) {
	now := s.clock.Now()
	perDay := map[string]int{}

	ids := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		daysAgo := s.rng.Intn(90)
		reported := now.AddDate(0, 0, -daysAgo)

		prefix := domain.ReferencePrefix(reported)
		perDay[prefix]++
		reference := domain.FormatReference(reported, perDay[prefix])

		status := s.pickStatus(daysAgo)
		devStatus := s.pickDevStatus(status)
		qaCompleted := status == domain.StatusCompleted || status == domain.StatusDeployed
		qaAssigned := qaCompleted || status == domain.StatusTesting

		types := domain.Types()
		priorities := domain.Priorities()

		record := ports.AmendmentRecord{
			Reference:         reference,
			Type:              types[s.rng.Intn(len(types))],
			Description:       descriptions[s.rng.Intn(len(descriptions))],
			Status:            status,
			DevelopmentStatus: devStatus,
			Priority:          priorities[s.rng.Intn(len(priorities))],
			ReportedBy:        strPtr(reporters[s.rng.Intn(len(reporters))]),
			DateReported:      &reported,
			DatabaseChanges:   s.rng.Float64() > 0.7,
			DBUpgradeChanges:  s.rng.Float64() > 0.85,
			QACompleted:       qaCompleted,
			CreatedBy:         strPtr(reporters[s.rng.Intn(len(reporters))]),
			CreatedOn:         reported,
			ModifiedOn:        reported,
		}
		if s.rng.Float64() > 0.3 {
			record.Force = strPtr(domain.Forces[s.rng.Intn(len(domain.Forces))])
		}
		if s.rng.Float64() > 0.2 {
			record.AssignedTo = strPtr(developers[s.rng.Intn(len(developers))])
		}
		if s.rng.Float64() > 0.5 {
			record.Notes = strPtr(fmt.Sprintf("Notes for amendment %s", reference))
		}
		if qaAssigned {
			qaID := int64(s.rng.Intn(len(qaTeam)) + 1)
			assignedDate := reported.AddDate(0, 0, 1+s.rng.Intn(5))
			record.QAAssignedID = &qaID
			record.QAAssignedDate = &assignedDate
		}
		if qaCompleted {
			completedDate := reported.AddDate(0, 0, 5+s.rng.Intn(10))
			record.QASignature = strPtr(qaTeam[s.rng.Intn(len(qaTeam))])
			record.QACompletedDate = &completedDate
			record.QATestPlanCheck = s.rng.Float64() > 0.3
			record.QATestReleaseNotesCheck = s.rng.Float64() > 0.3
			record.ReleaseNotes = strPtr(fmt.Sprintf("Release notes for %s", reference))
		}

		created, err := s.repo.CreateAmendment(ctx, record)
		if err != nil {
			return nil, errs.Wrapf(err, "seed amendment %s", reference)
		}
		ids = append(ids, created.AmendmentID)

		if err := s.seedProgress(ctx, created.AmendmentID, reported, status); err != nil {
			return nil, err
		}
		if s.rng.Float64() > 0.3 {
			app := seedApplications[s.rng.Intn(len(seedApplications))]
			appID := appIDs[app.name]
			if _, err := s.repo.AddApplicationLink(ctx, ports.ApplicationLinkRecord{
				AmendmentID:     created.AmendmentID,
				ApplicationID:   &appID,
				ApplicationName: app.name,
				ReportedVersion: strPtr(app.version),
			}); err != nil {
				return nil, errs.Wrapf(err, "seed application link for %s", reference)
			}
		}
	}
	return ids, nil
}

func (s *Seeder) seedProgress(ctx context.Context, amendmentID uint64, reported time.Time, status domain.Status) error {
	var entries int
	switch status {
	case domain.StatusOpen:
		entries = s.rng.Intn(3)
	case domain.StatusInProgress:
		entries = 1 + s.rng.Intn(3)
	default:
		entries = 2 + s.rng.Intn(4)
	}

	for i := 0; i < entries; i++ {
		date := reported.AddDate(0, 0, i*(1+s.rng.Intn(3)))
		record := ports.ProgressRecord{
			AmendmentID: amendmentID,
			StartDate:   &date,
			Description: progressTemplates[s.rng.Intn(len(progressTemplates))],
			CreatedBy:   strPtr(developers[s.rng.Intn(len(developers))]),
		}
		if _, err := s.repo.AddProgress(ctx, record); err != nil {
			return errs.Wrap(err, "seed progress entry")
		}
	}
	return nil
}

// seedLinks relates roughly one in five amendments to another one.
func (s *Seeder) seedLinks(ctx context.Context, ids []uint64) error {
	if len(ids) < 2 {
		return nil
	}

	linkTypes := domain.LinkTypes()
	for _, id := range ids {
		if s.rng.Float64() > 0.2 {
			continue
		}
		other := ids[s.rng.Intn(len(ids))]
		if other == id {
			continue
		}
		exists, err := s.repo.LinkExists(ctx, id, other)
		if err != nil {
			return errs.Wrap(err, "check seed link")
		}
		if exists {
			continue
		}
		if _, err := s.repo.CreateLink(ctx, ports.LinkRecord{
			AmendmentID:       id,
			LinkedAmendmentID: other,
			LinkType:          linkTypes[s.rng.Intn(len(linkTypes))],
		}); err != nil {
			return errs.Wrap(err, "seed link")
		}
	}
	return nil
}

func (s *Seeder) pickStatus(daysAgo int) domain.Status {
	var pool []domain.Status
	switch {
	case daysAgo < 10:
		pool = []domain.Status{
			domain.StatusOpen, domain.StatusOpen, domain.StatusOpen,
			domain.StatusInProgress, domain.StatusInProgress, domain.StatusInProgress,
			domain.StatusTesting, domain.StatusCompleted,
		}
	case daysAgo < 30:
		pool = []domain.Status{
			domain.StatusInProgress, domain.StatusInProgress,
			domain.StatusTesting, domain.StatusTesting,
			domain.StatusCompleted, domain.StatusDeployed,
		}
	default:
		pool = []domain.Status{
			domain.StatusCompleted, domain.StatusCompleted, domain.StatusCompleted,
			domain.StatusDeployed, domain.StatusDeployed, domain.StatusDeployed,
			domain.StatusTesting,
		}
	}
	return pool[s.rng.Intn(len(pool))]
}

func (s *Seeder) pickDevStatus(status domain.Status) domain.DevelopmentStatus {
	switch status {
	case domain.StatusOpen:
		if s.rng.Intn(2) == 0 {
			return domain.DevNotStarted
		}
		return domain.DevInDevelopment
	case domain.StatusInProgress:
		if s.rng.Intn(2) == 0 {
			return domain.DevInDevelopment
		}
		return domain.DevCodeReview
	default:
		return domain.DevReadyForQA
	}
}

func strPtr(s string) *string { return &s }
