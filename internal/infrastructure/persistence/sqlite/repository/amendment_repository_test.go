package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/infrastructure/persistence/sqlite/model"
	"amendtrack/internal/ports"
)

func setupAmendmentRepository(t *testing.T) *AmendmentRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "amendments.sqlite")
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
		&model.Amendment{},
		&model.AmendmentProgress{},
		&model.AmendmentApplication{},
		&model.AmendmentLink{},
		&model.AmendmentDocument{},
		&model.Employee{},
		&model.Application{},
		&model.ApplicationVersion{},
		&model.ReferenceCounters{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewAmendmentRepository(db)
}

func mustCreateAmendment(t *testing.T, repo *AmendmentRepository, record ports.AmendmentRecord) ports.AmendmentRecord {
	t.Helper()

	if record.Type == "" {
		record.Type = amendment.TypeBug
	}
	if record.Status == "" {
		record.Status = amendment.StatusOpen
	}
	if record.DevelopmentStatus == "" {
		record.DevelopmentStatus = amendment.DevNotStarted
	}
	if record.Priority == "" {
		record.Priority = amendment.PriorityMedium
	}
	if record.Description == "" {
		record.Description = "test amendment"
	}

	created, err := repo.CreateAmendment(context.Background(), record)
	if err != nil {
		t.Fatalf("create amendment %q: %v", record.Reference, err)
	}
	return created
}

func TestCreateAmendmentDuplicateReference(t *testing.T) {
	repo := setupAmendmentRepository(t)

	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "AMD-20260115-001"})

	_, err := repo.CreateAmendment(context.Background(), ports.AmendmentRecord{
		Reference:         "AMD-20260115-001",
		Type:              amendment.TypeBug,
		Description:       "second",
		Status:            amendment.StatusOpen,
		DevelopmentStatus: amendment.DevNotStarted,
		Priority:          amendment.PriorityMedium,
	})
	if !errors.Is(err, amendment.ErrDuplicateReference) {
		t.Fatalf("CreateAmendment() error = %v, want ErrDuplicateReference", err)
	}
	if kind := errs.KindOf(err); kind != errs.KindConflict {
		t.Fatalf("KindOf() = %v, want KindConflict", kind)
	}
}

func TestGetAmendmentNotFound(t *testing.T) {
	repo := setupAmendmentRepository(t)

	_, err := repo.GetAmendment(context.Background(), 999)
	if !errors.Is(err, amendment.ErrNotFound) {
		t.Fatalf("GetAmendment() error = %v, want ErrNotFound", err)
	}
	if kind := errs.KindOf(err); kind != errs.KindNotFound {
		t.Fatalf("KindOf() = %v, want KindNotFound", kind)
	}
}

func TestListAmendmentsFiltersAreANDed(t *testing.T) {
	repo := setupAmendmentRepository(t)

	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference: "AMD-20260101-001",
		Status:    amendment.StatusOpen,
		Priority:  amendment.PriorityHigh,
	})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference: "AMD-20260101-002",
		Status:    amendment.StatusOpen,
		Priority:  amendment.PriorityLow,
	})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference: "AMD-20260101-003",
		Status:    amendment.StatusCompleted,
		Priority:  amendment.PriorityHigh,
	})

	items, total, err := repo.ListAmendments(context.Background(), ports.AmendmentFilter{
		Statuses:   []string{string(amendment.StatusOpen)},
		Priorities: []string{string(amendment.PriorityHigh)},
	})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("ListAmendments() total = %d, len = %d, want 1, 1", total, len(items))
	}
	if items[0].Reference != "AMD-20260101-001" {
		t.Fatalf("ListAmendments() reference = %s", items[0].Reference)
	}
}

func TestListAmendmentsValueSetIsORed(t *testing.T) {
	repo := setupAmendmentRepository(t)

	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "r1", Status: amendment.StatusOpen})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "r2", Status: amendment.StatusTesting})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "r3", Status: amendment.StatusDeployed})

	_, total, err := repo.ListAmendments(context.Background(), ports.AmendmentFilter{
		Statuses: []string{string(amendment.StatusOpen), string(amendment.StatusTesting)},
	})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	if total != 2 {
		t.Fatalf("ListAmendments() total = %d, want 2", total)
	}
}

func TestListAmendmentsQAAssignedPresence(t *testing.T) {
	repo := setupAmendmentRepository(t)

	qaID := int64(7)
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "with-qa", QAAssignedID: &qaID})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "without-qa"})

	assigned := true
	items, _, err := repo.ListAmendments(context.Background(), ports.AmendmentFilter{QAAssigned: &assigned})
	if err != nil {
		t.Fatalf("ListAmendments(assigned) error = %v", err)
	}
	if len(items) != 1 || items[0].Reference != "with-qa" {
		t.Fatalf("ListAmendments(assigned) = %+v", items)
	}

	assigned = false
	items, _, err = repo.ListAmendments(context.Background(), ports.AmendmentFilter{QAAssigned: &assigned})
	if err != nil {
		t.Fatalf("ListAmendments(unassigned) error = %v", err)
	}
	if len(items) != 1 || items[0].Reference != "without-qa" {
		t.Fatalf("ListAmendments(unassigned) = %+v", items)
	}
}

func TestListAmendmentsSearchText(t *testing.T) {
	repo := setupAmendmentRepository(t)

	notes := "crash in the export step"
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:   "s1",
		Description: "login failure",
	})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:   "s2",
		Description: "report layout",
		Notes:       &notes,
	})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:   "s3",
		Description: "unrelated",
	})

	_, total, err := repo.ListAmendments(context.Background(), ports.AmendmentFilter{SearchText: "export"})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	if total != 1 {
		t.Fatalf("ListAmendments(search notes) total = %d, want 1", total)
	}

	_, total, err = repo.ListAmendments(context.Background(), ports.AmendmentFilter{SearchText: "login"})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	if total != 1 {
		t.Fatalf("ListAmendments(search description) total = %d, want 1", total)
	}
}

func TestListAmendmentsPagination(t *testing.T) {
	repo := setupAmendmentRepository(t)

	for i := 1; i <= 5; i++ {
		mustCreateAmendment(t, repo, ports.AmendmentRecord{
			Reference: fmt.Sprintf("p-%03d", i),
		})
	}

	items, total, err := repo.ListAmendments(context.Background(), ports.AmendmentFilter{
		SortBy:    "amendment_id",
		SortOrder: "asc",
		Skip:      2,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5 (unpaginated count)", total)
	}
	if len(items) != 2 {
		t.Fatalf("page len = %d, want 2", len(items))
	}
	if items[0].Reference != "p-003" || items[1].Reference != "p-004" {
		t.Fatalf("page = %s, %s", items[0].Reference, items[1].Reference)
	}

	// A skip past the end is an empty page, not an error.
	items, total, err = repo.ListAmendments(context.Background(), ports.AmendmentFilter{Skip: 100, Limit: 10})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	if total != 5 || len(items) != 0 {
		t.Fatalf("past-end page: total = %d, len = %d", total, len(items))
	}
}

func TestListAmendmentsUnknownSortFallsBack(t *testing.T) {
	repo := setupAmendmentRepository(t)

	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "a"})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "b"})

	items, _, err := repo.ListAmendments(context.Background(), ports.AmendmentFilter{
		SortBy: "; drop table amendments --",
	})
	if err != nil {
		t.Fatalf("ListAmendments() error = %v", err)
	}
	// Fallback is amendment_id descending.
	if len(items) != 2 || items[0].Reference != "b" {
		t.Fatalf("ListAmendments() = %+v", items)
	}
}

func TestUpdateAmendmentPartial(t *testing.T) {
	repo := setupAmendmentRepository(t)
	ctx := context.Background()

	created := mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:   "u1",
		Description: "before",
		Status:      amendment.StatusOpen,
	})

	err := repo.UpdateAmendment(ctx, created.AmendmentID, map[string]any{
		"amendment_status": string(amendment.StatusTesting),
	})
	if err != nil {
		t.Fatalf("UpdateAmendment() error = %v", err)
	}

	got, err := repo.GetAmendment(ctx, created.AmendmentID)
	if err != nil {
		t.Fatalf("GetAmendment() error = %v", err)
	}
	if got.Status != amendment.StatusTesting {
		t.Fatalf("status = %s, want Testing", got.Status)
	}
	if got.Description != "before" {
		t.Fatalf("description changed: %s", got.Description)
	}

	if err := repo.UpdateAmendment(ctx, 9999, map[string]any{"notes": "x"}); !errors.Is(err, amendment.ErrNotFound) {
		t.Fatalf("UpdateAmendment(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteAmendmentCascades(t *testing.T) {
	repo := setupAmendmentRepository(t)
	ctx := context.Background()

	target := mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "victim"})
	other := mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "bystander"})

	if _, err := repo.AddProgress(ctx, ports.ProgressRecord{
		AmendmentID: target.AmendmentID,
		Description: "progress on victim",
	}); err != nil {
		t.Fatalf("AddProgress() error = %v", err)
	}
	if _, err := repo.AddProgress(ctx, ports.ProgressRecord{
		AmendmentID: other.AmendmentID,
		Description: "progress on bystander",
	}); err != nil {
		t.Fatalf("AddProgress() error = %v", err)
	}
	if _, err := repo.AddDocument(ctx, ports.DocumentRecord{
		AmendmentID:  target.AmendmentID,
		DocumentName: "plan",
		FilePath:     "amd-1/doc.txt",
		DocumentType: amendment.DocTestPlan,
	}); err != nil {
		t.Fatalf("AddDocument() error = %v", err)
	}
	// Outgoing link from the victim, incoming link from the bystander.
	if _, err := repo.CreateLink(ctx, ports.LinkRecord{
		AmendmentID:       target.AmendmentID,
		LinkedAmendmentID: other.AmendmentID,
		LinkType:          amendment.LinkBlocks,
	}); err != nil {
		t.Fatalf("CreateLink() error = %v", err)
	}
	if _, err := repo.CreateLink(ctx, ports.LinkRecord{
		AmendmentID:       other.AmendmentID,
		LinkedAmendmentID: target.AmendmentID,
		LinkType:          amendment.LinkRelated,
	}); err != nil {
		t.Fatalf("CreateLink() error = %v", err)
	}

	files, err := repo.DeleteAmendment(ctx, target.AmendmentID)
	if err != nil {
		t.Fatalf("DeleteAmendment() error = %v", err)
	}
	if len(files.DocumentPaths) != 1 || files.DocumentPaths[0] != "amd-1/doc.txt" {
		t.Fatalf("DocumentPaths = %v", files.DocumentPaths)
	}

	if _, err := repo.GetAmendment(ctx, target.AmendmentID); !errors.Is(err, amendment.ErrNotFound) {
		t.Fatalf("GetAmendment(victim) error = %v, want ErrNotFound", err)
	}
	progress, err := repo.ListProgress(ctx, target.AmendmentID)
	if err != nil {
		t.Fatalf("ListProgress() error = %v", err)
	}
	if len(progress) != 0 {
		t.Fatalf("victim progress survived: %d", len(progress))
	}
	links, err := repo.ListLinks(ctx, target.AmendmentID)
	if err != nil {
		t.Fatalf("ListLinks() error = %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("victim outgoing links survived: %d", len(links))
	}

	// The bystander and its children are untouched, including its now-dangling
	// link to the deleted amendment.
	if _, err := repo.GetAmendment(ctx, other.AmendmentID); err != nil {
		t.Fatalf("GetAmendment(bystander) error = %v", err)
	}
	otherProgress, err := repo.ListProgress(ctx, other.AmendmentID)
	if err != nil {
		t.Fatalf("ListProgress(bystander) error = %v", err)
	}
	if len(otherProgress) != 1 {
		t.Fatalf("bystander progress = %d, want 1", len(otherProgress))
	}
	otherLinks, err := repo.ListLinks(ctx, other.AmendmentID)
	if err != nil {
		t.Fatalf("ListLinks(bystander) error = %v", err)
	}
	if len(otherLinks) != 1 {
		t.Fatalf("bystander links = %d, want 1", len(otherLinks))
	}
}

func TestLastReferenceWithPrefix(t *testing.T) {
	repo := setupAmendmentRepository(t)
	ctx := context.Background()

	_, found, err := repo.LastReferenceWithPrefix(ctx, "AMD-20260301-")
	if err != nil {
		t.Fatalf("LastReferenceWithPrefix() error = %v", err)
	}
	if found {
		t.Fatal("found = true on empty table")
	}

	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "AMD-20260301-001"})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "AMD-20260301-002"})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "AMD-20260228-005"})

	last, found, err := repo.LastReferenceWithPrefix(ctx, "AMD-20260301-")
	if err != nil {
		t.Fatalf("LastReferenceWithPrefix() error = %v", err)
	}
	if !found || last != "AMD-20260301-002" {
		t.Fatalf("LastReferenceWithPrefix() = %q, found = %v", last, found)
	}
}

func TestLinkExists(t *testing.T) {
	repo := setupAmendmentRepository(t)
	ctx := context.Background()

	a := mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "l1"})
	b := mustCreateAmendment(t, repo, ports.AmendmentRecord{Reference: "l2"})

	if _, err := repo.CreateLink(ctx, ports.LinkRecord{
		AmendmentID:       a.AmendmentID,
		LinkedAmendmentID: b.AmendmentID,
		LinkType:          amendment.LinkRelated,
	}); err != nil {
		t.Fatalf("CreateLink() error = %v", err)
	}

	exists, err := repo.LinkExists(ctx, a.AmendmentID, b.AmendmentID)
	if err != nil {
		t.Fatalf("LinkExists() error = %v", err)
	}
	if !exists {
		t.Fatal("LinkExists() = false for existing pair")
	}

	// The reverse ordered pair is a distinct link.
	exists, err = repo.LinkExists(ctx, b.AmendmentID, a.AmendmentID)
	if err != nil {
		t.Fatalf("LinkExists(reverse) error = %v", err)
	}
	if exists {
		t.Fatal("LinkExists(reverse) = true, want false")
	}
}

func TestAmendmentStats(t *testing.T) {
	repo := setupAmendmentRepository(t)

	qaID := int64(1)
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:       "st1",
		Status:          amendment.StatusOpen,
		Priority:        amendment.PriorityHigh,
		DatabaseChanges: true,
		QAAssignedID:    &qaID,
	})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference: "st2",
		Status:    amendment.StatusOpen,
		Priority:  amendment.PriorityLow,
	})
	mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:    "st3",
		Status:       amendment.StatusCompleted,
		Priority:     amendment.PriorityHigh,
		QACompleted:  true,
		QAAssignedID: &qaID,
	})

	stats, err := repo.AmendmentStats(context.Background())
	if err != nil {
		t.Fatalf("AmendmentStats() error = %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("Total = %d, want 3", stats.Total)
	}
	if stats.ByStatus[string(amendment.StatusOpen)] != 2 {
		t.Fatalf("ByStatus[Open] = %d, want 2", stats.ByStatus[string(amendment.StatusOpen)])
	}
	if stats.ByPriority[string(amendment.PriorityHigh)] != 2 {
		t.Fatalf("ByPriority[High] = %d, want 2", stats.ByPriority[string(amendment.PriorityHigh)])
	}
	if stats.QAPending != 1 {
		t.Fatalf("QAPending = %d, want 1", stats.QAPending)
	}
	if stats.DatabaseChanges != 1 {
		t.Fatalf("DatabaseChanges = %d, want 1", stats.DatabaseChanges)
	}
}

func TestAmendmentTimestampsPreservedOnImport(t *testing.T) {
	repo := setupAmendmentRepository(t)

	past := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)
	created := mustCreateAmendment(t, repo, ports.AmendmentRecord{
		Reference:  "old-row",
		CreatedOn:  past,
		ModifiedOn: past,
	})

	if !created.CreatedOn.Equal(past) {
		t.Fatalf("CreatedOn = %v, want %v", created.CreatedOn, past)
	}
	if !created.ModifiedOn.Equal(past) {
		t.Fatalf("ModifiedOn = %v, want %v", created.ModifiedOn, past)
	}
}
