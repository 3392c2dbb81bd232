package importer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/infrastructure/persistence/sqlite/model"
	"amendtrack/internal/infrastructure/persistence/sqlite/repository"
	"amendtrack/internal/infrastructure/persistence/sqlite/uow"
	"amendtrack/internal/ports"
)

func TestParseInsertColumns(t *testing.T) {
	line := `INSERT [dbo].[Amendment] ([Amendment Reference], [Amendment Type], [Description]) VALUES (N'1000', N'Bug', N'x')`

	columns, err := parseInsertColumns(line)
	if err != nil {
		t.Fatalf("parseInsertColumns() error = %v", err)
	}
	want := []string{"Amendment Reference", "Amendment Type", "Description"}
	if len(columns) != len(want) {
		t.Fatalf("columns = %v", columns)
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Fatalf("columns[%d] = %q, want %q", i, columns[i], want[i])
		}
	}
}

func TestParseInsertValues(t *testing.T) {
	line := `INSERT [dbo].[Amendment] ([A], [B], [C], [D], [E]) VALUES (N'it''s broken, badly', CAST(N'2015-03-04T10:30:00.000' AS DateTime), NULL, 1, 'plain')`

	values, err := parseInsertValues(line)
	if err != nil {
		t.Fatalf("parseInsertValues() error = %v", err)
	}
	if len(values) != 5 {
		t.Fatalf("values = %v", values)
	}
	if values[0] != `N'it''s broken, badly'` {
		t.Fatalf("values[0] = %q", values[0])
	}
	if values[1] != `CAST(N'2015-03-04T10:30:00.000' AS DateTime)` {
		t.Fatalf("values[1] = %q", values[1])
	}
	if values[2] != "NULL" {
		t.Fatalf("values[2] = %q", values[2])
	}
}

func TestCleanValue(t *testing.T) {
	if v := cleanValue("NULL"); v != nil {
		t.Fatalf("cleanValue(NULL) = %v", v)
	}
	if v := cleanValue(`N'it''s fine'`); v != "it's fine" {
		t.Fatalf("cleanValue(N-string) = %v", v)
	}
	if v := cleanValue(`'legacy'`); v != "legacy" {
		t.Fatalf("cleanValue(plain string) = %v", v)
	}
	if v := cleanValue("1"); v != true {
		t.Fatalf("cleanValue(1) = %v", v)
	}
	if v := cleanValue("0"); v != false {
		t.Fatalf("cleanValue(0) = %v", v)
	}
	if v := cleanValue("42"); v != int64(42) {
		t.Fatalf("cleanValue(42) = %v", v)
	}
	if v := cleanValue("3.5"); v != 3.5 {
		t.Fatalf("cleanValue(3.5) = %v", v)
	}

	v := cleanValue(`CAST(N'2015-03-04T10:30:00.000' AS DateTime)`)
	ts, ok := v.(time.Time)
	if !ok {
		t.Fatalf("cleanValue(CAST) = %T", v)
	}
	want := time.Date(2015, 3, 4, 10, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("cleanValue(CAST) = %v, want %v", ts, want)
	}
}

func TestMappingFallbacks(t *testing.T) {
	m := DefaultMapping()

	if got := m.MapStatus("Applied To Master"); got != string(domain.StatusCompleted) {
		t.Fatalf("MapStatus(Applied To Master) = %s", got)
	}
	if got := m.MapStatus("Released to Customers"); got != string(domain.StatusDeployed) {
		t.Fatalf("MapStatus(Released to Customers) = %s", got)
	}
	if got := m.MapStatus("Something Nobody Wrote Down"); got != string(domain.StatusOpen) {
		t.Fatalf("MapStatus(unknown) = %s", got)
	}
	if got := m.MapType("Bug"); got != string(domain.TypeFault) {
		t.Fatalf("MapType(Bug) = %s", got)
	}
	if got := m.MapType("Feature"); got != string(domain.TypeEnhancement) {
		t.Fatalf("MapType(Feature) = %s", got)
	}
	if got := m.MapType(""); got != string(domain.TypeBug) {
		t.Fatalf("MapType(empty) = %s", got)
	}
}

func TestDeriveDevelopmentStatus(t *testing.T) {
	cases := map[string]string{
		string(domain.StatusDeployed):   string(domain.DevReadyForQA),
		string(domain.StatusCompleted):  string(domain.DevReadyForQA),
		string(domain.StatusTesting):    string(domain.DevReadyForQA),
		string(domain.StatusInProgress): string(domain.DevInDevelopment),
		string(domain.StatusOpen):       string(domain.DevNotStarted),
	}
	for status, want := range cases {
		if got := DeriveDevelopmentStatus(status); got != want {
			t.Fatalf("DeriveDevelopmentStatus(%s) = %s, want %s", status, got, want)
		}
	}
}

func TestSplitApplicationVersion(t *testing.T) {
	name, version, ok := splitApplicationVersion("Command and Control (4.2.1)")
	if !ok || name != "Command and Control" || version != "4.2.1" {
		t.Fatalf("splitApplicationVersion() = %q, %q, %v", name, version, ok)
	}
	if _, _, ok := splitApplicationVersion("Command and Control"); ok {
		t.Fatal("splitApplicationVersion(no version) ok = true")
	}
}

func TestLeadingNumber(t *testing.T) {
	if n, ok := leadingNumber("1043E(a)"); !ok || n != 1043 {
		t.Fatalf("leadingNumber(1043E(a)) = %d, %v", n, ok)
	}
	if _, ok := leadingNumber("ABC-123"); ok {
		t.Fatal("leadingNumber(ABC-123) ok = true")
	}
}

func TestDecodeExportUTF16(t *testing.T) {
	// "INSERT" in UTF-16 LE with a BOM.
	raw := []byte{0xFF, 0xFE}
	for _, r := range "INSERT" {
		raw = append(raw, byte(r), 0x00)
	}
	if got := decodeExport(raw); got != "INSERT" {
		t.Fatalf("decodeExport(LE) = %q", got)
	}

	raw = []byte{0xFE, 0xFF}
	for _, r := range "INSERT" {
		raw = append(raw, 0x00, byte(r))
	}
	if got := decodeExport(raw); got != "INSERT" {
		t.Fatalf("decodeExport(BE) = %q", got)
	}

	if got := decodeExport([]byte("plain utf-8")); got != "plain utf-8" {
		t.Fatalf("decodeExport(utf-8) = %q", got)
	}
}

type importClock struct{ now time.Time }

func (c importClock) Now() time.Time { return c.now }

func setupImporter(t *testing.T) (*Importer, ports.AmendmentRepository, ports.CatalogRepository) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "import.sqlite")
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

	repo := repository.NewAmendmentRepository(db)
	catalog := repository.NewCatalogRepository(db)
	clock := importClock{now: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)}
	return New(repo, catalog, uow.NewUnitOfWork(db), clock, DefaultMapping()), repo, catalog
}

const sampleDump = `SET IDENTITY_INSERT [dbo].[Amendment] ON
INSERT [dbo].[Amendment] ([Amendment Reference], [Amendment Type], [Description], [Amendment Status], [Priority], [Application], [Reported By], [Date Reported], [Database Changes], [Created On]) VALUES (N'1043', N'Bug', N'it''s crashing on save', N'Applied To Master', N'High', N'Command and Control (4.2.1)', N'J Smith', CAST(N'2015-03-04T10:30:00.000' AS DateTime), 1, CAST(N'2015-03-04T10:35:00.000' AS DateTime))
INSERT [dbo].[Amendment] ([Amendment Reference], [Amendment Type], [Description], [Amendment Status], [Priority], [Application], [Reported By], [Date Reported], [Database Changes], [Created On]) VALUES (N'1044E', N'Feature', NULL, N'In Progress', NULL, NULL, NULL, NULL, 0, NULL)
INSERT [dbo].[Amendment] ([Amendment Reference], [Amendment Type]) VALUES (N'broken row')
SET IDENTITY_INSERT [dbo].[Amendment] OFF
`

func TestImporterRun(t *testing.T) {
	importer, repo, catalog := setupImporter(t)
	ctx := context.Background()

	// A pre-registered application matching the dump row should be linked
	// by id, case-insensitively.
	app, err := catalog.CreateApplication(ctx, ports.ApplicationRecord{
		ApplicationName: "command and control",
		IsActive:        true,
	})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}

	summary, err := importer.Run(ctx, strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Imported != 2 {
		t.Fatalf("Imported = %d, want 2", summary.Imported)
	}
	if summary.Skipped != 1 {
		t.Fatalf("Skipped = %d, want 1", summary.Skipped)
	}

	first, err := repo.GetAmendmentByReference(ctx, "1043")
	if err != nil {
		t.Fatalf("GetAmendmentByReference(1043) error = %v", err)
	}
	if first.Type != domain.TypeFault {
		t.Fatalf("type = %s, want Fault (mapped from Bug)", first.Type)
	}
	if first.Status != domain.StatusCompleted {
		t.Fatalf("status = %s, want Completed (mapped from Applied To Master)", first.Status)
	}
	if first.DevelopmentStatus != domain.DevReadyForQA {
		t.Fatalf("development status = %s, want Ready for QA", first.DevelopmentStatus)
	}
	if first.Description != "it's crashing on save" {
		t.Fatalf("description = %q", first.Description)
	}
	if !first.DatabaseChanges {
		t.Fatal("DatabaseChanges = false")
	}
	wantCreated := time.Date(2015, 3, 4, 10, 35, 0, 0, time.UTC)
	if !first.CreatedOn.Equal(wantCreated) {
		t.Fatalf("CreatedOn = %v, want original %v", first.CreatedOn, wantCreated)
	}

	links, err := repo.ListApplicationLinks(ctx, first.AmendmentID)
	if err != nil {
		t.Fatalf("ListApplicationLinks() error = %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("application links = %d, want 1", len(links))
	}
	if links[0].ApplicationName != "Command and Control" {
		t.Fatalf("application name = %q", links[0].ApplicationName)
	}
	if links[0].ReportedVersion == nil || *links[0].ReportedVersion != "4.2.1" {
		t.Fatalf("reported version = %v", links[0].ReportedVersion)
	}
	if links[0].ApplicationID == nil || *links[0].ApplicationID != app.ApplicationID {
		t.Fatalf("application id = %v, want %d", links[0].ApplicationID, app.ApplicationID)
	}

	second, err := repo.GetAmendmentByReference(ctx, "1044E")
	if err != nil {
		t.Fatalf("GetAmendmentByReference(1044E) error = %v", err)
	}
	if second.Description != "(No description provided)" {
		t.Fatalf("sparse description = %q", second.Description)
	}
	if second.Priority != domain.PriorityMedium {
		t.Fatalf("sparse priority = %s", second.Priority)
	}
	if second.Type != domain.TypeEnhancement {
		t.Fatalf("type = %s, want Enhancement (mapped from Feature)", second.Type)
	}
	if second.DevelopmentStatus != domain.DevInDevelopment {
		t.Fatalf("development status = %s, want In Development", second.DevelopmentStatus)
	}

	// The fault counter carries the highest leading number seen per type.
	if summary.Counters.Fault != 1043 {
		t.Fatalf("Fault counter = %d", summary.Counters.Fault)
	}
	if summary.Counters.Enhancement != 1044 {
		t.Fatalf("Enhancement counter = %d", summary.Counters.Enhancement)
	}
}

func TestImporterRunNoInserts(t *testing.T) {
	importer, _, _ := setupImporter(t)

	_, err := importer.Run(context.Background(), strings.NewReader("SELECT 1\n"))
	if err == nil {
		t.Fatal("Run() error = nil, want error on empty dump")
	}
}
