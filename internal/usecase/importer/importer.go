package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"amendtrack/internal/bootstrap/logging"
	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// Importer replays a SQL Server dump of the legacy Amendment table into the
// current store: columns are remapped, statuses and types translated per the
// mapping tables, the development status derived, the combined
// application (version) field split out into application links, and the
// per-type reference high-water marks recorded.
type Importer struct {
	repo    ports.AmendmentRepository
	catalog ports.CatalogRepository
	uow     ports.UnitOfWork
	clock   ports.Clock
	mapping Mapping
}

func New(repo ports.AmendmentRepository, catalog ports.CatalogRepository, uow ports.UnitOfWork, clock ports.Clock, mapping Mapping) *Importer {
	return &Importer{
		repo:    repo,
		catalog: catalog,
		uow:     uow,
		clock:   clock,
		mapping: mapping,
	}
}

// Summary reports the outcome of a run.
type Summary struct {
	Imported int
	Skipped  int
	Counters ports.ReferenceCounters
}

var appVersionRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)

// splitApplicationVersion breaks a combined "Name (version)" field into its
// parts. ok is false when the field does not carry a parenthesised version.
func splitApplicationVersion(field string) (name, version string, ok bool) {
	m := appVersionRe.FindStringSubmatch(strings.TrimSpace(field))
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// leadingNumber extracts the integer prefix of a legacy reference such as
// "1000E(a)".
func leadingNumber(reference string) (int64, bool) {
	i := 0
	for i < len(reference) && reference[i] >= '0' && reference[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(reference[:i], 10, 64)
	return n, err == nil
}

// Run imports every Amendment INSERT found in the dump. The whole import is
// one transaction; malformed rows are skipped and counted, a storage failure
// rolls everything back.
func (im *Importer) Run(ctx context.Context, r io.Reader) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, errs.Wrap(err, "check context")
	}
	if im.repo == nil || im.uow == nil {
		return Summary{}, errors.New("amendment repository and unit of work are required")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, errs.Wrap(err, "read dump")
	}

	var inserts []string
	for _, line := range strings.Split(decodeExport(data), "\n") {
		if isAmendmentInsert(line) {
			inserts = append(inserts, strings.TrimSpace(line))
		}
	}
	if len(inserts) == 0 {
		return Summary{}, errs.E(errs.KindInvalid, "no Amendment INSERT statements found in dump")
	}

	columns, err := parseInsertColumns(inserts[0])
	if err != nil {
		return Summary{}, err
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "importer"))
	logging.Info(logCtx, "parsed legacy dump",
		slog.Int("inserts", len(inserts)),
		slog.Int("columns", len(columns)),
	)

	appIDs, err := im.applicationIDsByName(ctx)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	counters := map[string]int64{}

	err = im.uow.WithTx(ctx, func(txCtx context.Context) error {
		for idx, stmt := range inserts {
			row, ok := im.parseRow(logCtx, idx+1, columns, stmt)
			if !ok {
				summary.Skipped++
				continue
			}

			record, appLink := im.buildRecord(row)

			created, err := im.repo.CreateAmendment(txCtx, record)
			if err != nil {
				return errs.Wrapf(err, "import row %d (reference %q)", idx+1, record.Reference)
			}
			summary.Imported++

			if appLink != nil {
				appLink.AmendmentID = created.AmendmentID
				if id, ok := appIDs[strings.ToLower(appLink.ApplicationName)]; ok {
					appLink.ApplicationID = &id
				}
				if _, err := im.repo.AddApplicationLink(txCtx, *appLink); err != nil {
					return errs.Wrapf(err, "import application link for row %d", idx+1)
				}
			}

			if n, ok := leadingNumber(record.Reference); ok {
				if n > counters[string(record.Type)] {
					counters[string(record.Type)] = n
				}
			}
		}

		summary.Counters = ports.ReferenceCounters{
			Bug:           counters[string(domain.TypeBug)],
			Fault:         counters[string(domain.TypeFault)],
			Enhancement:   counters[string(domain.TypeEnhancement)],
			Feature:       counters[string(domain.TypeFeature)],
			Suggestion:    counters[string(domain.TypeSuggestion)],
			Maintenance:   counters[string(domain.TypeMaintenance)],
			Documentation: counters[string(domain.TypeDocumentation)],
		}
		return im.repo.UpsertReferenceCounters(txCtx, summary.Counters)
	})
	if err != nil {
		return Summary{}, err
	}

	logging.Info(logCtx, "import finished",
		slog.Int("imported", summary.Imported),
		slog.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (im *Importer) applicationIDsByName(ctx context.Context) (map[string]uint64, error) {
	out := map[string]uint64{}
	if im.catalog == nil {
		return out, nil
	}

	apps, err := im.catalog.ListApplications(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list applications")
	}
	for _, app := range apps {
		out[strings.ToLower(app.ApplicationName)] = app.ApplicationID
	}
	return out, nil
}

func (im *Importer) parseRow(ctx context.Context, lineNo int, columns []string, stmt string) (map[string]any, bool) {
	values, err := parseInsertValues(stmt)
	if err != nil {
		logging.Warn(ctx, "skipping row", slog.Int("line", lineNo), slog.Any("err", errs.Loggable(err)))
		return nil, false
	}
	if len(values) != len(columns) {
		logging.Warn(ctx, "skipping row: column count mismatch",
			slog.Int("line", lineNo),
			slog.Int("got", len(values)),
			slog.Int("want", len(columns)),
		)
		return nil, false
	}

	row := make(map[string]any, len(columns))
	for i, col := range columns {
		row[col] = cleanValue(values[i])
	}
	return row, true
}

// buildRecord maps a cleaned legacy row to an amendment record plus an
// optional application link split out of the combined Application field.
func (im *Importer) buildRecord(row map[string]any) (ports.AmendmentRecord, *ports.ApplicationLinkRecord) {
	status := im.mapping.MapStatus(asString(row["Amendment Status"]))
	amendmentType := im.mapping.MapType(asString(row["Amendment Type"]))
	devStatus := DeriveDevelopmentStatus(status)

	record := ports.AmendmentRecord{
		Reference:         asString(row["Amendment Reference"]),
		Type:              domain.Type(amendmentType),
		Description:       asString(row["Description"]),
		Status:            domain.Status(status),
		DevelopmentStatus: domain.DevelopmentStatus(devStatus),
		Priority:          domain.Priority(asString(row["Priority"])),
		Force:             asStringPtr(row["Force"]),
		Notes:             asStringPtr(row["Notes"]),
		ReportedBy:        asStringPtr(row["Reported By"]),
		AssignedTo:        asStringPtr(row["Assigned To"]),
		DateReported:      asTimePtr(row["Date Reported"]),
		DatabaseChanges:   asBool(row["Database Changes"]),
		DBUpgradeChanges:  asBool(row["DB Upgrade Changes"]),
		ReleaseNotes:      asStringPtr(row["Release Notes"]),

		QAAssignedID:            asInt64Ptr(row["QA Assigned Id"]),
		QAAssignedDate:          asTimePtr(row["QA Assigned Date"]),
		QATestPlanCheck:         asBool(row["QA Test Plan Check"]),
		QATestReleaseNotesCheck: asBool(row["QA Test Release Notes Check"]),
		QACompleted:             asBool(row["QA Completed"]),
		QASignature:             asStringPtr(row["QA Signature"]),
		QACompletedDate:         asTimePtr(row["QA Completed Date"]),
		QANotes:                 asStringPtr(row["QA Notes"]),
		QATestPlanLink:          asStringPtr(row["QA Test Plan Link"]),

		CreatedBy:  asStringPtr(row["Created By"]),
		ModifiedBy: asStringPtr(row["Modified By"]),
	}

	// Required-field fallbacks for sparse legacy rows.
	if record.Description == "" {
		record.Description = "(No description provided)"
	}
	if record.Priority == "" {
		record.Priority = domain.PriorityMedium
	}

	now := im.clock.Now()
	if t := asTimePtr(row["Created On"]); t != nil {
		record.CreatedOn = *t
	} else if record.DateReported != nil {
		record.CreatedOn = *record.DateReported
	} else {
		record.CreatedOn = now
	}
	if t := asTimePtr(row["Modified On"]); t != nil {
		record.ModifiedOn = *t
	} else {
		record.ModifiedOn = record.CreatedOn
	}

	// The flat Application column moves to an application link; the combined
	// "Name (version)" form carries the reported version.
	var appLink *ports.ApplicationLinkRecord
	if field := asString(row["Application"]); field != "" {
		appLink = &ports.ApplicationLinkRecord{
			ApplicationName:   strings.TrimSpace(field),
			AppliedVersion:    asStringPtr(row["Applied Version"]),
			DevelopmentStatus: &devStatus,
		}
		if name, version, ok := splitApplicationVersion(field); ok {
			appLink.ApplicationName = name
			appLink.ReportedVersion = &version
		}
	}

	return record, appLink
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringPtr(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	default:
		return false
	}
}

func asInt64Ptr(v any) *int64 {
	n, ok := v.(int64)
	if !ok {
		return nil
	}
	return &n
}

func asTimePtr(v any) *time.Time {
	t, ok := v.(time.Time)
	if !ok {
		return nil
	}
	return &t
}
