package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/infrastructure/persistence/sqlite/model"
	"amendtrack/internal/ports"
)

type AmendmentRepository struct {
	db *gorm.DB
}

func NewAmendmentRepository(db *gorm.DB) *AmendmentRepository {
	return &AmendmentRepository{db: db}
}

func (r *AmendmentRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

// sortColumns is the allow-list for caller-supplied sort keys. Unknown keys
// fall back to the primary key instead of failing.
var sortColumns = map[string]string{
	"amendment_id":        "amendment_id",
	"amendment_reference": "amendment_reference",
	"amendment_type":      "amendment_type",
	"amendment_status":    "amendment_status",
	"development_status":  "development_status",
	"priority":            "priority",
	"force":               "force",
	"application":         "application",
	"reported_by":         "reported_by",
	"assigned_to":         "assigned_to",
	"date_reported":       "date_reported",
	"qa_completed":        "qa_completed",
	"created_on":          "created_on",
	"modified_on":         "modified_on",
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func (r *AmendmentRepository) CreateAmendment(ctx context.Context, record ports.AmendmentRecord) (ports.AmendmentRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.AmendmentRecord{}, err
	}

	row := toAmendmentModel(record)
	if err := db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.AmendmentRecord{}, errs.Wrapf(amendment.ErrDuplicateReference, "reference %q", record.Reference)
		}
		return ports.AmendmentRecord{}, errs.WithKind(errs.Wrap(err, "insert amendment"), errs.KindStorage)
	}
	return mapAmendment(row), nil
}

func (r *AmendmentRepository) GetAmendment(ctx context.Context, amendmentID uint64) (ports.AmendmentRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.AmendmentRecord{}, err
	}

	var row model.Amendment
	if err := db.First(&row, "amendment_id = ?", amendmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AmendmentRecord{}, errs.Wrapf(amendment.ErrNotFound, "amendment %d", amendmentID)
		}
		return ports.AmendmentRecord{}, errs.WithKind(errs.Wrap(err, "query amendment"), errs.KindStorage)
	}
	return mapAmendment(row), nil
}

func (r *AmendmentRepository) GetAmendmentByReference(ctx context.Context, reference string) (ports.AmendmentRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.AmendmentRecord{}, err
	}

	var row model.Amendment
	if err := db.First(&row, "amendment_reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AmendmentRecord{}, errs.Wrapf(amendment.ErrNotFound, "reference %q", reference)
		}
		return ports.AmendmentRecord{}, errs.WithKind(errs.Wrap(err, "query amendment by reference"), errs.KindStorage)
	}
	return mapAmendment(row), nil
}

// ListAmendments applies the filter, counts the full match set, then fetches
// the requested page. Count and fetch run inside one transaction so they
// observe the same predicate over the same snapshot.
func (r *AmendmentRepository) ListAmendments(ctx context.Context, filter ports.AmendmentFilter) ([]ports.AmendmentRecord, int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	var (
		rows  []model.Amendment
		total int64
	)
	err = db.Transaction(func(tx *gorm.DB) error {
		query := applyAmendmentFilter(tx.Model(&model.Amendment{}), filter)

		if err := query.Count(&total).Error; err != nil {
			return errs.Wrap(err, "count amendments")
		}

		column, ok := sortColumns[filter.SortBy]
		if !ok {
			column = "amendment_id"
		}
		direction := "desc"
		if strings.EqualFold(filter.SortOrder, "asc") {
			direction = "asc"
		}

		skip := filter.Skip
		if skip < 0 {
			skip = 0
		}
		limit := filter.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		return query.
			Order(column + " " + direction).
			Offset(skip).
			Limit(limit).
			Find(&rows).Error
	})
	if err != nil {
		return nil, 0, errs.WithKind(errs.Wrap(err, "list amendments"), errs.KindStorage)
	}

	items := make([]ports.AmendmentRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapAmendment(row))
	}
	return items, total, nil
}

func applyAmendmentFilter(query *gorm.DB, filter ports.AmendmentFilter) *gorm.DB {
	if ref := strings.TrimSpace(filter.Reference); ref != "" {
		query = query.Where("amendment_reference LIKE ?", "%"+ref+"%")
	}
	if len(filter.IDs) > 0 {
		query = query.Where("amendment_id IN ?", filter.IDs)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("amendment_status IN ?", filter.Statuses)
	}
	if len(filter.DevelopmentStatuses) > 0 {
		query = query.Where("development_status IN ?", filter.DevelopmentStatuses)
	}
	if len(filter.Priorities) > 0 {
		query = query.Where("priority IN ?", filter.Priorities)
	}
	if len(filter.Types) > 0 {
		query = query.Where("amendment_type IN ?", filter.Types)
	}
	if len(filter.Forces) > 0 {
		query = query.Where("force IN ?", filter.Forces)
	}
	if len(filter.Applications) > 0 {
		query = query.Where("application IN ?", filter.Applications)
	}
	if len(filter.AssignedTo) > 0 {
		query = query.Where("assigned_to IN ?", filter.AssignedTo)
	}
	if len(filter.ReportedBy) > 0 {
		query = query.Where("reported_by IN ?", filter.ReportedBy)
	}

	if filter.DateReportedFrom != nil {
		query = query.Where("date_reported >= ?", *filter.DateReportedFrom)
	}
	if filter.DateReportedTo != nil {
		query = query.Where("date_reported <= ?", *filter.DateReportedTo)
	}
	if filter.CreatedOnFrom != nil {
		query = query.Where("created_on >= ?", *filter.CreatedOnFrom)
	}
	if filter.CreatedOnTo != nil {
		query = query.Where("created_on <= ?", *filter.CreatedOnTo)
	}
	if filter.ModifiedOnFrom != nil {
		query = query.Where("modified_on >= ?", *filter.ModifiedOnFrom)
	}
	if filter.ModifiedOnTo != nil {
		query = query.Where("modified_on <= ?", *filter.ModifiedOnTo)
	}

	if text := strings.TrimSpace(filter.SearchText); text != "" {
		pattern := "%" + text + "%"
		query = query.Where(
			"description LIKE ? OR notes LIKE ? OR release_notes LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.QACompleted != nil {
		query = query.Where("qa_completed = ?", *filter.QACompleted)
	}
	if filter.QAAssigned != nil {
		// Presence test on the QA assignee, not a value match.
		if *filter.QAAssigned {
			query = query.Where("qa_assigned_id IS NOT NULL")
		} else {
			query = query.Where("qa_assigned_id IS NULL")
		}
	}
	if filter.DatabaseChanges != nil {
		query = query.Where("database_changes = ?", *filter.DatabaseChanges)
	}
	if filter.DBUpgradeChanges != nil {
		query = query.Where("db_upgrade_changes = ?", *filter.DBUpgradeChanges)
	}

	return query
}

func (r *AmendmentRepository) LastReferenceWithPrefix(ctx context.Context, prefix string) (string, bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return "", false, err
	}

	var row model.Amendment
	err = db.Model(&model.Amendment{}).
		Where("amendment_reference LIKE ?", prefix+"%").
		Order("amendment_reference desc").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errs.WithKind(errs.Wrap(err, "query last reference"), errs.KindStorage)
	}
	return row.AmendmentReference, true, nil
}

func (r *AmendmentRepository) UpdateAmendment(ctx context.Context, amendmentID uint64, updates map[string]any) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.Amendment{}).
		Where("amendment_id = ?", amendmentID).
		Updates(updates)
	if result.Error != nil {
		return errs.WithKind(errs.Wrap(result.Error, "update amendment"), errs.KindStorage)
	}
	if result.RowsAffected == 0 {
		return errs.Wrapf(amendment.ErrNotFound, "amendment %d", amendmentID)
	}
	return nil
}

// DeleteAmendment removes the amendment and its children: progress entries,
// application links, outgoing links and document rows. Incoming links from
// other amendments are left in place.
func (r *AmendmentRepository) DeleteAmendment(ctx context.Context, amendmentID uint64) (ports.DeletedAmendmentFiles, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.DeletedAmendmentFiles{}, err
	}

	var files ports.DeletedAmendmentFiles
	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Amendment{}, "amendment_id = ?", amendmentID)
		if result.Error != nil {
			return errs.Wrap(result.Error, "delete amendment")
		}
		if result.RowsAffected == 0 {
			return errs.Wrapf(amendment.ErrNotFound, "amendment %d", amendmentID)
		}

		var docs []model.AmendmentDocument
		if err := tx.Where("amendment_id = ?", amendmentID).Find(&docs).Error; err != nil {
			return errs.Wrap(err, "query amendment documents")
		}
		for _, doc := range docs {
			files.DocumentPaths = append(files.DocumentPaths, doc.FilePath)
		}

		for _, del := range []error{
			tx.Where("amendment_id = ?", amendmentID).Delete(&model.AmendmentProgress{}).Error,
			tx.Where("amendment_id = ?", amendmentID).Delete(&model.AmendmentApplication{}).Error,
			tx.Where("amendment_id = ?", amendmentID).Delete(&model.AmendmentLink{}).Error,
			tx.Where("amendment_id = ?", amendmentID).Delete(&model.AmendmentDocument{}).Error,
		} {
			if del != nil {
				return errs.Wrap(del, "delete amendment children")
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, amendment.ErrNotFound) {
			return ports.DeletedAmendmentFiles{}, err
		}
		return ports.DeletedAmendmentFiles{}, errs.WithKind(err, errs.KindStorage)
	}
	return files, nil
}

func (r *AmendmentRepository) AmendmentStats(ctx context.Context) (ports.AmendmentStats, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.AmendmentStats{}, err
	}

	stats := ports.AmendmentStats{
		ByStatus:            make(map[string]int64),
		ByPriority:          make(map[string]int64),
		ByType:              make(map[string]int64),
		ByDevelopmentStatus: make(map[string]int64),
	}

	if err := db.Model(&model.Amendment{}).Count(&stats.Total).Error; err != nil {
		return ports.AmendmentStats{}, errs.WithKind(errs.Wrap(err, "count amendments"), errs.KindStorage)
	}

	groups := []struct {
		column string
		into   map[string]int64
	}{
		{"amendment_status", stats.ByStatus},
		{"priority", stats.ByPriority},
		{"amendment_type", stats.ByType},
		{"development_status", stats.ByDevelopmentStatus},
	}
	for _, group := range groups {
		var rows []struct {
			Value string
			Count int64
		}
		if err := db.Model(&model.Amendment{}).
			Select(group.column + " AS value, count(*) AS count").
			Group(group.column).
			Find(&rows).Error; err != nil {
			return ports.AmendmentStats{}, errs.WithKind(errs.Wrapf(err, "group by %s", group.column), errs.KindStorage)
		}
		for _, row := range rows {
			group.into[row.Value] = row.Count
		}
	}

	if err := db.Model(&model.Amendment{}).
		Where("qa_assigned_id IS NOT NULL AND qa_completed = ?", false).
		Count(&stats.QAPending).Error; err != nil {
		return ports.AmendmentStats{}, errs.WithKind(errs.Wrap(err, "count qa pending"), errs.KindStorage)
	}
	if err := db.Model(&model.Amendment{}).
		Where("database_changes = ?", true).
		Count(&stats.DatabaseChanges).Error; err != nil {
		return ports.AmendmentStats{}, errs.WithKind(errs.Wrap(err, "count database changes"), errs.KindStorage)
	}

	return stats, nil
}

func (r *AmendmentRepository) AddProgress(ctx context.Context, record ports.ProgressRecord) (ports.ProgressRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ProgressRecord{}, err
	}

	row := model.AmendmentProgress{
		AmendmentID: record.AmendmentID,
		StartDate:   record.StartDate,
		Description: record.Description,
		Notes:       record.Notes,
		CreatedBy:   record.CreatedBy,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.ProgressRecord{}, errs.WithKind(errs.Wrap(err, "insert progress entry"), errs.KindStorage)
	}
	return mapProgress(row), nil
}

func (r *AmendmentRepository) ListProgress(ctx context.Context, amendmentID uint64) ([]ports.ProgressRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.AmendmentProgress
	if err := db.
		Where("amendment_id = ?", amendmentID).
		Order("start_date desc").
		Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query progress entries"), errs.KindStorage)
	}

	items := make([]ports.ProgressRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapProgress(row))
	}
	return items, nil
}

func (r *AmendmentRepository) CreateLink(ctx context.Context, record ports.LinkRecord) (ports.LinkRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.LinkRecord{}, err
	}

	row := model.AmendmentLink{
		AmendmentID:       record.AmendmentID,
		LinkedAmendmentID: record.LinkedAmendmentID,
		LinkType:          string(record.LinkType),
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.LinkRecord{}, errs.WithKind(errs.Wrap(err, "insert amendment link"), errs.KindStorage)
	}
	return mapLink(row), nil
}

func (r *AmendmentRepository) LinkExists(ctx context.Context, amendmentID, linkedAmendmentID uint64) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.AmendmentLink{}).
		Where("amendment_id = ? AND linked_amendment_id = ?", amendmentID, linkedAmendmentID).
		Count(&count).Error; err != nil {
		return false, errs.WithKind(errs.Wrap(err, "query amendment link"), errs.KindStorage)
	}
	return count > 0, nil
}

func (r *AmendmentRepository) ListLinks(ctx context.Context, amendmentID uint64) ([]ports.LinkRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.AmendmentLink
	if err := db.
		Where("amendment_id = ?", amendmentID).
		Order("amendment_link_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query amendment links"), errs.KindStorage)
	}

	items := make([]ports.LinkRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapLink(row))
	}
	return items, nil
}

func (r *AmendmentRepository) DeleteLink(ctx context.Context, linkID uint64) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&model.AmendmentLink{}, "amendment_link_id = ?", linkID)
	if result.Error != nil {
		return errs.WithKind(errs.Wrap(result.Error, "delete amendment link"), errs.KindStorage)
	}
	if result.RowsAffected == 0 {
		return errs.Wrapf(amendment.ErrLinkNotFound, "link %d", linkID)
	}
	return nil
}

func (r *AmendmentRepository) AddDocument(ctx context.Context, record ports.DocumentRecord) (ports.DocumentRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.DocumentRecord{}, err
	}

	row := model.AmendmentDocument{
		AmendmentID:      record.AmendmentID,
		DocumentName:     record.DocumentName,
		OriginalFilename: record.OriginalFilename,
		FilePath:         record.FilePath,
		FileSize:         record.FileSize,
		MimeType:         record.MimeType,
		DocumentType:     string(record.DocumentType),
		Description:      record.Description,
		UploadedBy:       record.UploadedBy,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.DocumentRecord{}, errs.WithKind(errs.Wrap(err, "insert amendment document"), errs.KindStorage)
	}
	return mapDocument(row), nil
}

func (r *AmendmentRepository) GetDocument(ctx context.Context, documentID uint64) (ports.DocumentRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.DocumentRecord{}, err
	}

	var row model.AmendmentDocument
	if err := db.First(&row, "document_id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DocumentRecord{}, errs.Wrapf(amendment.ErrDocumentNotFound, "document %d", documentID)
		}
		return ports.DocumentRecord{}, errs.WithKind(errs.Wrap(err, "query amendment document"), errs.KindStorage)
	}
	return mapDocument(row), nil
}

func (r *AmendmentRepository) ListDocuments(ctx context.Context, amendmentID uint64) ([]ports.DocumentRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.AmendmentDocument
	if err := db.
		Where("amendment_id = ?", amendmentID).
		Order("uploaded_on desc").
		Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query amendment documents"), errs.KindStorage)
	}

	items := make([]ports.DocumentRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapDocument(row))
	}
	return items, nil
}

func (r *AmendmentRepository) DeleteDocument(ctx context.Context, documentID uint64) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&model.AmendmentDocument{}, "document_id = ?", documentID)
	if result.Error != nil {
		return errs.WithKind(errs.Wrap(result.Error, "delete amendment document"), errs.KindStorage)
	}
	if result.RowsAffected == 0 {
		return errs.Wrapf(amendment.ErrDocumentNotFound, "document %d", documentID)
	}
	return nil
}

func (r *AmendmentRepository) AddApplicationLink(ctx context.Context, record ports.ApplicationLinkRecord) (ports.ApplicationLinkRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ApplicationLinkRecord{}, err
	}

	row := model.AmendmentApplication{
		AmendmentID:       record.AmendmentID,
		ApplicationID:     record.ApplicationID,
		ApplicationName:   record.ApplicationName,
		ReportedVersion:   record.ReportedVersion,
		AppliedVersion:    record.AppliedVersion,
		DevelopmentStatus: record.DevelopmentStatus,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.ApplicationLinkRecord{}, errs.WithKind(errs.Wrap(err, "insert amendment application"), errs.KindStorage)
	}
	return mapApplicationLink(row), nil
}

func (r *AmendmentRepository) ListApplicationLinks(ctx context.Context, amendmentID uint64) ([]ports.ApplicationLinkRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.AmendmentApplication
	if err := db.
		Where("amendment_id = ?", amendmentID).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.WithKind(errs.Wrap(err, "query amendment applications"), errs.KindStorage)
	}

	items := make([]ports.ApplicationLinkRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapApplicationLink(row))
	}
	return items, nil
}

func (r *AmendmentRepository) UpsertReferenceCounters(ctx context.Context, counters ports.ReferenceCounters) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	row := model.ReferenceCounters{
		ID:                     1,
		BugReference:           counters.Bug,
		FaultReference:         counters.Fault,
		EnhancementReference:   counters.Enhancement,
		FeatureReference:       counters.Feature,
		SuggestionReference:    counters.Suggestion,
		MaintenanceReference:   counters.Maintenance,
		DocumentationReference: counters.Documentation,
	}
	if err := db.Save(&row).Error; err != nil {
		return errs.WithKind(errs.Wrap(err, "upsert reference counters"), errs.KindStorage)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func mapAmendment(row model.Amendment) ports.AmendmentRecord {
	return ports.AmendmentRecord{
		AmendmentID:             row.AmendmentID,
		Reference:               row.AmendmentReference,
		Type:                    amendment.Type(row.AmendmentType),
		Description:             row.Description,
		Status:                  amendment.Status(row.AmendmentStatus),
		DevelopmentStatus:       amendment.DevelopmentStatus(row.DevelopmentStatus),
		Priority:                amendment.Priority(row.Priority),
		Force:                   row.Force,
		Application:             row.Application,
		Notes:                   row.Notes,
		ReportedBy:              row.ReportedBy,
		AssignedTo:              row.AssignedTo,
		DateReported:            row.DateReported,
		DatabaseChanges:         row.DatabaseChanges,
		DBUpgradeChanges:        row.DBUpgradeChanges,
		ReleaseNotes:            row.ReleaseNotes,
		QAAssignedID:            row.QAAssignedID,
		QAAssignedDate:          row.QAAssignedDate,
		QATestPlanCheck:         row.QATestPlanCheck,
		QATestReleaseNotesCheck: row.QATestReleaseNotesCheck,
		QACompleted:             row.QACompleted,
		QASignature:             row.QASignature,
		QACompletedDate:         row.QACompletedDate,
		QANotes:                 row.QANotes,
		QATestPlanLink:          row.QATestPlanLink,
		CreatedBy:               row.CreatedBy,
		CreatedOn:               row.CreatedOn,
		ModifiedBy:              row.ModifiedBy,
		ModifiedOn:              row.ModifiedOn,
	}
}

func toAmendmentModel(record ports.AmendmentRecord) model.Amendment {
	return model.Amendment{
		AmendmentID:             record.AmendmentID,
		AmendmentReference:      record.Reference,
		AmendmentType:           string(record.Type),
		Description:             record.Description,
		AmendmentStatus:         string(record.Status),
		DevelopmentStatus:       string(record.DevelopmentStatus),
		Priority:                string(record.Priority),
		Force:                   record.Force,
		Application:             record.Application,
		Notes:                   record.Notes,
		ReportedBy:              record.ReportedBy,
		AssignedTo:              record.AssignedTo,
		DateReported:            record.DateReported,
		DatabaseChanges:         record.DatabaseChanges,
		DBUpgradeChanges:        record.DBUpgradeChanges,
		ReleaseNotes:            record.ReleaseNotes,
		QAAssignedID:            record.QAAssignedID,
		QAAssignedDate:          record.QAAssignedDate,
		QATestPlanCheck:         record.QATestPlanCheck,
		QATestReleaseNotesCheck: record.QATestReleaseNotesCheck,
		QACompleted:             record.QACompleted,
		QASignature:             record.QASignature,
		QACompletedDate:         record.QACompletedDate,
		QANotes:                 record.QANotes,
		QATestPlanLink:          record.QATestPlanLink,
		CreatedBy:               record.CreatedBy,
		ModifiedBy:              record.ModifiedBy,
		// Zero timestamps are filled by the auto-time hooks; historical
		// imports carry their own.
		CreatedOn:  record.CreatedOn,
		ModifiedOn: record.ModifiedOn,
	}
}

func mapProgress(row model.AmendmentProgress) ports.ProgressRecord {
	return ports.ProgressRecord{
		ProgressID:  row.AmendmentProgressID,
		AmendmentID: row.AmendmentID,
		StartDate:   row.StartDate,
		Description: row.Description,
		Notes:       row.Notes,
		CreatedBy:   row.CreatedBy,
		CreatedOn:   row.CreatedOn,
		ModifiedBy:  row.ModifiedBy,
		ModifiedOn:  row.ModifiedOn,
	}
}

func mapLink(row model.AmendmentLink) ports.LinkRecord {
	return ports.LinkRecord{
		LinkID:            row.AmendmentLinkID,
		AmendmentID:       row.AmendmentID,
		LinkedAmendmentID: row.LinkedAmendmentID,
		LinkType:          amendment.LinkType(row.LinkType),
	}
}

func mapDocument(row model.AmendmentDocument) ports.DocumentRecord {
	return ports.DocumentRecord{
		DocumentID:       row.DocumentID,
		AmendmentID:      row.AmendmentID,
		DocumentName:     row.DocumentName,
		OriginalFilename: row.OriginalFilename,
		FilePath:         row.FilePath,
		FileSize:         row.FileSize,
		MimeType:         row.MimeType,
		DocumentType:     amendment.DocumentType(row.DocumentType),
		Description:      row.Description,
		UploadedBy:       row.UploadedBy,
		UploadedOn:       row.UploadedOn,
	}
}

func mapApplicationLink(row model.AmendmentApplication) ports.ApplicationLinkRecord {
	return ports.ApplicationLinkRecord{
		ID:                row.ID,
		AmendmentID:       row.AmendmentID,
		ApplicationID:     row.ApplicationID,
		ApplicationName:   row.ApplicationName,
		ReportedVersion:   row.ReportedVersion,
		AppliedVersion:    row.AppliedVersion,
		DevelopmentStatus: row.DevelopmentStatus,
	}
}
