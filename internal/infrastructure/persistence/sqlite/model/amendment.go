package model

import "time"

type Amendment struct {
	AmendmentID uint64 `gorm:"column:amendment_id;primaryKey;autoIncrement"`
	// Reference is immutable once assigned; the unique index is the only
	// guard against two concurrent creates minting the same sequence.
	AmendmentReference string `gorm:"column:amendment_reference;type:text;not null;uniqueIndex"`

	AmendmentType     string  `gorm:"column:amendment_type;type:text;not null"`
	Description       string  `gorm:"column:description;type:text;not null"`
	AmendmentStatus   string  `gorm:"column:amendment_status;type:text;not null;default:Open"`
	DevelopmentStatus string  `gorm:"column:development_status;type:text;not null;default:Not Started"`
	Priority          string  `gorm:"column:priority;type:text;not null;default:Medium"`
	Force             *string `gorm:"column:force;type:text"`
	Application       *string `gorm:"column:application;type:text"`
	Notes             *string `gorm:"column:notes;type:text"`

	ReportedBy   *string    `gorm:"column:reported_by;type:text"`
	AssignedTo   *string    `gorm:"column:assigned_to;type:text"`
	DateReported *time.Time `gorm:"column:date_reported"`

	DatabaseChanges  bool    `gorm:"column:database_changes;not null;default:0"`
	DBUpgradeChanges bool    `gorm:"column:db_upgrade_changes;not null;default:0"`
	ReleaseNotes     *string `gorm:"column:release_notes;type:text"`

	QAAssignedID            *int64     `gorm:"column:qa_assigned_id"`
	QAAssignedDate          *time.Time `gorm:"column:qa_assigned_date"`
	QATestPlanCheck         bool       `gorm:"column:qa_test_plan_check;not null;default:0"`
	QATestReleaseNotesCheck bool       `gorm:"column:qa_test_release_notes_check;not null;default:0"`
	QACompleted             bool       `gorm:"column:qa_completed;not null;default:0"`
	QASignature             *string    `gorm:"column:qa_signature;type:text"`
	QACompletedDate         *time.Time `gorm:"column:qa_completed_date"`
	QANotes                 *string    `gorm:"column:qa_notes;type:text"`
	QATestPlanLink          *string    `gorm:"column:qa_test_plan_link;type:text"`

	CreatedBy  *string   `gorm:"column:created_by;type:text"`
	CreatedOn  time.Time `gorm:"column:created_on;not null;autoCreateTime"`
	ModifiedBy *string   `gorm:"column:modified_by;type:text"`
	ModifiedOn time.Time `gorm:"column:modified_on;not null;autoCreateTime;autoUpdateTime"`
}

func (Amendment) TableName() string {
	return "amendments"
}
