package model

type AmendmentApplication struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	AmendmentID   uint64  `gorm:"column:amendment_id;not null;index"`
	ApplicationID *uint64 `gorm:"column:application_id"`
	// ApplicationName is free text when the application is not catalogued.
	ApplicationName   string  `gorm:"column:application_name;type:text;not null"`
	ReportedVersion   *string `gorm:"column:reported_version;type:text"`
	AppliedVersion    *string `gorm:"column:applied_version;type:text"`
	DevelopmentStatus *string `gorm:"column:development_status;type:text"`
}

func (AmendmentApplication) TableName() string {
	return "amendment_applications"
}
