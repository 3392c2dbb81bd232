package model

import "time"

type AmendmentProgress struct {
	AmendmentProgressID uint64     `gorm:"column:amendment_progress_id;primaryKey;autoIncrement"`
	AmendmentID         uint64     `gorm:"column:amendment_id;not null;index"`
	StartDate           *time.Time `gorm:"column:start_date"`
	Description         string     `gorm:"column:description;type:text;not null"`
	Notes               *string    `gorm:"column:notes;type:text"`

	CreatedBy  *string   `gorm:"column:created_by;type:text"`
	CreatedOn  time.Time `gorm:"column:created_on;not null;autoCreateTime"`
	ModifiedBy *string   `gorm:"column:modified_by;type:text"`
	ModifiedOn time.Time `gorm:"column:modified_on;not null;autoCreateTime;autoUpdateTime"`
}

func (AmendmentProgress) TableName() string {
	return "amendment_progress"
}
