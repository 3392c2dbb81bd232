package model

import "time"

type ApplicationVersion struct {
	ApplicationVersionID uint64     `gorm:"column:application_version_id;primaryKey;autoIncrement"`
	ApplicationID        uint64     `gorm:"column:application_id;not null;index"`
	Version              string     `gorm:"column:version;type:text;not null"`
	ReleasedDate         *time.Time `gorm:"column:released_date"`
	Notes                *string    `gorm:"column:notes;type:text"`
	IsActive             bool       `gorm:"column:is_active;not null;default:1"`

	CreatedOn  time.Time `gorm:"column:created_on;not null;autoCreateTime"`
	ModifiedOn time.Time `gorm:"column:modified_on;not null;autoCreateTime;autoUpdateTime"`
}

func (ApplicationVersion) TableName() string {
	return "application_versions"
}
