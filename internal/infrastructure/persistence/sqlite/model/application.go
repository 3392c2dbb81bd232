package model

import "time"

type Application struct {
	ApplicationID   uint64  `gorm:"column:application_id;primaryKey;autoIncrement"`
	ApplicationName string  `gorm:"column:application_name;type:text;not null;uniqueIndex"`
	Description     *string `gorm:"column:description;type:text"`
	IsActive        bool    `gorm:"column:is_active;not null;default:1"`

	CreatedOn  time.Time `gorm:"column:created_on;not null;autoCreateTime"`
	ModifiedOn time.Time `gorm:"column:modified_on;not null;autoCreateTime;autoUpdateTime"`
}

func (Application) TableName() string {
	return "applications"
}
