package model

import "time"

type Employee struct {
	EmployeeID   uint64  `gorm:"column:employee_id;primaryKey;autoIncrement"`
	EmployeeName string  `gorm:"column:employee_name;type:text;not null;index"`
	Initials     *string `gorm:"column:initials;type:text"`
	Email        *string `gorm:"column:email;type:text"`
	WindowsLogin *string `gorm:"column:windows_login;type:text"`
	IsActive     bool    `gorm:"column:is_active;not null;default:1"`

	CreatedOn  time.Time `gorm:"column:created_on;not null;autoCreateTime"`
	ModifiedOn time.Time `gorm:"column:modified_on;not null;autoCreateTime;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
