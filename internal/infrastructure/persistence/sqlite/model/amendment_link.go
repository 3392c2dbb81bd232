package model

type AmendmentLink struct {
	AmendmentLinkID   uint64 `gorm:"column:amendment_link_id;primaryKey;autoIncrement"`
	AmendmentID       uint64 `gorm:"column:amendment_id;not null;index"`
	LinkedAmendmentID uint64 `gorm:"column:linked_amendment_id;not null;index"`
	LinkType          string `gorm:"column:link_type;type:text;not null;default:Related"`
}

func (AmendmentLink) TableName() string {
	return "amendment_links"
}
