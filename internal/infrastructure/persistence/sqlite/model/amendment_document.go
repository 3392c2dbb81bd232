package model

import "time"

type AmendmentDocument struct {
	DocumentID       uint64  `gorm:"column:document_id;primaryKey;autoIncrement"`
	AmendmentID      uint64  `gorm:"column:amendment_id;not null;index"`
	DocumentName     string  `gorm:"column:document_name;type:text;not null"`
	OriginalFilename string  `gorm:"column:original_filename;type:text;not null"`
	FilePath         string  `gorm:"column:file_path;type:text;not null"`
	FileSize         int64   `gorm:"column:file_size"`
	MimeType         *string `gorm:"column:mime_type;type:text"`
	DocumentType     string  `gorm:"column:document_type;type:text;not null;default:Other"`
	Description      *string `gorm:"column:description;type:text"`

	UploadedBy *string   `gorm:"column:uploaded_by;type:text"`
	UploadedOn time.Time `gorm:"column:uploaded_on;not null;autoCreateTime"`
}

func (AmendmentDocument) TableName() string {
	return "amendment_documents"
}
