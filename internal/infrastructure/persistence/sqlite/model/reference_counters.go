package model

// ReferenceCounters is a singleton row of per-type high-water marks. The
// legacy importer maintains it; the live allocator derives sequences from
// stored references instead.
type ReferenceCounters struct {
	ID                     uint64 `gorm:"column:id;primaryKey"`
	BugReference           int64  `gorm:"column:bug_reference;not null;default:0"`
	FaultReference         int64  `gorm:"column:fault_reference;not null;default:0"`
	EnhancementReference   int64  `gorm:"column:enhancement_reference;not null;default:0"`
	FeatureReference       int64  `gorm:"column:feature_reference;not null;default:0"`
	SuggestionReference    int64  `gorm:"column:suggestion_reference;not null;default:0"`
	MaintenanceReference   int64  `gorm:"column:maintenance_reference;not null;default:0"`
	DocumentationReference int64  `gorm:"column:documentation_reference;not null;default:0"`
}

func (ReferenceCounters) TableName() string {
	return "amendment_references"
}
