package model

import "github.com/google/uuid"

// ReportingRelationship is a directed manager -> report edge.
// Uniqueness of the manager per report is not enforced at the schema level;
// readers treat multiple edges for one report as a data inconsistency.
type ReportingRelationship struct {
	BaseModel
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	ManagerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"manager_id"`
	ReportID       uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
}

func (ReportingRelationship) TableName() string {
	return "reporting_relationships"
}
