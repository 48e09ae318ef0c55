package interfaces

import "fieldserve/internal/domain/entities"

// IReportRenderer renders one record's completed checklist into the PM report
// artifact (PDF bytes).
type IReportRenderer interface {
	RenderPMReport(record entities.MaintenanceRecord, result entities.SubmissionResult, engineerName string) ([]byte, error)
}
