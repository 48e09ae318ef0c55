package entities

// PMStatus is the lifecycle state of a preventive-maintenance record.

type PMStatus string

const (
	PMStatusPending   PMStatus = "Pending"
	PMStatusCompleted PMStatus = "Completed"
)

// PMDateLayout is the date format stamped on completed records (DD/MM/YYYY).
const PMDateLayout = "02/01/2006"

// MaintenanceRecord is one piece of field equipment due for preventive
// maintenance.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_code-index): customer_code
//
// Reference fields (DocumentChlNo/FormatChlNo and revisions) are populated by
// the submission sequencer just before the report is generated; a failed
// lookup leaves them blank and is reported as a warning, not an error.

type MaintenanceRecord struct {
	ID           string `json:"id"`
	PartNumber   string `json:"part_number"`
	SerialNumber string `json:"serial_number"`
	CustomerCode string `json:"customer_code"`

	PMDueMonth     string   `json:"pm_due_month"`
	PMDoneDate     string   `json:"pm_done_date,omitempty"`
	PMEngineerCode string   `json:"pm_engineer_code,omitempty"`
	PMStatus       PMStatus `json:"pm_status"`

	DocumentChlNo string `json:"document_chl_no,omitempty"`
	DocumentRevNo string `json:"document_rev_no,omitempty"`
	FormatChlNo   string `json:"format_chl_no,omitempty"`
	FormatRevNo   string `json:"format_rev_no,omitempty"`
}

// DocReferenceSet holds the document/format reference numbers looked up by
// part number before a report is generated.

type DocReference struct {
	ChlNo string `json:"chl_no"`
	RevNo string `json:"rev_no"`
}

type DocReferenceSet struct {
	PartNumber string         `json:"part_number"`
	Documents  []DocReference `json:"documents"`
	Formats    []DocReference `json:"formats"`
}
