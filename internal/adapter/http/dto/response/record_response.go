package response

import (
	"fieldserve/internal/domain/entities"
)

type MaintenanceRecordResponse struct {
	ID           string `json:"id"`
	PartNumber   string `json:"part_number"`
	SerialNumber string `json:"serial_number"`
	CustomerCode string `json:"customer_code"`
	PMDueMonth   string `json:"pm_due_month"`
	PMDoneDate   string `json:"pm_done_date,omitempty"`
	PMStatus     string `json:"pm_status"`
}

func FromMaintenanceRecord(r entities.MaintenanceRecord) MaintenanceRecordResponse {
	return MaintenanceRecordResponse{
		ID:           r.ID,
		PartNumber:   r.PartNumber,
		SerialNumber: r.SerialNumber,
		CustomerCode: r.CustomerCode,
		PMDueMonth:   r.PMDueMonth,
		PMDoneDate:   r.PMDoneDate,
		PMStatus:     string(r.PMStatus),
	}
}

func FromMaintenanceRecords(rs []entities.MaintenanceRecord) []MaintenanceRecordResponse {
	out := make([]MaintenanceRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromMaintenanceRecord(r))
	}
	return out
}

type ChecklistItemResponse struct {
	ID           string  `json:"id"`
	Checkpoint   string  `json:"checkpoint"`
	ResultType   string  `json:"result_type"`
	Result       string  `json:"result,omitempty"`
	Remark       string  `json:"remark,omitempty"`
	StartVoltage float64 `json:"start_voltage,omitempty"`
	EndVoltage   float64 `json:"end_voltage,omitempty"`
}

func FromChecklistItem(i entities.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:           i.ID,
		Checkpoint:   i.Checkpoint,
		ResultType:   string(i.ResultType),
		Result:       i.Result,
		Remark:       i.Remark,
		StartVoltage: i.StartVoltage,
		EndVoltage:   i.EndVoltage,
	}
}

func FromChecklistItems(items []entities.ChecklistItem) []ChecklistItemResponse {
	out := make([]ChecklistItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromChecklistItem(i))
	}
	return out
}

type DocReferenceResponse struct {
	ChlNo string `json:"chl_no"`
	RevNo string `json:"rev_no"`
}

type DocReferenceSetResponse struct {
	PartNumber string                 `json:"part_number"`
	Documents  []DocReferenceResponse `json:"documents"`
	Formats    []DocReferenceResponse `json:"formats"`
}

func FromDocReferenceSet(s entities.DocReferenceSet) DocReferenceSetResponse {
	docs := make([]DocReferenceResponse, 0, len(s.Documents))
	for _, d := range s.Documents {
		docs = append(docs, DocReferenceResponse{ChlNo: d.ChlNo, RevNo: d.RevNo})
	}
	formats := make([]DocReferenceResponse, 0, len(s.Formats))
	for _, f := range s.Formats {
		formats = append(formats, DocReferenceResponse{ChlNo: f.ChlNo, RevNo: f.RevNo})
	}
	return DocReferenceSetResponse{
		PartNumber: s.PartNumber,
		Documents:  docs,
		Formats:    formats,
	}
}
