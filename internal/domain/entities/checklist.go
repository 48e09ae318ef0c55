package entities

// ResultType classifies how a checklist checkpoint is answered.
//
// NUMERIC_ENTRY items never take a user-chosen result: the measured value is
// classified against [StartVoltage, EndVoltage] and the result is derived.

type ResultType string

const (
	ResultTypeOkNotOk      ResultType = "OK_NOT_OK"
	ResultTypeYesNo        ResultType = "YES_NO"
	ResultTypeNumericEntry ResultType = "NUMERIC_ENTRY"
)

// Result values recorded on an answered checklist item.
const (
	ResultOk     = "OK"
	ResultNotOk  = "NOT OK"
	ResultYes    = "Yes"
	ResultNo     = "No"
	ResultPass   = "Pass"
	ResultFailed = "Failed"
)

// MaxRemarkLen caps free-text remarks on a checklist item.
const MaxRemarkLen = 400

// ChecklistItem is one checkpoint of a PM inspection.
//
// Invariants:
//   - a negative outcome (NOT OK / No) requires a non-empty Remark before the
//     wizard may advance past the item
//   - StartVoltage/EndVoltage are meaningful only for NUMERIC_ENTRY items

type ChecklistItem struct {
	ID           string     `json:"id"`
	Checkpoint   string     `json:"checkpoint"`
	ResultType   ResultType `json:"result_type"`
	Result       string     `json:"result,omitempty"`
	Remark       string     `json:"remark,omitempty"`
	StartVoltage float64    `json:"start_voltage,omitempty"`
	EndVoltage   float64    `json:"end_voltage,omitempty"`
}

// IsNegative reports whether the recorded result is a negative outcome.
func (i ChecklistItem) IsNegative() bool {
	return i.Result == ResultNotOk || i.Result == ResultNo
}

// Answered reports whether the item has a recorded result.
func (i ChecklistItem) Answered() bool {
	return i.Result != ""
}
