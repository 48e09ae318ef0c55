package request

type LoginRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Password     string `json:"password" binding:"required"`
	DeviceID     string `json:"device_id" binding:"required"`
}
