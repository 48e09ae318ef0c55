package request

type RequestOtpRequest struct {
	CustomerCode string `json:"customer_code" binding:"required"`
}

type VerifyOtpRequest struct {
	CustomerCode string `json:"customer_code" binding:"required"`
	Code         string `json:"code"`
}
