package models

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MoveLeadRequest 线索移动请求
type MoveLeadRequest struct {
	LeadID    int    `json:"leadId" binding:"required"`
	FromStage string `json:"fromStage" binding:"required"`
	ToStage   string `json:"toStage" binding:"required"`
	Notes     string `json:"notes"`
}

// OperationLog API操作日志记录
type OperationLog struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	Username     string `json:"username,omitempty"`
	RequestBody  string `json:"requestBody,omitempty"`
	StatusCode   int    `json:"statusCode"`
	DurationMs   int64  `json:"durationMs"`
	OperatedAt   string `json:"operatedAt"`
	ResponseSize int    `json:"responseSize"`
}
