package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserNotFound    = 10001
	ErrProfileNotFound = 10002

	// 动态模块错误 200xx
	ErrPostNotFound = 20001
	ErrEmptyPost    = 20002
	ErrEmptyComment = 20003

	// 私信模块错误 300xx
	ErrConversationNotFound = 30001
	ErrEmptyMessage         = 30002

	// 通知模块错误 400xx
	ErrNotificationNotFound = 40001

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
	ErrStaleRequest    = 50004
)
