package handler

type ContextKey string

var (
	RoleCtxKey        ContextKey = "role"
	SubCtxKey         ContextKey = "sub"
	MyInfoCtx         ContextKey = "myInfo"
	UserInfoCtx       ContextKey = "userInfo"
	StaffCtx          ContextKey = "staff"
	StaffingRuleCtx   ContextKey = "staffingRule"
	ScheduleImportCtx ContextKey = "scheduleImport"
)
