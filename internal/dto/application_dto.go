package dto

import "time"

// SubmitApplicationReq 申请表单。
// 注意：没有 status / submitted_at 字段，这两个值永远由服务端生成
type SubmitApplicationReq struct {
	// 创始人信息
	FounderName   string `json:"founder_name" binding:"required"`
	AgentName     string `json:"agent_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	TwitterHandle string `json:"twitter_handle"`

	// 项目信息
	StartupName  string `json:"startup_name" binding:"required"`
	Tagline      string `json:"tagline" binding:"required,max=100"`
	Description  string `json:"description" binding:"required"`
	Category     string `json:"category" binding:"required"`
	CurrentStage string `json:"current_stage" binding:"required"`

	// 可选指标
	MonthlyActiveAgents *int64 `json:"monthly_active_agents" binding:"omitempty,gte=0"`
	FundingAmount       string `json:"funding_amount"`
}

type SubmitApplicationResp struct {
	ApplicationID uint `json:"application_id"`
}

// RecentApplicationResp 公开流的脱敏投影。
// ⚠️ 隐私边界：这里只允许出现这四个字段，
// 创始人姓名 / 邮箱 / 描述 / 指标一律不得加入
type RecentApplicationResp struct {
	StartupName string    `json:"startup_name"`
	Tagline     string    `json:"tagline"`
	Category    string    `json:"category"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type StatsResp struct {
	TotalApplications int64  `json:"total_applications"`
	AcceptedCount     int64  `json:"accepted_count"`
	CurrentBatch      string `json:"current_batch"`
}
