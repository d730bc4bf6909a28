package model

import "time"

// ApplicationStatus 审核状态机。流转由审核后台操作，本服务只负责创建时写 pending
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

// Application 申请记录：每个用户最多一条
type Application struct {
	BaseModel

	// 🔥 核心约束：一个用户只能有一份申请。
	// 唯一索引在存储层兜底，防止并发重复提交绕过应用层检查
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// 创始人信息 (隐私字段，只有本人可见)
	FounderName   string `gorm:"size:100;not null" json:"founder_name"`
	AgentName     string `gorm:"size:100;not null" json:"agent_name"`
	Email         string `gorm:"size:100;not null" json:"email"`
	TwitterHandle string `gorm:"size:100" json:"twitter_handle,omitempty"`

	// 创业项目信息
	StartupName  string `gorm:"size:100;not null" json:"startup_name"`
	Tagline      string `gorm:"size:100;not null" json:"tagline"`
	Description  string `gorm:"type:text;not null" json:"description"`
	Category     string `gorm:"size:50;not null" json:"category"`
	CurrentStage string `gorm:"size:50;not null" json:"current_stage"`

	// 可选指标
	MonthlyActiveAgents *int64 `json:"monthly_active_agents,omitempty"`
	FundingAmount       string `gorm:"size:100" json:"funding_amount,omitempty"`

	// 状态机
	Status ApplicationStatus `gorm:"size:20;default:'pending';index" json:"status"`

	// 提交时间，创建后不可变
	SubmittedAt time.Time `json:"submitted_at"`
}

// Categories 固定的赛道集合，提交时服务端校验
var Categories = map[string]bool{
	"Agent Orchestration": true,
	"Agent Memory":        true,
	"Agent Tools":         true,
	"Agent Networks":      true,
	"Agent Commerce":      true,
	"Agent Security":      true,
	"Other":               true,
}

// Stages 固定的项目阶段集合
var Stages = map[string]bool{
	"Just an idea": true,
	"Building MVP": true,
	"Have MVP":     true,
	"Have users":   true,
	"Have revenue": true,
}
