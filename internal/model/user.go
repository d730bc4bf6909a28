package model

type User struct {
	BaseModel
	// 账号标识。游客账号存 "guest-xxxx" 占位符，不是合法邮箱，
	// 天然无法走密码登录通道
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string `json:"-"` // 游客账号为空
	IsGuest      bool   `gorm:"default:false" json:"is_guest"`

	// 系统级角色 (user, guest) - 预留给后续审核后台
	Role string `gorm:"default:'user'" json:"role"`
}
