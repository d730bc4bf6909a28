package service

import (
	"context"
	"errors"
	"time"

	"YClaw/internal/dto"
	"YClaw/internal/model"
	"YClaw/internal/repository"

	"gorm.io/gorm"
)

var (
	// ErrNotAuthenticated 未登录调用了需要身份的操作
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrAlreadySubmitted 重复提交。措辞原样透给前端展示
	ErrAlreadySubmitted = errors.New("You have already submitted an application")

	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidStage    = errors.New("invalid current stage")
)

// ApplicationService 申请提交与查询。
// 身份永远作为参数显式传入 (userID==0 表示未登录)，不从任何全局状态读取
type ApplicationService struct {
	repo    repository.ApplicationRepository
	landing *LandingService
}

func NewApplicationService(repo repository.ApplicationRepository, landing *LandingService) *ApplicationService {
	return &ApplicationService{repo: repo, landing: landing}
}

// Submit 提交申请。整个产品唯一的业务不变量在这里：一个用户只能提交一次
func (s *ApplicationService) Submit(ctx context.Context, userID uint, req dto.SubmitApplicationReq) (*dto.SubmitApplicationResp, error) {
	// 1. 身份检查
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	// 2. 枚举校验 (赛道 / 阶段是闭集，不信任前端)
	if !model.Categories[req.Category] {
		return nil, ErrInvalidCategory
	}
	if !model.Stages[req.CurrentStage] {
		return nil, ErrInvalidStage
	}

	// 3. 先查一遍，给正常的重复提交一个友好错误
	existing, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubmitted
	}

	// 4. 组装记录。status 和 submitted_at 永远服务端生成，请求里即使带了也不会被读到
	app := &model.Application{
		UserID:              userID,
		FounderName:         req.FounderName,
		AgentName:           req.AgentName,
		Email:               req.Email,
		TwitterHandle:       req.TwitterHandle,
		StartupName:         req.StartupName,
		Tagline:             req.Tagline,
		Description:         req.Description,
		Category:            req.Category,
		CurrentStage:        req.CurrentStage,
		MonthlyActiveAgents: req.MonthlyActiveAgents,
		FundingAmount:       req.FundingAmount,
		Status:              model.StatusPending,
		SubmittedAt:         time.Now(),
	}

	// 5. 落库。两个请求同时通过了上面的检查时，user_id 唯一索引兜底，
	// 输掉竞争的一方拿到 ErrDuplicatedKey，翻译成同一个重复提交错误
	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	// 6. 落地页的统计和最近提交流已经过期，清缓存
	s.landing.InvalidateCache(ctx)

	return &dto.SubmitApplicationResp{ApplicationID: app.ID}, nil
}

// GetOwn 查询本人申请。
// 未登录返回 (nil, nil)，和"登录了但没有申请"表现一致，前端据此决定是否展示申请表单
func (s *ApplicationService) GetOwn(ctx context.Context, userID uint) (*model.Application, error) {
	if userID == 0 {
		return nil, nil
	}
	return s.repo.GetByUserID(userID)
}
