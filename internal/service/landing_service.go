package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"YClaw/internal/data"
	"YClaw/internal/dto"
	"YClaw/internal/model"
	"YClaw/internal/repository"
)

const (
	statsCacheKey  = "landing:stats"
	recentCacheKey = "landing:recent"

	// 公开流最多展示最近 5 条
	recentFeedLimit = 5
)

// LandingService 落地页的两个公开读接口：汇总统计 + 脱敏的最近提交流。
// 都不需要登录，都走 Redis 短缓存
type LandingService struct {
	Data     *data.Data
	repo     repository.ApplicationRepository
	batch    string
	cacheTTL time.Duration
}

func NewLandingService(d *data.Data, repo repository.ApplicationRepository, batch string, cacheTTLSeconds int) *LandingService {
	return &LandingService{
		Data:     d,
		repo:     repo,
		batch:    batch,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}

// GetStats 汇总统计。每次从 applications 表重算两个 COUNT，
// 不维护增量统计表 (审核端改状态没有事务归属，增量一定会漂)
func (s *LandingService) GetStats(ctx context.Context) (*dto.StatsResp, error) {
	// 1. 查缓存
	var cached dto.StatsResp
	if s.readCache(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	// 2. 重算
	total, err := s.repo.CountAll()
	if err != nil {
		return nil, err
	}
	accepted, err := s.repo.CountByStatus(model.StatusAccepted)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResp{
		TotalApplications: total,
		AcceptedCount:     accepted,
		// 批次是配置项，不从数据推导
		CurrentBatch: s.batch,
	}

	// 3. 回填缓存
	s.writeCache(ctx, statsCacheKey, resp)
	return resp, nil
}

// GetRecentApplications 最近 5 条提交，按插入顺序倒序。
// 返回前做脱敏投影，创始人姓名 / 邮箱 / 描述等隐私字段在这里被剥掉
func (s *LandingService) GetRecentApplications(ctx context.Context) ([]dto.RecentApplicationResp, error) {
	// 1. 查缓存
	var cached []dto.RecentApplicationResp
	if s.readCache(ctx, recentCacheKey, &cached) {
		return cached, nil
	}

	// 2. 查库
	apps, err := s.repo.ListRecent(recentFeedLimit)
	if err != nil {
		return nil, err
	}

	// 3. 投影。只搬这四个字段，新增字段默认就是私有的
	result := make([]dto.RecentApplicationResp, 0, len(apps))
	for _, app := range apps {
		result = append(result, dto.RecentApplicationResp{
			StartupName: app.StartupName,
			Tagline:     app.Tagline,
			Category:    app.Category,
			SubmittedAt: app.SubmittedAt,
		})
	}

	// 4. 回填缓存
	s.writeCache(ctx, recentCacheKey, result)
	return result, nil
}

// InvalidateCache 新提交落库后让落地页缓存失效
func (s *LandingService) InvalidateCache(ctx context.Context) {
	if err := s.Data.Redis.Del(ctx, statsCacheKey, recentCacheKey).Err(); err != nil {
		// 缓存失效失败不影响提交本身，TTL 到期后自然一致
		log.Printf("落地页缓存清理失败: %v", err)
	}
}

// readCache 命中返回 true。缓存故障按未命中处理，读接口不能因为 Redis 挂了而失败
func (s *LandingService) readCache(ctx context.Context, key string, out interface{}) bool {
	raw, err := s.Data.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *LandingService) writeCache(ctx context.Context, key string, val interface{}) {
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.Data.Redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		log.Printf("落地页缓存写入失败: %v", err)
	}
}
