package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"YClaw/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountsAcceptedAndTotal(t *testing.T) {
	appSvc, landingSvc, d := newTestServices(t)
	ctx := context.Background()

	// 5 份申请，其中 2 份被审核端改成 accepted
	for i := 1; i <= 5; i++ {
		_, err := appSvc.Submit(ctx, uint(i), validSubmitReq(i))
		require.NoError(t, err)
	}
	err := d.DB.Model(&model.Application{}).
		Where("user_id IN ?", []uint{1, 2}).
		Update("status", model.StatusAccepted).Error
	require.NoError(t, err)

	stats, err := landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalApplications)
	assert.EqualValues(t, 2, stats.AcceptedCount)
	assert.Equal(t, "W26", stats.CurrentBatch)
}

func TestStatsCachedUntilInvalidated(t *testing.T) {
	appSvc, landingSvc, d := newTestServices(t)
	ctx := context.Background()

	_, err := appSvc.Submit(ctx, 1, validSubmitReq(1))
	require.NoError(t, err)

	// 第一次读取写入缓存
	stats, err := landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalApplications)

	// 绕过服务直接插一条 (模拟缓存期间的写入)，缓存值应该保持不变
	raw := &model.Application{UserID: 2, FounderName: "x", AgentName: "x", Email: "x@x.com",
		StartupName: "X", Tagline: "x", Description: "x", Category: "Other", CurrentStage: "Have MVP",
		Status: model.StatusPending}
	require.NoError(t, d.DB.Create(raw).Error)

	stats, err = landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalApplications, "stale value served from cache")

	// 失效后重算
	landingSvc.InvalidateCache(ctx)
	stats, err = landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalApplications)
}

func TestSubmitInvalidatesLandingCache(t *testing.T) {
	appSvc, landingSvc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := appSvc.Submit(ctx, 1, validSubmitReq(1))
	require.NoError(t, err)

	stats, err := landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalApplications)

	// 正常路径的提交会清缓存，统计立刻可见
	_, err = appSvc.Submit(ctx, 2, validSubmitReq(2))
	require.NoError(t, err)

	stats, err = landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalApplications)
}

func TestRecentFeedOrderingAndLimit(t *testing.T) {
	appSvc, landingSvc, _ := newTestServices(t)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		_, err := appSvc.Submit(ctx, uint(i), validSubmitReq(i))
		require.NoError(t, err)
	}

	recent, err := landingSvc.GetRecentApplications(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 5)

	// 按插入顺序倒序：10, 9, 8, 7, 6
	for i, item := range recent {
		assert.Equal(t, fmt.Sprintf("Startup-%02d", 10-i), item.StartupName)
	}
}

func TestRecentFeedIsSanitized(t *testing.T) {
	appSvc, landingSvc, _ := newTestServices(t)
	ctx := context.Background()

	req := validSubmitReq(1)
	req.FounderName = "Ada Lovelace"
	req.Email = "ada@secret.example"
	req.Description = "TOP-SECRET business plan"
	_, err := appSvc.Submit(ctx, 1, req)
	require.NoError(t, err)

	recent, err := landingSvc.GetRecentApplications(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	assert.Equal(t, req.StartupName, recent[0].StartupName)
	assert.Equal(t, req.Tagline, recent[0].Tagline)
	assert.Equal(t, req.Category, recent[0].Category)
	assert.False(t, recent[0].SubmittedAt.IsZero())

	// 隐私边界：序列化后的输出不允许出现任何私有字段
	raw, err := json.Marshal(recent)
	require.NoError(t, err)
	body := string(raw)
	assert.NotContains(t, body, "Ada Lovelace")
	assert.NotContains(t, body, "ada@secret.example")
	assert.NotContains(t, body, "TOP-SECRET")
	assert.NotContains(t, body, "user_id")
	assert.NotContains(t, body, "status")
}

func TestStatsOnEmptyDatabase(t *testing.T) {
	_, landingSvc, _ := newTestServices(t)
	ctx := context.Background()

	stats, err := landingSvc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalApplications)
	assert.EqualValues(t, 0, stats.AcceptedCount)
	assert.Equal(t, "W26", stats.CurrentBatch)

	recent, err := landingSvc.GetRecentApplications(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
