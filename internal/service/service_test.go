package service

import (
	"fmt"
	"testing"

	"YClaw/internal/data"
	"YClaw/internal/dto"
	"YClaw/internal/model"
	"YClaw/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestData 每个测试一套独立的内存 sqlite + miniredis，
// 配置和生产保持一致 (TranslateError 必须开，唯一索引兜底依赖它)
func newTestData(t *testing.T) *data.Data {
	t.Helper()

	// cache=shared: 连接池里多个连接看到同一个内存库，并发测试需要
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Application{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &data.Data{DB: db, Redis: rdb}
}

func newTestServices(t *testing.T) (*ApplicationService, *LandingService, *data.Data) {
	t.Helper()

	d := newTestData(t)
	repo := repository.NewApplicationRepository(d.DB)
	landing := NewLandingService(d, repo, "W26", 30)
	app := NewApplicationService(repo, landing)
	return app, landing, d
}

// validSubmitReq 一份填满必填项的申请，seed 用来区分不同提交
func validSubmitReq(seed int) dto.SubmitApplicationReq {
	return dto.SubmitApplicationReq{
		FounderName:  fmt.Sprintf("Founder %d", seed),
		AgentName:    fmt.Sprintf("Agent-%d", seed),
		Email:        fmt.Sprintf("founder%d@example.com", seed),
		StartupName:  fmt.Sprintf("Startup-%02d", seed),
		Tagline:      fmt.Sprintf("Tagline number %d", seed),
		Description:  "We are building infrastructure for autonomous agents.",
		Category:     "Agent Tools",
		CurrentStage: "Building MVP",
	}
}
