package data

import (
	"context"
	"fmt"
	"log"

	"YClaw/internal/conf"
	"YClaw/internal/model"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Data 结构体持有所有数据库句柄
type Data struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewData(cfg *conf.Config) (*Data, func(), error) {
	// 1. 连接 Postgres
	dsn := cfg.Data.DatabaseSource
	// 🔥 TranslateError 必须开：user_id 唯一索引冲突要翻译成 gorm.ErrDuplicatedKey，
	// 重复提交的兜底检查依赖它
	pgDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %v", err)
	}

	// 自动迁移，GORM 会自动建表和索引 (含 applications.user_id 唯一索引)
	if err := pgDB.AutoMigrate(
		&model.User{},
		&model.Application{},
	); err != nil {
		return nil, nil, fmt.Errorf("schema migration failed: %v", err)
	}

	log.Println("✅ 数据库表结构迁移完成")

	// 2. 初始化 Redis (落地页缓存)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Data.RedisAddr,
		Password: cfg.Data.RedisPassword,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("❌ Redis 连接失败: %v", err)
	}
	log.Println("✅ Redis 连接成功")

	d := &Data{
		DB:    pgDB,
		Redis: rdb,
	}

	// 构造清理函数
	cleanup := func() {
		log.Println("正在关闭数据层资源...")
		if sqlDB, err := d.DB.DB(); err == nil {
			sqlDB.Close()
		}
		d.Redis.Close()
	}

	return d, cleanup, nil
}
