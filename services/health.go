package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const checkTimeout = time.Second

// Checker is one dependency readiness check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Readiness runs every checker in order and stops at the first failure.
type Readiness struct {
	checkers []Checker
}

func NewReadiness(checkers ...Checker) *Readiness {
	return &Readiness{checkers: checkers}
}

func (r *Readiness) Ready(ctx context.Context) error {
	for _, ch := range r.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

type DatabaseChecker struct {
	db *gorm.DB
}

func NewDatabaseChecker(db *gorm.DB) *DatabaseChecker {
	return &DatabaseChecker{db: db}
}

func (c *DatabaseChecker) Name() string { return "postgres" }

func (c *DatabaseChecker) Check(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

type RedisChecker struct {
	rdb *redis.Client
}

func NewRedisChecker(rdb *redis.Client) *RedisChecker {
	return &RedisChecker{rdb: rdb}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}
