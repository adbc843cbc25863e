package hraccess

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config holds the configuration for the access service
type Config struct {
	DB          *gorm.DB
	RedisClient *redis.Client // optional; nil disables the decision cache
	Logger      *zap.SugaredLogger
	Org         OrgGraph // optional; defaults to a gorm-backed accessor
	CacheTTL    time.Duration
	CachePrefix string
	AutoMigrate bool
}

// Service is the access resolver and audit history store. It holds no
// mutable in-process state; all record state lives in the database and every
// method is safe for concurrent use.
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *zap.SugaredLogger
	org         OrgGraph
	cacheTTL    time.Duration
	cachePrefix string
}

// New initializes the access service
func New(cfg Config) (*Service, error) {
	if cfg.DB == nil {
		return nil, fmt.Errorf("database is required")
	}

	if cfg.CachePrefix == "" {
		cfg.CachePrefix = "hraccess:"
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 30 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	if cfg.AutoMigrate {
		err := cfg.DB.AutoMigrate(
			&Department{},
			&Location{},
			&Employee{},
			&ManagementAssignment{},
			&TrainingRecord{},
			&TicketRecord{},
			&HistoryRecord{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to auto-migrate: %w", err)
		}
	}

	svc := &Service{
		db:          cfg.DB,
		redisClient: cfg.RedisClient,
		log:         cfg.Logger,
		cacheTTL:    cfg.CacheTTL,
		cachePrefix: cfg.CachePrefix,
	}
	if cfg.Org != nil {
		svc.org = cfg.Org
	} else {
		svc.org = &gormOrgGraph{db: cfg.DB}
	}
	return svc, nil
}
