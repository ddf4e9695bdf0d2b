package services

import (
	"context"
	"errors"
	"time"

	"pms/constants"
	apperrors "pms/errors"
	"pms/models"
	"pms/services/logger"

	"gorm.io/gorm"
)

const defaultTenantCacheTTL = 10 * time.Minute

// TenantService resolves tenants by slug through the injectable cache.
type TenantService struct {
	db     *gorm.DB
	cache  TenantCache
	ttl    time.Duration
	logger logger.Logger
}

type TenantServiceOptions struct {
	DB     *gorm.DB
	Cache  TenantCache
	TTL    time.Duration
	Logger logger.Logger
}

func NewTenantService(opts TenantServiceOptions) *TenantService {
	cache := opts.Cache
	if cache == nil {
		cache = NewMemoryTenantCache()
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = defaultTenantCacheTTL
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &TenantService{db: opts.DB, cache: cache, ttl: ttl, logger: l}
}

// GetBySlug returns the active tenant for a slug, consulting the cache first.
func (s *TenantService) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if tenant, ok := s.cache.Get(ctx, slug); ok {
		return tenant, nil
	}

	var tenant models.Tenant
	err := s.db.Where("slug = ?", slug).First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCodeTenantNotFound, "unknown property: "+slug)
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if tenant.Status != constants.TenantStatusActive {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCodeTenantNotFound, "property is not active: "+slug)
	}

	s.cache.Set(ctx, slug, &tenant, s.ttl)
	return &tenant, nil
}

// Invalidate drops the cached entry for a slug, e.g. after a tenant update.
func (s *TenantService) Invalidate(ctx context.Context, slug string) {
	s.cache.Invalidate(ctx, slug)
}
