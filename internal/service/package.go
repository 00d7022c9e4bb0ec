package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

const packageCacheTTL = 1 * time.Minute

// PackageService provides package CRUD with a read-through Redis cache on
// single-package lookups. A nil redis client disables caching.
type PackageService struct {
	packageRepo PackageStore
	rdb         *redis.Client
}

func NewPackageService(packageRepo PackageStore, rdb *redis.Client) *PackageService {
	return &PackageService{packageRepo: packageRepo, rdb: rdb}
}

func packageCacheKey(packageNumber int) string {
	return fmt.Sprintf("package:%d", packageNumber)
}

func (s *PackageService) GetPackages(ctx context.Context) ([]entity.Package, error) {
	packages, err := s.packageRepo.GetPackages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching packages")
		return nil, err
	}
	return packages, nil
}

func (s *PackageService) GetPackage(ctx context.Context, packageNumber int) (*entity.Package, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, packageCacheKey(packageNumber)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error reading package %d from cache", packageNumber)
		}
		if cached != "" {
			pkg := &entity.Package{}
			if err := json.Unmarshal([]byte(cached), pkg); err == nil {
				return pkg, nil
			}
		}
	}

	pkg, err := s.packageRepo.GetPackageByID(ctx, packageNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching package %d", packageNumber)
		return nil, err
	}

	s.cachePackage(ctx, pkg)
	return pkg, nil
}

func (s *PackageService) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	if err := s.packageRepo.CreatePackage(ctx, pkg); err != nil {
		logger.Error().Err(err).Msg("Error creating package")
		return err
	}
	s.cachePackage(ctx, pkg)
	return nil
}

func (s *PackageService) UpdatePackage(ctx context.Context, pkg *entity.Package) error {
	if err := s.packageRepo.UpdatePackage(ctx, pkg); err != nil {
		logger.Error().Err(err).Msgf("Error updating package %d", pkg.PackageNumber)
		return err
	}
	s.invalidatePackage(ctx, pkg.PackageNumber)
	return nil
}

// DeletePackage refuses to remove a package that service records still
// reference. The COUNT pre-check gives the friendly message; the foreign-key
// RESTRICT constraint in the repository remains authoritative if a record is
// inserted between the two statements.
func (s *PackageService) DeletePackage(ctx context.Context, packageNumber int) error {
	count, err := s.packageRepo.CountServiceRecords(ctx, packageNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error counting service records for package %d", packageNumber)
		return err
	}
	if count > 0 {
		return apperr.Conflict("Cannot delete package. It is being used in service records.")
	}

	if err := s.packageRepo.DeletePackage(ctx, packageNumber); err != nil {
		logger.Error().Err(err).Msgf("Error deleting package %d", packageNumber)
		return err
	}
	s.invalidatePackage(ctx, packageNumber)
	return nil
}

// PreWarmCache loads every package into the cache with a short TTL.
func (s *PackageService) PreWarmCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	packages, err := s.packageRepo.GetPackages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting packages for cache pre-warm")
		return err
	}
	for i := range packages {
		s.cachePackage(ctx, &packages[i])
	}
	return nil
}

func (s *PackageService) cachePackage(ctx context.Context, pkg *entity.Package) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(pkg)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, packageCacheKey(pkg.PackageNumber), data, packageCacheTTL).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error setting package %d in cache", pkg.PackageNumber)
	}
}

func (s *PackageService) invalidatePackage(ctx context.Context, packageNumber int) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, packageCacheKey(packageNumber)).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error deleting package %d from cache", packageNumber)
	}
}
