package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/platform/cache"
)

// GeoLocationService resolves visitor defaults from the client IP by walking
// an ordered provider chain. It runs once per session, off every hot path.
type GeoLocationService struct {
	providers       []portsclients.GeoProvider
	cache           *cache.Cache
	cacheTTL        time.Duration
	providerTimeout time.Duration
	logger          *slog.Logger
}

// NewGeoLocationService creates a new GeoLocationService. Providers are tried
// in the order given. cache may be nil.
func NewGeoLocationService(providers []portsclients.GeoProvider, c *cache.Cache, cacheTTL, providerTimeout time.Duration, logger *slog.Logger) *GeoLocationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeoLocationService{
		providers:       providers,
		cache:           c,
		cacheTTL:        cacheTTL,
		providerTimeout: providerTimeout,
		logger:          logger,
	}
}

var _ portssvc.GeoLocationSvcFacade = (*GeoLocationService)(nil)

// Resolve returns the first successful provider result, or the fixed US
// default when every provider fails. Network errors, malformed payloads and
// in-payload error fields are all treated the same: log and fall through.
// It never returns an error to the caller.
func (s *GeoLocationService) Resolve(ctx context.Context, ip string) domain.GeoLocation {
	cacheKey := "geo:" + ip
	if s.cache != nil {
		if data, ok := s.cache.Get(cacheKey); ok {
			var loc domain.GeoLocation
			if err := json.Unmarshal(data, &loc); err == nil {
				return loc
			}
			s.cache.Delete(cacheKey)
		}
	}

	for _, p := range s.providers {
		loc, err := s.lookupOne(ctx, p, ip)
		if err != nil {
			s.logger.Warn("Geolocation provider failed, falling through",
				slog.String("provider", p.Name()),
				slog.String("ip", ip),
				slog.String("error", err.Error()),
			)
			continue
		}

		if loc.CurrencyCode == "" {
			loc.CurrencyCode = CurrencyForCountry(loc.CountryCode)
		}
		s.store(cacheKey, loc)
		return loc
	}

	s.logger.Warn("All geolocation providers failed, using default location", slog.String("ip", ip))
	loc := domain.DefaultGeoLocation(ip)
	s.store(cacheKey, loc)
	return loc
}

func (s *GeoLocationService) lookupOne(ctx context.Context, p portsclients.GeoProvider, ip string) (domain.GeoLocation, error) {
	lookupCtx := ctx
	if s.providerTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, s.providerTimeout)
		defer cancel()
	}
	return p.Lookup(lookupCtx, ip)
}

func (s *GeoLocationService) store(key string, loc domain.GeoLocation) {
	if s.cache == nil {
		return
	}
	if data, err := json.Marshal(loc); err == nil {
		s.cache.Set(key, data, s.cacheTTL)
	}
}
