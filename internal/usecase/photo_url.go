package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"tindev/internal/domain/photo"
	"tindev/internal/infrastructure/cache"
	"tindev/internal/infrastructure/media"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

const photoURLCachePrefix = "photo:url:"

// PhotoURLService turns a stored photo id into a browsable URL. The media
// host is the source of truth; when it cannot answer, the stored preview URL
// is used, and when the photo itself is missing the platform default photo
// takes its place. Resolved URLs go through Redis.
type PhotoURLService struct {
	photos repository.PhotoRepository
	media  media.Client
	cache  *cache.Redis
	logger *log.Logger
	ttl    time.Duration
}

func NewPhotoURLService(photos repository.PhotoRepository, mediaClient media.Client, redis *cache.Redis, logger *log.Logger) *PhotoURLService {
	return &PhotoURLService{
		photos: photos,
		media:  mediaClient,
		cache:  redis,
		logger: logger,
		ttl:    cache.DefaultTTLFromEnv(),
	}
}

// Resolve never fails; the worst case is an empty URL when even the default
// photo cannot be resolved.
func (s *PhotoURLService) Resolve(ctx context.Context, photoID *uuid.UUID) string {
	if s == nil {
		return ""
	}
	if photoID == nil {
		return s.defaultURL(ctx)
	}

	key := photoURLCachePrefix + photoID.String()
	var cached string
	if ok, _ := s.cacheGet(ctx, key, &cached); ok && cached != "" {
		return cached
	}

	p, err := s.photos.FindActiveByID(ctx, *photoID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.logger != nil {
			s.logger.Printf("[PhotoURL] lookup failed photo=%s: %v", photoID, err)
		}
		return s.defaultURL(ctx)
	}

	url := s.resolvePhoto(ctx, p)
	if url == "" {
		return s.defaultURL(ctx)
	}
	s.cacheSet(ctx, key, url)
	return url
}

func (s *PhotoURLService) defaultURL(ctx context.Context) string {
	key := photoURLCachePrefix + "default"
	var cached string
	if ok, _ := s.cacheGet(ctx, key, &cached); ok && cached != "" {
		return cached
	}

	p, err := s.photos.FindDefault(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.logger != nil {
			s.logger.Printf("[PhotoURL] default photo lookup failed: %v", err)
		}
		return ""
	}

	url := s.resolvePhoto(ctx, p)
	if url != "" {
		s.cacheSet(ctx, key, url)
	}
	return url
}

func (s *PhotoURLService) resolvePhoto(ctx context.Context, p photo.Photo) string {
	if s.media != nil && p.MediaFileID != "" {
		url, err := s.media.PreviewURL(ctx, p.MediaFileID)
		if err == nil && url != "" {
			return url
		}
		if err != nil && s.logger != nil {
			s.logger.Printf("[PhotoURL] media host failed photo=%s: %v", p.ID, err)
		}
	}
	return p.URLPreview
}

func (s *PhotoURLService) cacheGet(ctx context.Context, key string, out *string) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	return s.cache.GetJSON(ctx, key, out)
}

func (s *PhotoURLService) cacheSet(ctx context.Context, key, url string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.SetJSON(ctx, key, url, s.ttl)
}
