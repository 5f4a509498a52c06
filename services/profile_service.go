package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/repository"
	"portfolio-admin-server/types"
)

const profileCacheKey = "cache:profile"

// ProfileService manages the singleton profile document. Reads go through
// the Redis cache when one is configured.
type ProfileService struct {
	profileRepo repository.Repository
	mediaClient *media.Client
	env         *types.Environment
}

func NewProfileService(dbSelector *repository.CouchDBSelector, mediaClient *media.Client, env *types.Environment) *ProfileService {
	profileRepo, err := dbSelector.ChooseDB(repository.Profile)
	if err != nil {
		panic(err)
	}
	return &ProfileService{profileRepo: profileRepo, mediaClient: mediaClient, env: env}
}

func (s *ProfileService) getFromCache() *types.Profile {
	if s.env == nil || s.env.RedisClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	val, cErr := s.env.RedisClient.Get(ctx, profileCacheKey).Result()
	if cErr != nil {
		if !errors.Is(cErr, redis.Nil) {
			global.Logger.Log("CacheError", "ProfileService.Get", "error", cErr.Error())
		}
		return nil
	}
	var profile types.Profile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		global.Logger.Log("CacheError", "ProfileService.Get unmarshal", "error", err.Error())
		return nil
	}
	if profile.ID == "" {
		return nil
	}
	return &profile
}

func (s *ProfileService) saveToCache(profile *types.Profile) {
	if s.env == nil || s.env.RedisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	data, mErr := json.Marshal(profile)
	if mErr != nil {
		global.Logger.Log("CacheError", "ProfileService.Set marshal", "error", mErr.Error())
		return
	}
	if cErr := s.env.RedisClient.Set(ctx, profileCacheKey, data, 0).Err(); cErr != nil {
		global.Logger.Log("CacheError", "ProfileService.Set", "error", cErr.Error())
	}
}

func (s *ProfileService) deleteFromCache() {
	if s.env == nil || s.env.RedisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if cErr := s.env.RedisClient.Del(ctx, profileCacheKey).Err(); cErr != nil {
		global.Logger.Log("CacheError", "ProfileService.Delete", "error", cErr.Error())
	}
}

// Get returns the singleton profile (types.ErrNotFound before first create).
func (s *ProfileService) Get() (*types.Profile, error) {
	if cached := s.getFromCache(); cached != nil {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	response, err := s.profileRepo.GetByID(ctx, types.ProfileDocID)
	if err != nil {
		return nil, err
	}
	var profile types.Profile
	if mErr := repository.MapToObject(response, &profile); mErr != nil {
		return nil, mErr
	}

	s.saveToCache(&profile)
	return &profile, nil
}

// Create stores the profile under its fixed id; a second create conflicts.
func (s *ProfileService) Create(profile *types.Profile) (*types.Profile, error) {
	if _, err := s.Get(); err == nil {
		return nil, types.ErrConflict
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	profile.ID = types.ProfileDocID
	profile.Rev = ""
	now := time.Now().UTC().UnixMilli()
	profile.Created = now
	profile.Modified = now

	if err := s.profileRepo.Save(ctx, profile.ID, profile); err != nil {
		global.Logger.Log("ProfileService.Create", "failed to save", "error", err.Error())
		return nil, err
	}
	s.deleteFromCache()
	return profile, nil
}

// Update merges only the provided fields. Replacing cloudinaryImageId
// destroys the previous image first, best effort.
func (s *ProfileService) Update(input *types.InputProfile) (*types.Profile, []types.CleanupWarning, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, nil, err
	}

	var warnings []types.CleanupWarning
	if input.CloudinaryImageID != nil && existing.CloudinaryImageID != "" && *input.CloudinaryImageID != existing.CloudinaryImageID {
		warnings = destroyAssets(s.mediaClient, []string{existing.CloudinaryImageID})
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Bio != nil {
		existing.Bio = *input.Bio
	}
	if input.Socials != nil {
		existing.Socials = *input.Socials
	}
	if input.ProfileImage != nil {
		existing.ProfileImage = *input.ProfileImage
	}
	if input.CloudinaryImageID != nil {
		existing.CloudinaryImageID = *input.CloudinaryImageID
	}
	existing.Modified = time.Now().UTC().UnixMilli()

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if sErr := s.profileRepo.Save(ctx, existing.ID, existing); sErr != nil {
		global.Logger.Log("ProfileService.Update", "failed to save", "error", sErr.Error())
		return nil, warnings, sErr
	}
	s.deleteFromCache()
	return existing, warnings, nil
}
