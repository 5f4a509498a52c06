package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/repository"
	"portfolio-admin-server/types"
)

type SkillService struct {
	skillRepo   repository.Repository
	mediaClient *media.Client
	env         *types.Environment
}

func NewSkillService(dbSelector *repository.CouchDBSelector, mediaClient *media.Client, env *types.Environment) *SkillService {
	skillRepo, err := dbSelector.ChooseDB(repository.Skills)
	if err != nil {
		panic(err)
	}
	return &SkillService{skillRepo: skillRepo, mediaClient: mediaClient, env: env}
}

func (s *SkillService) List() ([]*types.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	docs, err := s.skillRepo.GetAll(ctx, listLimit, 0)
	if err != nil {
		return nil, err
	}
	skills := make([]*types.Skill, 0, len(docs))
	for _, doc := range docs {
		var skill types.Skill
		if uErr := json.Unmarshal(doc, &skill); uErr != nil {
			global.Logger.Log("SkillService.List", "failed to decode document", "error", uErr.Error())
			return nil, uErr
		}
		skills = append(skills, &skill)
	}
	return skills, nil
}

func (s *SkillService) Get(id string) (*types.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	response, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var skill types.Skill
	if mErr := repository.MapToObject(response, &skill); mErr != nil {
		return nil, mErr
	}
	return &skill, nil
}

func (s *SkillService) Create(skill *types.Skill) (*types.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	skill.ID = uuid.NewString()
	skill.Rev = ""
	now := time.Now().UTC().UnixMilli()
	skill.Created = now
	skill.Modified = now

	if err := s.skillRepo.Save(ctx, skill.ID, skill); err != nil {
		global.Logger.Log("SkillService.Create", "failed to save", "error", err.Error())
		return nil, err
	}
	return skill, nil
}

// Update merges provided fields. Replacing (or clearing) the image public id
// destroys the previous asset first, best effort.
func (s *SkillService) Update(id string, input *types.InputSkill) (*types.Skill, []types.CleanupWarning, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	var warnings []types.CleanupWarning
	if input.CloudinaryPublicID != nil && existing.CloudinaryPublicID != "" && *input.CloudinaryPublicID != existing.CloudinaryPublicID {
		warnings = destroyAssets(s.mediaClient, []string{existing.CloudinaryPublicID})
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Category != nil {
		existing.Category = *input.Category
	}
	if input.Level != nil {
		existing.Level = *input.Level
	}
	if input.ImageURL != nil {
		existing.ImageURL = *input.ImageURL
	}
	if input.CloudinaryPublicID != nil {
		existing.CloudinaryPublicID = *input.CloudinaryPublicID
	}
	if input.Featured != nil {
		existing.Featured = *input.Featured
	}
	existing.Modified = time.Now().UTC().UnixMilli()

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if sErr := s.skillRepo.Save(ctx, existing.ID, existing); sErr != nil {
		global.Logger.Log("SkillService.Update", "failed to save", "error", sErr.Error())
		return nil, warnings, sErr
	}
	return existing, warnings, nil
}

func (s *SkillService) Delete(id string) ([]types.CleanupWarning, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var warnings []types.CleanupWarning
	if existing.CloudinaryPublicID != "" {
		warnings = destroyAssets(s.mediaClient, []string{existing.CloudinaryPublicID})
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if dErr := s.skillRepo.Delete(ctx, id); dErr != nil {
		global.Logger.Log("SkillService.Delete", "failed to delete", "error", dErr.Error())
		return warnings, dErr
	}
	return warnings, nil
}
