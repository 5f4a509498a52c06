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

type ProjectService struct {
	projectRepo repository.Repository
	mediaClient *media.Client
	env         *types.Environment
}

func NewProjectService(dbSelector *repository.CouchDBSelector, mediaClient *media.Client, env *types.Environment) *ProjectService {
	projectRepo, err := dbSelector.ChooseDB(repository.Projects)
	if err != nil {
		panic(err)
	}
	return &ProjectService{projectRepo: projectRepo, mediaClient: mediaClient, env: env}
}

// List returns all projects, newest created first.
func (s *ProjectService) List() ([]*types.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	docs, err := s.projectRepo.GetAll(ctx, listLimit, 0)
	if err != nil {
		return nil, err
	}
	projects := make([]*types.Project, 0, len(docs))
	for _, doc := range docs {
		var project types.Project
		if uErr := json.Unmarshal(doc, &project); uErr != nil {
			global.Logger.Log("ProjectService.List", "failed to decode document", "error", uErr.Error())
			return nil, uErr
		}
		projects = append(projects, &project)
	}
	return projects, nil
}

func (s *ProjectService) Get(id string) (*types.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	response, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var project types.Project
	if mErr := repository.MapToObject(response, &project); mErr != nil {
		return nil, mErr
	}
	return &project, nil
}

func (s *ProjectService) Create(project *types.Project) (*types.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	project.ID = uuid.NewString()
	project.Rev = ""
	now := time.Now().UTC().UnixMilli()
	project.Created = now
	project.Modified = now
	if project.ImageURL == "" && len(project.Gallery) > 0 {
		project.ImageURL = project.Gallery[0].URL
	}

	if err := s.projectRepo.Save(ctx, project.ID, project); err != nil {
		global.Logger.Log("ProjectService.Create", "failed to save", "error", err.Error())
		return nil, err
	}
	return project, nil
}

// Update merges the provided fields into the stored project. When the
// gallery changes, assets dropped from the list are destroyed in the media
// store first; destroy failures come back as warnings and the document write
// proceeds regardless.
func (s *ProjectService) Update(id string, input *types.InputProject) (*types.Project, []types.CleanupWarning, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	gallery, galleryProvided, gErr := input.Gallery()
	if gErr != nil {
		return nil, nil, gErr
	}

	var warnings []types.CleanupWarning
	if galleryProvided {
		newIDs := make([]string, 0, len(gallery))
		for _, img := range gallery {
			newIDs = append(newIDs, img.PublicID)
		}
		removed := removedIDs(existing.PublicIDs(), newIDs)
		warnings = destroyAssets(s.mediaClient, removed)
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Category != nil {
		existing.Category = *input.Category
	}
	if input.TechStack != nil {
		existing.TechStack = *input.TechStack
	}
	if galleryProvided {
		existing.Gallery = gallery
	}
	if input.ImageURL != nil {
		existing.ImageURL = *input.ImageURL
	} else if galleryProvided {
		existing.ImageURL = ""
		if len(gallery) > 0 {
			existing.ImageURL = gallery[0].URL
		}
	}
	if input.GithubLink != nil {
		existing.GithubLink = *input.GithubLink
	}
	if input.LiveLink != nil {
		existing.LiveLink = *input.LiveLink
	}
	if input.Featured != nil {
		existing.Featured = *input.Featured
	}
	if input.Order != nil {
		existing.Order = *input.Order
	}
	existing.Modified = time.Now().UTC().UnixMilli()

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if sErr := s.projectRepo.Save(ctx, existing.ID, existing); sErr != nil {
		global.Logger.Log("ProjectService.Update", "failed to save", "error", sErr.Error())
		return nil, warnings, sErr
	}
	return existing, warnings, nil
}

// Delete destroys every gallery asset (best effort) and then removes the
// document.
func (s *ProjectService) Delete(id string) ([]types.CleanupWarning, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	warnings := destroyAssets(s.mediaClient, existing.PublicIDs())

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if dErr := s.projectRepo.Delete(ctx, id); dErr != nil {
		global.Logger.Log("ProjectService.Delete", "failed to delete", "error", dErr.Error())
		return warnings, dErr
	}
	return warnings, nil
}
