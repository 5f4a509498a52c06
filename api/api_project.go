package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"portfolio-admin-server/services"
	"portfolio-admin-server/types"
)

type ProjectApi struct {
	projectService *services.ProjectService
	validate       *validator.Validate
}

func NewProjectApi(projectService *services.ProjectService) *ProjectApi {
	return &ProjectApi{
		projectService: projectService,
		validate:       validator.New(),
	}
}

// pathID validates the :id segment before any store call.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid id")
		return "", false
	}
	return id, true
}

// ListProjects returns all projects, newest first
// @Summary List projects
// @Description List projects ordered newest first
// @Tags Projects
// @Success 200 {array} types.Project
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/projects [get]
func (a *ProjectApi) ListProjects(c *gin.Context) {
	projects, err := a.projectService.List()
	if err != nil {
		ApiErrorf(c, http.StatusInternalServerError, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project
// @Security Bearer
// @Summary Get a project by id
// @Description Get a project by id
// @Tags Projects
// @Param id path string true "Project id"
// @Success 200 {object} types.Project
// @Failure 400 {object} api.ApiError "invalid id"
// @Failure 404 {object} api.ApiError "project not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/projects/{id} [get]
func (a *ProjectApi) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := a.projectService.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "project not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to get project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject stores a new project
// @Security Bearer
// @Summary Create a project
// @Description Create a project
// @Tags Projects
// @Param input body types.Project true "Project"
// @Success 201 {object} types.Project
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/projects [post]
func (a *ProjectApi) CreateProject(c *gin.Context) {
	var input types.Project
	if err := c.ShouldBindJSON(&input); err != nil {
		if errors.Is(err, types.ErrGalleryMismatch) {
			ApiErrorf(c, http.StatusBadRequest, types.ErrGalleryMismatch.Error())
			return
		}
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := a.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, ValidatorErrorToUser(err.(validator.ValidationErrors)))
		return
	}
	if len(input.Gallery) > types.MaxGalleryImages {
		ApiErrorf(c, http.StatusBadRequest, "a project gallery holds at most %d images", types.MaxGalleryImages)
		return
	}

	project, err := a.projectService.Create(&input)
	if err != nil {
		ApiErrorf(c, http.StatusInternalServerError, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject merges the provided fields and reconciles gallery assets
// @Security Bearer
// @Summary Update a project
// @Description Update a project (partial update); removed gallery images are destroyed in the media store
// @Tags Projects
// @Param id path string true "Project id"
// @Param input body types.InputProject true "Project fields"
// @Success 200 {object} types.OutputProject
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 404 {object} api.ApiError "project not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/projects/{id} [put]
func (a *ProjectApi) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input types.InputProject
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}
	if input.Images != nil && len(*input.Images) > types.MaxGalleryImages {
		ApiErrorf(c, http.StatusBadRequest, "a project gallery holds at most %d images", types.MaxGalleryImages)
		return
	}

	project, warnings, err := a.projectService.Update(id, &input)
	if err != nil {
		if errors.Is(err, types.ErrGalleryMismatch) {
			ApiErrorf(c, http.StatusBadRequest, types.ErrGalleryMismatch.Error())
			return
		}
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "project not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to update project")
		return
	}
	c.JSON(http.StatusOK, types.OutputProject{Project: project, CleanupWarnings: warnings})
}

// DeleteProject removes the project and destroys its gallery assets
// @Security Bearer
// @Summary Delete a project
// @Description Delete a project and its media assets
// @Tags Projects
// @Param id path string true "Project id"
// @Success 200 {object} types.OutputDeleted
// @Failure 400 {object} api.ApiError "invalid id"
// @Failure 404 {object} api.ApiError "project not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/projects/{id} [delete]
func (a *ProjectApi) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	warnings, err := a.projectService.Delete(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "project not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to delete project")
		return
	}
	c.JSON(http.StatusOK, types.OutputDeleted{Success: true, CleanupWarnings: warnings})
}
