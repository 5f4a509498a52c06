package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-admin-server/services"
	"portfolio-admin-server/types"
)

type SkillApi struct {
	skillService *services.SkillService
	validate     *validator.Validate
}

func NewSkillApi(skillService *services.SkillService) *SkillApi {
	return &SkillApi{
		skillService: skillService,
		validate:     validator.New(),
	}
}

// ListSkills returns all skills, newest first
// @Summary List skills
// @Description List skills ordered newest first
// @Tags Skills
// @Success 200 {array} types.Skill
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/skills [get]
func (a *SkillApi) ListSkills(c *gin.Context) {
	skills, err := a.skillService.List()
	if err != nil {
		ApiErrorf(c, http.StatusInternalServerError, "failed to list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetSkill returns a single skill
// @Security Bearer
// @Summary Get a skill by id
// @Description Get a skill by id
// @Tags Skills
// @Param id path string true "Skill id"
// @Success 200 {object} types.Skill
// @Failure 400 {object} api.ApiError "invalid id"
// @Failure 404 {object} api.ApiError "skill not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/skills/{id} [get]
func (a *SkillApi) GetSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	skill, err := a.skillService.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "skill not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to get skill")
		return
	}
	c.JSON(http.StatusOK, skill)
}

// CreateSkill stores a new skill
// @Security Bearer
// @Summary Create a skill
// @Description Create a skill
// @Tags Skills
// @Param input body types.Skill true "Skill"
// @Success 201 {object} types.Skill
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/skills [post]
func (a *SkillApi) CreateSkill(c *gin.Context) {
	var input types.Skill
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := a.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, ValidatorErrorToUser(err.(validator.ValidationErrors)))
		return
	}

	skill, err := a.skillService.Create(&input)
	if err != nil {
		ApiErrorf(c, http.StatusInternalServerError, "failed to create skill")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill merges the provided fields; a replaced image is destroyed
// @Security Bearer
// @Summary Update a skill
// @Description Update a skill (partial update); a replaced image is destroyed in the media store
// @Tags Skills
// @Param id path string true "Skill id"
// @Param input body types.InputSkill true "Skill fields"
// @Success 200 {object} types.OutputSkill
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 404 {object} api.ApiError "skill not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/skills/{id} [put]
func (a *SkillApi) UpdateSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input types.InputSkill
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}

	skill, warnings, err := a.skillService.Update(id, &input)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "skill not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to update skill")
		return
	}
	c.JSON(http.StatusOK, types.OutputSkill{Skill: skill, CleanupWarnings: warnings})
}

// DeleteSkill removes the skill and destroys its image if it has one
// @Security Bearer
// @Summary Delete a skill
// @Description Delete a skill and its media asset
// @Tags Skills
// @Param id path string true "Skill id"
// @Success 200 {object} types.OutputDeleted
// @Failure 400 {object} api.ApiError "invalid id"
// @Failure 404 {object} api.ApiError "skill not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/skills/{id} [delete]
func (a *SkillApi) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	warnings, err := a.skillService.Delete(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "skill not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to delete skill")
		return
	}
	c.JSON(http.StatusOK, types.OutputDeleted{Success: true, CleanupWarnings: warnings})
}
