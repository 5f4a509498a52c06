package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-admin-server/services"
	"portfolio-admin-server/types"
)

type ProfileApi struct {
	profileService *services.ProfileService
	validate       *validator.Validate
}

func NewProfileApi(profileService *services.ProfileService) *ProfileApi {
	return &ProfileApi{
		profileService: profileService,
		validate:       validator.New(),
	}
}

// GetProfile returns the singleton profile
// @Summary Get the portfolio profile
// @Description Get the portfolio profile
// @Tags Profile
// @Success 200 {object} types.Profile
// @Failure 404 {object} api.ApiError "profile not created yet"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/profile [get]
func (a *ProfileApi) GetProfile(c *gin.Context) {
	profile, err := a.profileService.Get()
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "profile not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile stores the profile; only one may exist
// @Security Bearer
// @Summary Create the portfolio profile
// @Description Create the portfolio profile
// @Tags Profile
// @Param input body types.Profile true "Profile"
// @Success 201 {object} types.Profile
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 409 {object} api.ApiError "profile already exists"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/profile [post]
func (a *ProfileApi) CreateProfile(c *gin.Context) {
	var input types.Profile
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := a.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, ValidatorErrorToUser(err.(validator.ValidationErrors)))
		return
	}

	profile, err := a.profileService.Create(&input)
	if err != nil {
		if errors.Is(err, types.ErrConflict) {
			ApiErrorf(c, http.StatusConflict, "profile already exists")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to create profile")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile merges the provided fields into the stored profile
// @Security Bearer
// @Summary Update the portfolio profile
// @Description Update the portfolio profile (partial update)
// @Tags Profile
// @Param input body types.InputProfile true "Profile fields"
// @Success 200 {object} types.OutputProfile
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 404 {object} api.ApiError "profile not created yet"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/profile [put]
func (a *ProfileApi) UpdateProfile(c *gin.Context) {
	var input types.InputProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}

	profile, warnings, err := a.profileService.Update(&input)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "profile not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, types.OutputProfile{Profile: profile, CleanupWarnings: warnings})
}
