package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-admin-server/services"
	"portfolio-admin-server/types"
)

type ContactApi struct {
	contactService *services.ContactService
	validate       *validator.Validate
}

func NewContactApi(contactService *services.ContactService) *ContactApi {
	return &ContactApi{
		contactService: contactService,
		validate:       validator.New(),
	}
}

// ListContacts returns inbound messages, newest first
// @Security Bearer
// @Summary List contact messages
// @Description List contact messages ordered newest first
// @Tags Contacts
// @Success 200 {array} types.Contact
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/contacts [get]
func (a *ContactApi) ListContacts(c *gin.Context) {
	contacts, err := a.contactService.List()
	if err != nil {
		ApiErrorf(c, http.StatusInternalServerError, "failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// CreateContact stores an inbound message from the public site
// @Summary Submit a contact message
// @Description Submit a contact message from the public portfolio site
// @Tags Contacts
// @Param input body types.InputContact true "Message"
// @Success 201 {object} types.Contact
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/contacts [post]
func (a *ContactApi) CreateContact(c *gin.Context) {
	var input types.InputContact
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := a.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, ValidatorErrorToUser(err.(validator.ValidationErrors)))
		return
	}

	contact, err := a.contactService.Create(&input)
	if err != nil {
		ApiErrorf(c, http.StatusInternalServerError, "failed to save message")
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// MarkContactRead flips the isRead flag and nothing else
// @Security Bearer
// @Summary Mark a contact message as read
// @Description Mark a contact message as read
// @Tags Contacts
// @Param id path string true "Contact id"
// @Success 200 {object} types.Contact
// @Failure 400 {object} api.ApiError "invalid id"
// @Failure 404 {object} api.ApiError "message not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/contacts/{id} [put]
func (a *ContactApi) MarkContactRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	contact, err := a.contactService.MarkRead(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "message not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to update message")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteContact removes the message
// @Security Bearer
// @Summary Delete a contact message
// @Description Delete a contact message
// @Tags Contacts
// @Param id path string true "Contact id"
// @Success 200 {object} types.OutputDeleted
// @Failure 400 {object} api.ApiError "invalid id"
// @Failure 404 {object} api.ApiError "message not found"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Produce json
// @Router /api/v1/contacts/{id} [delete]
func (a *ContactApi) DeleteContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.contactService.Delete(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ApiErrorf(c, http.StatusNotFound, "message not found")
			return
		}
		ApiErrorf(c, http.StatusInternalServerError, "failed to delete message")
		return
	}
	c.JSON(http.StatusOK, types.OutputDeleted{Success: true})
}
