package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get returns the resolved settings with defaults applied.
func (h *SettingsHandler) Get(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("personId"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	settings, err := h.svc.Resolved(c.Request.Context(), personID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("personId"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	var settings model.AISettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	settings.PersonID = personID
	settings.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Upsert(c.Request.Context(), &settings); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, settings)
}
