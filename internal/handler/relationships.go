package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

type RelationshipHandler struct {
	svc *service.RelationshipService
}

func NewRelationshipHandler(svc *service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{svc: svc}
}

func (h *RelationshipHandler) List(c *gin.Context) {
	rels, err := h.svc.List(c.Request.Context(), middleware.OrgID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, rels)
}

func (h *RelationshipHandler) Create(c *gin.Context) {
	var rel model.ReportingRelationship
	if err := c.ShouldBindJSON(&rel); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	rel.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Create(c.Request.Context(), &rel); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, rel)
}

func (h *RelationshipHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid relationship id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.NoContent(c)
}
