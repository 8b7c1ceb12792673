package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

// OrganizationHandler serves the tenant CRUD surface. These routes sit
// outside the X-Org-ID scope: they are how an org id comes to exist.
type OrganizationHandler struct {
	svc *service.OrganizationService
}

func NewOrganizationHandler(svc *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	orgs, total, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, orgs, total, limit, offset)
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}
	org, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "ORGANIZATION")
		return
	}
	response.Success(c, org)
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var org model.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Create(c.Request.Context(), &org); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, org)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}
	var org model.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	org.ID = id
	if err := h.svc.Update(c.Request.Context(), &org); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, org)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.NoContent(c)
}
