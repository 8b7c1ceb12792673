package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

type DepartmentHandler struct {
	svc *service.DepartmentService
}

func NewDepartmentHandler(svc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

func (h *DepartmentHandler) List(c *gin.Context) {
	depts, err := h.svc.List(c.Request.Context(), middleware.OrgID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, depts)
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	dept.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Create(c.Request.Context(), &dept); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, dept)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid department id")
		return
	}
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	dept.ID = id
	dept.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Update(c.Request.Context(), &dept); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, dept)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid department id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.NoContent(c)
}
