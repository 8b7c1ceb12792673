package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) Search(c *gin.Context) {
	docs, err := h.svc.Search(c.Request.Context(), middleware.OrgID(c), c.Query("q"), c.Query("type"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, docs)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	doc.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Create(c.Request.Context(), &doc); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid document id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.NoContent(c)
}
