package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

type PeopleHandler struct {
	svc       *service.PeopleService
	directory *service.DirectoryService
}

func NewPeopleHandler(svc *service.PeopleService, directory *service.DirectoryService) *PeopleHandler {
	return &PeopleHandler{svc: svc, directory: directory}
}

func (h *PeopleHandler) List(c *gin.Context) {
	people, err := h.svc.List(c.Request.Context(), middleware.OrgID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, people)
}

func (h *PeopleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	person, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "PERSON")
		return
	}
	response.Success(c, person)
}

func (h *PeopleHandler) Create(c *gin.Context) {
	var person model.Person
	if err := c.ShouldBindJSON(&person); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	person.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Create(c.Request.Context(), &person); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, person)
}

func (h *PeopleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	var person model.Person
	if err := c.ShouldBindJSON(&person); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	person.ID = id
	person.OrganizationID = middleware.OrgID(c)
	if err := h.svc.Update(c.Request.Context(), &person); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, person)
}

func (h *PeopleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.NoContent(c)
}

// Hierarchy returns the transitive team below a manager.
func (h *PeopleHandler) Hierarchy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	response.Success(c, gin.H{
		"manager": id,
		"team":    h.directory.TeamHierarchy(c.Request.Context(), id),
	})
}

// Chain returns the management chain above a person.
func (h *PeopleHandler) Chain(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	response.Success(c, gin.H{
		"person": id,
		"chain":  h.directory.DelegationChain(c.Request.Context(), id),
	})
}

// Compatibility scores an ad-hoc set of people.
func (h *PeopleHandler) Compatibility(c *gin.Context) {
	var req struct {
		PersonIDs []uuid.UUID `json:"person_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.directory.AnalyzeTeamCompatibility(c.Request.Context(), req.PersonIDs))
}
