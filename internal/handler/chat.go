package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/pkg/response"
	"github.com/nexhr/orgassist/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (h *ChatHandler) ChatWithPerson(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("personId"))
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = "person:" + personID.String()
	}

	reply, err := h.svc.ChatWithPerson(c.Request.Context(), personID, req.SessionID, req.Message)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, reply)
}

func (h *ChatHandler) AskHR(c *gin.Context) {
	orgID := middleware.OrgID(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = "hr:" + orgID.String()
	}

	reply, err := h.svc.AskHR(c.Request.Context(), orgID, req.SessionID, req.Message)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, reply)
}
