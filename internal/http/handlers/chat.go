package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/internal/http/render"
	"geministore.com/app/internal/http/validation"
	"geministore.com/app/internal/modules/assistant"
	"geministore.com/app/internal/shared/apperr"
)

// ChatHandler fronts the shopping assistant. A failed model call still
// returns 200: the error text is itself the assistant's reply.
type ChatHandler struct {
	Assistant *assistant.Service
}

func NewChatHandler(svc *assistant.Service) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

type chatInput struct {
	Message string              `json:"message" binding:"required"`
	History []assistant.Message `json:"history"`
}

// Greeting handles GET /api/chat: the opening message for the panel.
func (h *ChatHandler) Greeting(c *gin.Context) {
	sender := "assistant"
	if !h.Assistant.Enabled() {
		sender = "error"
	}
	render.JSON(c, http.StatusOK, gin.H{
		"text":   h.Assistant.Greeting(),
		"sender": sender,
	})
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(c *gin.Context) {
	var in chatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Message is required.", errs))
		return
	}

	reply, ok := h.Assistant.Chat(c.Request.Context(), in.History, in.Message)
	sender := "assistant"
	if !ok {
		sender = "error"
	}
	render.JSON(c, http.StatusOK, gin.H{
		"text":   reply,
		"sender": sender,
	})
}
