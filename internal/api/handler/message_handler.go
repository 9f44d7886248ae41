package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sounddesk/client-portal/internal/core/ports"
)

type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content"    validate:"required"`
}

type myConversationResponse struct {
	Messages any    `json:"messages"`
	AdminID  string `json:"adminId"`
}

// Send persists a direct message from the caller to receiverId.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Receiver and content"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.messages.Send(c.Request().Context(), caller, req.ReceiverID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Conversation returns the admin↔client thread for clientId, oldest first.
//
// @Summary      Get a conversation with a client
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {array}   domain.Message
// @Failure      403       {object}  errorResponse
// @Router       /api/messages/{clientId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	msgs, err := h.messages.Conversation(c.Request().Context(), caller, c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// MyConversation is the client-facing form: the admin counterpart is resolved
// server-side and its id returned so the client can address replies.
//
// @Summary      Get my conversation with the admin
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  myConversationResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/messages [get]
func (h *MessageHandler) MyConversation(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	conv, err := h.messages.MyConversation(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, myConversationResponse{
		Messages: conv.Messages,
		AdminID:  conv.AdminID,
	})
}
