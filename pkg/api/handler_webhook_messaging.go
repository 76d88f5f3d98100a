package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/services"
)

// messagingWebhookRequest is the provider's inbound-message delivery.
// Twilio posts form-encoded; JSON is accepted for other providers.
type messagingWebhookRequest struct {
	From        string `json:"From" form:"From"`
	Body        string `json:"Body" form:"Body"`
	MessageSid  string `json:"MessageSid" form:"MessageSid"`
	ProfileName string `json:"ProfileName" form:"ProfileName"`
	NumMedia    string `json:"NumMedia" form:"NumMedia"`
}

// messagingWebhookHandler handles POST /webhooks/messaging.
//
// Status codes follow provider retry semantics: 200 on success and on
// orchestration-level failures (the user message is already persisted, a
// redelivery would only duplicate it), 5xx only when the store rejected
// the message so the provider retries later.
func (s *Server) messagingWebhookHandler(c *echo.Context) error {
	var req messagingWebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed webhook body")
	}
	if req.From == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "From is required")
	}

	err := s.dispatcher.HandleInbound(c.Request().Context(), models.InboundMessage{
		Phone:       req.From,
		Body:        req.Body,
		ProfileName: req.ProfileName,
		MessageSid:  req.MessageSid,
		Channel:     "whatsapp",
	})
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, WebhookResponse{Status: "ok"})
	case errors.Is(err, services.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, messenger.ErrTransient),
		errors.Is(err, messenger.ErrPermanent),
		errors.Is(err, llm.ErrUnavailable):
		// Inbound persisted; the failed outbound side is recorded as a
		// system message. Acknowledge so the provider does not redeliver.
		slog.Warn("Inbound accepted with degraded response",
			"message_sid", req.MessageSid, "error", err)
		return c.JSON(http.StatusOK, WebhookResponse{Status: "accepted"})
	default:
		slog.Error("Inbound webhook failed", "message_sid", req.MessageSid, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
