package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/services"
)

// threadPatchRequest is the PATCH /api/v1/threads/:id body. Stage forces a
// transition regardless of trigger legality; Meta merges operator keys.
type threadPatchRequest struct {
	Stage string                  `json:"stage,omitempty"`
	Meta  models.MetaPatchRequest `json:"meta,omitempty"`
}

// listThreadsHandler handles GET /api/v1/threads.
func (s *Server) listThreadsHandler(c *echo.Context) error {
	filters := models.ThreadFilters{
		Stage:    c.QueryParam("stage"),
		FunnelID: c.QueryParam("funnel_id"),
	}

	if v := c.QueryParam("takeover"); v != "" {
		takeover, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid takeover: must be true or false")
		}
		filters.Takeover = &takeover
	}
	if v := c.QueryParam("search"); v != "" {
		if len(v) < 3 {
			return echo.NewHTTPError(http.StatusBadRequest, "search query must be at least 3 characters")
		}
		filters.Search = v
	}
	filters.Limit, filters.Offset = parsePage(c)

	result, err := s.threadService.ListThreads(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getThreadHandler handles GET /api/v1/threads/:id.
func (s *Server) getThreadHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	thread, err := s.threadService.GetThreadWithContact(c.Request().Context(), threadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, thread)
}

// patchThreadHandler handles PATCH /api/v1/threads/:id: operator meta
// patch and forced stage override. An override skips trigger matching but
// still rejects stages the funnel does not define; the transition is
// recorded as a system message attributed to the operator.
func (s *Server) patchThreadHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	var req threadPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Stage == "" && len(req.Meta) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to patch")
	}

	ctx := c.Request().Context()
	thread, err := s.threadService.GetThread(ctx, threadID)
	if err != nil {
		return mapServiceError(err)
	}

	if req.Stage != "" {
		funnelID, _ := thread.Meta["funnel_id"].(string)
		if funnelID == "" {
			funnelID = s.cfg.Funnels.DefaultFunnel
		}
		// Operators may force any defined stage, including ones no
		// trigger reaches from here.
		if !s.engine.HasStage(funnelID, req.Stage) {
			return mapServiceError(services.ErrIllegalStage)
		}

		from := thread.LeadStage
		author := extractAuthor(c)
		updated, sysMsg, err := s.threadService.TransitionStage(ctx, models.StageTransition{
			ThreadID:  threadID,
			From:      from,
			To:        req.Stage,
			Author:    author,
			ChangedAt: time.Now(),
		})
		if err != nil {
			return mapServiceError(err)
		}
		thread = updated
		s.publishMessage(ctx, sysMsg)
		s.publishStageChanged(ctx, threadID, from, req.Stage, author)
	}

	if len(req.Meta) > 0 {
		updated, err := s.threadService.PatchMeta(ctx, threadID, req.Meta)
		if err != nil {
			return mapServiceError(err)
		}
		thread = updated
	}

	return c.JSON(http.StatusOK, thread)
}

// listMessagesHandler handles GET /api/v1/threads/:id/messages.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	ctx := c.Request().Context()
	if _, err := s.threadService.GetThread(ctx, threadID); err != nil {
		return mapServiceError(err)
	}

	limit, offset := parsePage(c)
	result, err := s.messageService.ListMessages(ctx, threadID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// takeoverHandler handles POST /api/v1/threads/:id/takeover.
func (s *Server) takeoverHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	var req models.TakeoverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	ctx := c.Request().Context()
	thread, sysMsg, err := s.threadService.SetTakeover(ctx, threadID, req.Enabled, extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}
	s.publishMessage(ctx, sysMsg)
	s.publishTakeover(ctx, threadID, req.Enabled)

	return c.JSON(http.StatusOK, thread)
}

// humanReplyHandler handles POST /api/v1/threads/:id/messages: an
// operator-authored outbound. The send and the transcript append happen
// under the thread lock so they never interleave with a concurrently
// processed inbound.
func (s *Server) humanReplyHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	var req models.HumanReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	ctx := c.Request().Context()
	thread, err := s.threadService.GetThreadWithContact(ctx, threadID)
	if err != nil {
		return mapServiceError(err)
	}

	author := extractAuthor(c)
	var msg *ent.Message
	err = s.dispatcher.WithThreadLock(thread.ID, func() error {
		providerID, sendErr := s.sender.SendText(ctx, thread.Edges.Contact.Phone, req.Text)
		if sendErr != nil {
			return sendErr
		}
		created, createErr := s.messageService.CreateMessage(ctx, models.CreateMessageRequest{
			ThreadID:          thread.ID,
			Role:              "assistant",
			Content:           req.Text,
			IsHuman:           true,
			Author:            author,
			ProviderMessageID: providerID,
		})
		if createErr != nil {
			return createErr
		}
		msg = created
		return nil
	})
	if err != nil {
		if errors.Is(err, messenger.ErrTransient) || errors.Is(err, messenger.ErrPermanent) {
			return echo.NewHTTPError(http.StatusBadGateway, "provider send failed")
		}
		return mapServiceError(err)
	}

	if err := s.threadService.TouchLastMessage(ctx, thread.ID, time.Now()); err != nil {
		slog.Warn("Failed to touch thread activity", "thread_id", thread.ID, "error", err)
	}
	s.publishMessage(ctx, msg)

	return c.JSON(http.StatusCreated, msg)
}

// parsePage reads limit/offset query params; services clamp the maximums.
func parsePage(c *echo.Context) (limit, offset int) {
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
