package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/services"
)

// billingWebhookRequest is the billing platform's event delivery.
type billingWebhookRequest struct {
	Event      string  `json:"event"`
	OrderID    string  `json:"order_id"`
	BuyerEmail string  `json:"buyer_email"`
	BuyerPhone string  `json:"buyer_phone"`
	BuyerName  string  `json:"buyer_name"`
	Value      float64 `json:"value"`
	ProductID  string  `json:"product_id"`
	Signature  string  `json:"signature"`
}

// billingWebhookHandler handles POST /webhooks/billing.
//
// The signature is HMAC-SHA256 hex over the raw body with the shared
// secret, delivered in the X-Signature header. Platforms that cannot set
// headers put it in the body's signature field instead; those sign the
// body with the field empty and fill it in afterwards, so verification
// strips the value before recomputing. A mismatch is 401 with no side
// effects beyond one structured warning.
func (s *Server) billingWebhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
	}

	var req billingWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed webhook body")
	}

	if !verifyBillingSignature(s.cfg.Billing.WebhookSecret, body, c.Request().Header.Get("X-Signature"), req.Signature) {
		slog.Warn("Billing webhook signature mismatch",
			"order_id", req.OrderID, "remote", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")
	}

	evt := &models.BillingEvent{
		Kind:       req.Event,
		OrderID:    req.OrderID,
		BuyerEmail: req.BuyerEmail,
		BuyerPhone: req.BuyerPhone,
		BuyerName:  req.BuyerName,
		Value:      req.Value,
		ProductID:  req.ProductID,
		RawPayload: s.masker.MaskPayload(string(body)),
	}

	ctx := c.Request().Context()
	switch evt.Kind {
	case "sale.approved":
		err = s.dispatcher.HandleSale(ctx, evt)
	case "cart.abandonment":
		err = s.dispatcher.HandleAbandonment(ctx, evt)
	default:
		// Unknown kinds are persisted for audit and otherwise ignored.
		_, _, err = s.salesService.Record(ctx, s.cfg.Billing.Source, evt, "")
		if err == nil {
			slog.Info("Ignoring unknown billing event", "event", evt.Kind, "order_id", evt.OrderID)
		}
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) || services.IsValidationError(err) {
			return mapServiceError(err)
		}
		slog.Error("Billing webhook failed", "event", evt.Kind, "order_id", evt.OrderID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, WebhookResponse{Status: "ok"})
}

// verifyBillingSignature checks HMAC-SHA256 hex over the raw body. When
// the signature travels in the body instead of the header, its value is
// stripped before recomputing (the platform signed it empty).
func verifyBillingSignature(secret string, body []byte, headerSig, bodySig string) bool {
	if secret == "" {
		return false
	}

	provided := headerSig
	signed := body
	if provided == "" {
		if bodySig == "" {
			return false
		}
		provided = bodySig
		signed = bytes.Replace(body, []byte(bodySig), nil, 1)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(signed)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(provided))
}
