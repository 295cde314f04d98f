package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mailgate/internal/model"
	"mailgate/pkg/metrics"
)

// MailSender transmits one message per call to the outbound relay.
type MailSender interface {
	Send(ctx context.Context, msg *model.OutboundMessage) (*model.DeliveryInfo, error)
}

type MailHandler struct {
	sender MailSender
	logger *zap.Logger
}

func NewMailHandler(sender MailSender, logger *zap.Logger) *MailHandler {
	return &MailHandler{
		sender: sender,
		logger: logger,
	}
}

// SendEmail handles POST /send.
func (h *MailHandler) SendEmail(c *gin.Context) {
	var req struct {
		From    string `json:"from" binding:"required"`
		To      string `json:"to" binding:"required"`
		Subject string `json:"subject"`
		Text    string `json:"text"`
		HTML    string `json:"html"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	info, err := h.sender.Send(c.Request.Context(), &model.OutboundMessage{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	if err != nil {
		h.logger.Error("email send failed",
			zap.String("to", req.To),
			zap.Error(err),
		)
		metrics.IncrementEmailSent("failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
		return
	}

	metrics.IncrementEmailSent("success")
	c.JSON(http.StatusOK, gin.H{
		"message": "Email sent",
		"info":    info,
	})
}
