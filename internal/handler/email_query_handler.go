package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mailgate/internal/model"
	"mailgate/pkg/metrics"
)

// MailFetcher retrieves the unseen messages of the configured mailbox.
type MailFetcher interface {
	FetchUnseen(ctx context.Context) ([]model.FetchedMessage, error)
}

type EmailQueryHandler struct {
	fetcher MailFetcher
	logger  *zap.Logger
}

func NewEmailQueryHandler(fetcher MailFetcher, logger *zap.Logger) *EmailQueryHandler {
	return &EmailQueryHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetEmails handles GET /emails.
func (h *EmailQueryHandler) GetEmails(c *gin.Context) {
	messages, err := h.fetcher.FetchUnseen(c.Request.Context())
	if err != nil {
		h.logger.Error("email fetch failed", zap.Error(err))
		metrics.IncrementEmailFetched("failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch emails"})
		return
	}

	metrics.IncrementEmailFetched("success")
	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
	})
}
