package http

import (
	"net/http"
	"strings"

	"filterbot/internal/infrastructure"
	"filterbot/internal/interfaces"
	"filterbot/internal/repository"
	"filterbot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// Handler exposes the admin API: filter management, dispatch stats and
// transport status.
type Handler struct {
	store     interfaces.FilterStore
	statsRepo *repository.StatsRepository
	telegram  *infrastructure.TelegramClient
	whatsapp  *infrastructure.WhatsAppClient
}

func NewHandler(store interfaces.FilterStore, statsRepo *repository.StatsRepository, telegram *infrastructure.TelegramClient, whatsapp *infrastructure.WhatsAppClient) *Handler {
	return &Handler{
		store:     store,
		statsRepo: statsRepo,
		telegram:  telegram,
		whatsapp:  whatsapp,
	}
}

func SetupRoutes(r *gin.Engine, h *Handler, auth *usecases.AuthUsecase, middleware *Middleware) {
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size
	r.Use(middleware.CORSMiddleware())

	r.POST("/api/auth/login", func(c *gin.Context) {
		var loginReq struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&loginReq); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, err := auth.Login(c.Request.Context(), loginReq.Username, loginReq.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerClient(5, 10))
	{
		api.GET("/status", h.GetStatus)
		api.GET("/conversations/:id/filters", h.ListFilters)
		api.DELETE("/conversations/:id/filters/:keyword", h.DeleteFilter)
		api.GET("/conversations/:id/stats", h.GetTopFilters)
		api.GET("/whatsapp/qr", h.GetWhatsAppQR)
	}
}

// GetStatus reports connected transports.
func (h *Handler) GetStatus(c *gin.Context) {
	status := gin.H{"telegram": false, "whatsapp": false}
	if h.telegram != nil && h.telegram.Bot != nil {
		status["telegram"] = true
		status["bot_name"] = "@" + h.telegram.Bot.Self.UserName
	}
	if h.whatsapp != nil {
		status["whatsapp"] = h.whatsapp.IsLoggedIn()
	}
	c.JSON(http.StatusOK, status)
}

// ListFilters returns all filters saved in a conversation.
func (h *Handler) ListFilters(c *gin.Context) {
	conversationID := c.Param("id")
	if !ValidConversationID(conversationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation id"})
		return
	}

	filters, err := h.store.ScanByConversation(c.Request.Context(), conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list filters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"filters": filters, "count": len(filters)})
}

// DeleteFilter removes one filter by keyword.
func (h *Handler) DeleteFilter(c *gin.Context) {
	conversationID := c.Param("id")
	keyword := strings.ToLower(strings.TrimSpace(c.Param("keyword")))
	if !ValidConversationID(conversationID) || !ValidKeyword(keyword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation id or keyword"})
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), conversationID, keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete filter"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Filter not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "keyword": keyword})
}

// GetTopFilters returns the most-dispatched filters in a conversation.
func (h *Handler) GetTopFilters(c *gin.Context) {
	conversationID := c.Param("id")
	if !ValidConversationID(conversationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation id"})
		return
	}

	hits, err := h.statsRepo.TopFilters(c.Request.Context(), conversationID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top": hits})
}

// GetWhatsAppQR returns the current WhatsApp pairing code as a PNG.
func (h *Handler) GetWhatsAppQR(c *gin.Context) {
	if h.whatsapp == nil {
		c.String(http.StatusServiceUnavailable, "WhatsApp not configured")
		return
	}

	code := h.whatsapp.GetQR()
	if code == "" {
		if h.whatsapp.IsLoggedIn() {
			c.String(http.StatusOK, "Already logged in")
			return
		}
		c.String(http.StatusAccepted, "QR code not yet available. Please wait...")
		return
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
