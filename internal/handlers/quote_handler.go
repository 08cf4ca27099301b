package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vibe-Web-Agency/dashboard/internal/audit"
	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/quote"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/httpresp"
	"github.com/Vibe-Web-Agency/dashboard/internal/middleware"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

type QuoteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewQuoteHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *QuoteHandler {
	return &QuoteHandler{db: db, audit: dispatcher}
}

type CreateQuoteRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Message       string `json:"message"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST (MOST RECENT FIRST)
// ======================================================

func (h *QuoteHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	q := h.db.Where("user_id = ?", ownerID)

	if status := c.Query("status"); status != "" {
		if !domain.Status(status).IsValid() {
			httperr.BadRequest(c, "invalid_status", "Statut inconnu.")
			return
		}
		q = q.Where("status = ?", status)
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 100 {
			q = q.Limit(limit)
		}
	}

	var quotes []models.Quote
	if err := q.
		Order("created_at DESC").
		Find(&quotes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_quotes", "Erreur lors du chargement des devis.")
		return
	}

	httpresp.List(c, quotes)
}

// ======================================================
// DETAIL
// ======================================================

func (h *QuoteHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var quote models.Quote
	if err := h.db.
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&quote).Error; err != nil {
		httperr.NotFound(c, "quote_not_found", "Devis introuvable.")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ======================================================
// CREATE
// ======================================================

func (h *QuoteHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	quote := models.Quote{
		UserID:        ownerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
		Status:        string(domain.InitialStatus()),
	}

	if err := h.db.Create(&quote).Error; err != nil {
		httperr.Internal(c, "failed_to_create_quote", "Erreur lors de la création du devis.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "quote_created",
		Entity:   "quote",
		EntityID: &quote.ID,
	})

	c.JSON(http.StatusCreated, quote)
}

// ======================================================
// STATUS
// ======================================================

func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	status, err := domain.Parse(req.Status)
	if err != nil {
		httperr.BadRequest(c, "invalid_status", "Statut inconnu.")
		return
	}

	var quote models.Quote
	if err := h.db.
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&quote).Error; err != nil {
		httperr.NotFound(c, "quote_not_found", "Devis introuvable.")
		return
	}

	// Tout statut est atteignable depuis tout autre, re-poser la même
	// valeur est sans effet observable.
	quote.Status = string(status)

	if err := h.db.Save(&quote).Error; err != nil {
		httperr.Internal(c, "failed_to_update_quote", "Erreur lors de la mise à jour du devis.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "quote_status_set",
		Entity:   "quote",
		EntityID: &quote.ID,
		Metadata: map[string]any{"status": string(status)},
	})

	c.JSON(http.StatusOK, quote)
}

// ======================================================
// DELETE
// ======================================================

func (h *QuoteHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var quote models.Quote
	if err := h.db.
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&quote).Error; err != nil {
		httperr.NotFound(c, "quote_not_found", "Devis introuvable.")
		return
	}

	if err := h.db.Delete(&quote).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_quote", "Erreur lors de la suppression du devis.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "quote_deleted",
		Entity:   "quote",
		EntityID: &quote.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
