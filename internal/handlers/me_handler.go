package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vibe-Web-Agency/dashboard/internal/audit"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/middleware"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
	"github.com/Vibe-Web-Agency/dashboard/internal/timezone"
)

type MeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMeHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *MeHandler {
	return &MeHandler{db: db, audit: dispatcher}
}

type UpdateProfileRequest struct {
	BusinessName *string `json:"business_name"`
	BusinessType *string `json:"business_type"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Timezone     *string `json:"timezone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Profil introuvable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profilePayload(&user)})
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Profil introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erreur lors de la lecture du profil.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.BusinessName != nil {
		user.BusinessName = *req.BusinessName
	}
	if req.BusinessType != nil {
		user.BusinessType = *req.BusinessType
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuseau horaire inconnu.")
			return
		}
		user.Timezone = *req.Timezone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erreur lors de l'enregistrement du profil.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OwnerID: userID,
		Action:  "profile_updated",
		Entity:  "user",
	})

	c.JSON(http.StatusOK, gin.H{"user": profilePayload(&user)})
}

// ChangePassword applique les mêmes contrôles que l'écran réglages :
// mot de passe actuel exigé, confirmation identique, nouveau différent.
func (h *MeHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		httperr.BadRequest(c, "password_mismatch",
			"La confirmation ne correspond pas au nouveau mot de passe.")
		return
	}

	if req.NewPassword == req.CurrentPassword {
		httperr.BadRequest(c, "password_unchanged",
			"Le nouveau mot de passe doit être différent de l'actuel.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Profil introuvable.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.CurrentPassword),
	); err != nil {
		httperr.BadRequest(c, "wrong_current_password", "Mot de passe actuel incorrect.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Une erreur est survenue.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Une erreur est survenue.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OwnerID: userID,
		Action:  "password_changed",
		Entity:  "user",
	})

	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe mis à jour."})
}
