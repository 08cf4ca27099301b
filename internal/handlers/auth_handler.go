package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vibe-Web-Agency/dashboard/internal/config"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
	"github.com/Vibe-Web-Agency/dashboard/internal/resettoken"
	"github.com/Vibe-Web-Agency/dashboard/internal/validators"
)

// AccountStore isole l'accès aux comptes pour le flux d'authentification.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// ResetTokens émet et consomme les jetons de réinitialisation.
type ResetTokens interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

type AuthHandler struct {
	accounts AccountStore
	tokens   ResetTokens
	config   *config.Config

	validateEmail func(string) bool
}

func NewAuthHandler(accounts AccountStore, tokens ResetTokens, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accounts:      accounts,
		tokens:        tokens,
		config:        cfg,
		validateEmail: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

// Signup active une invitation : le compte doit exister côté agence
// (provisionné en base) et ne pas être déjà activé. Pas d'auto-inscription.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.validateEmail(email) {
		httperr.BadRequest(c, "invalid_email_domain",
			"Le domaine de l'e-mail indiqué ne semble pas valide.")
		return
	}

	user, err := h.accounts.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Forbidden(c, "no_invitation",
				"Aucun compte associé à cet e-mail. Contactez votre administrateur.")
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	if user.Activated() {
		httperr.BadRequest(c, "already_activated",
			"Ce compte est déjà activé. Utilisez la connexion.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Une erreur est survenue.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.accounts.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_activate_account", "Une erreur est survenue.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Une erreur est survenue.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  profilePayload(user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.accounts.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Identifiants invalides.")
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	if !user.Activated() {
		httperr.Unauthorized(c, "account_not_activated",
			"Ce compte n'est pas encore activé. Terminez l'inscription.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Identifiants invalides.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Une erreur est survenue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  profilePayload(user),
		"token": token,
	})
}

// ForgotPassword répond toujours 200 : la réponse ne doit pas révéler si
// l'e-mail existe.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.accounts.FindByEmail(c.Request.Context(), email)
	if err == nil && user.Activated() {
		token, err := h.tokens.Issue(c.Request.Context(), user.ID)
		if err != nil {
			log.Printf("reset token issue failed for %s: %v", email, err)
		} else {
			// Le jeton part en clair dans les journaux tant qu'aucun envoi
			// d'e-mail n'est branché. À retirer dès que le transport mail
			// existe : un jeton valide dans les logs donne accès au compte
			// pendant une heure.
			log.Printf("password reset token issued for %s: %s", email, token)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Si un compte existe, un e-mail de réinitialisation a été envoyé.",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	userID, err := h.tokens.Consume(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, resettoken.ErrInvalidToken) {
			httperr.BadRequest(c, "invalid_reset_token",
				"Lien de réinitialisation invalide ou expiré.")
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
		return
	}

	user, err := h.accounts.FindByID(c.Request.Context(), userID)
	if err != nil {
		httperr.BadRequest(c, "invalid_reset_token",
			"Lien de réinitialisation invalide ou expiré.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Une erreur est survenue.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.accounts.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_password", "Une erreur est survenue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Mot de passe mis à jour. Vous pouvez vous connecter.",
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func profilePayload(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"business_name": user.BusinessName,
		"business_type": user.BusinessType,
		"phone":         user.Phone,
		"address":       user.Address,
		"timezone":      user.Timezone,
	}
}
