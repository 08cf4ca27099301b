package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainReservation "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/domain/schedule"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/middleware"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
	"github.com/Vibe-Web-Agency/dashboard/internal/timezone"
)

// QuoteStore couvre les lectures de devis du tableau de bord.
type QuoteStore interface {
	RecentForOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Quote, error)
	CountPendingForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type DashboardHandler struct {
	reservations domainReservation.Repository
	quotes       QuoteStore
}

func NewDashboardHandler(reservations domainReservation.Repository, quotes QuoteStore) *DashboardHandler {
	return &DashboardHandler{
		reservations: reservations,
		quotes:       quotes,
	}
}

// rangeDays traduit la plage du graphique d'accueil.
func rangeDays(raw string) int {
	switch raw {
	case "1month":
		return 30
	case "2months":
		return 60
	default: // "7days"
		return 7
	}
}

// Summary agrège l'écran d'accueil : activité par jour, derniers devis,
// compteurs. Tout est borné au propriétaire.
func (h *DashboardHandler) Summary(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	ctx := c.Request.Context()

	owner, err := h.reservations.GetOwnerByID(ctx, ownerID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Profil introuvable.")
		return
	}

	loc := timezone.Location(owner.Timezone)
	now := timezone.NowIn(owner.Timezone)
	days := rangeDays(c.DefaultQuery("range", "7days"))

	reservations, err := h.reservations.ListReservations(ctx, ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erreur lors du chargement des réservations.")
		return
	}

	recentQuotes, err := h.quotes.RecentForOwner(ctx, ownerID, 3)
	if err != nil {
		httperr.Internal(c, "failed_to_list_quotes", "Erreur lors du chargement des devis.")
		return
	}

	pendingQuotes, err := h.quotes.CountPendingForOwner(ctx, ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_count_quotes", "Erreur lors du chargement des devis.")
		return
	}

	upcoming := 0
	for _, r := range reservations {
		if domainReservation.Attendance(r.Attendance) == domainReservation.AttendanceUnresolved {
			upcoming++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"range":          days,
		"chart":          schedule.CountByDay(reservations, now, days, loc),
		"recent_quotes":  recentQuotes,
		"pending_quotes": pendingQuotes,
		"upcoming":       upcoming,
		"total":          len(reservations),
	})
}
