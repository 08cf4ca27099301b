package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/middleware"
	ucReservation "github.com/Vibe-Web-Agency/dashboard/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC        *ucReservation.CreateReservation
	getUC           *ucReservation.GetReservation
	listUpcomingUC  *ucReservation.ListUpcoming
	calendarMonthUC *ucReservation.CalendarMonth
	historyUC       *ucReservation.History
	setAttendanceUC *ucReservation.SetAttendance
	deleteUC        *ucReservation.DeleteReservation
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	getUC *ucReservation.GetReservation,
	listUpcomingUC *ucReservation.ListUpcoming,
	calendarMonthUC *ucReservation.CalendarMonth,
	historyUC *ucReservation.History,
	setAttendanceUC *ucReservation.SetAttendance,
	deleteUC *ucReservation.DeleteReservation,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:        createUC,
		getUC:           getUC,
		listUpcomingUC:  listUpcomingUC,
		calendarMonthUC: calendarMonthUC,
		historyUC:       historyUC,
		setAttendanceUC: setAttendanceUC,
		deleteUC:        deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Message       string `json:"message"`
}

type SetAttendanceRequest struct {
	Attendance string `json:"attendance" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		OwnerID:       ownerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Time:          req.Time,
		Message:       req.Message,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Date ou heure invalide.")
			return
		}
		if httperr.IsBusiness(err, "missing_customer_name") {
			httperr.BadRequest(c, "missing_customer_name", "Le nom du client est obligatoire.")
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Erreur lors de la création de la réservation.")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ======================================================
// LIST (UPCOMING, GROUPED BY DAY)
// ======================================================

func (h *ReservationHandler) ListUpcoming(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	groups, err := h.listUpcomingUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erreur lors du chargement des réservations.")
		return
	}

	total := 0
	for _, g := range groups {
		total += g.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"groups": groups,
	})
}

// ======================================================
// CALENDAR (MONTH GRID)
// ======================================================

func (h *ReservationHandler) Calendar(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Année et mois obligatoires.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return
	}

	cells, err := h.calendarMonthUC.Execute(c.Request.Context(), ownerID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_build_calendar", "Erreur lors du chargement du calendrier.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"cells": cells,
	})
}

// ======================================================
// HISTORY (ATTENDED / MISSED)
// ======================================================

func (h *ReservationHandler) History(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	history, err := h.historyUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_history", "Erreur lors du chargement de l'historique.")
		return
	}

	c.JSON(http.StatusOK, history)
}

// ======================================================
// DETAIL
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Réservation introuvable.")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// ATTENDANCE
// ======================================================

func (h *ReservationHandler) SetAttendance(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	res, err := h.setAttendanceUC.Execute(c.Request.Context(), ownerID, id, req.Attendance)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_attendance") {
			httperr.BadRequest(c, "invalid_attendance", "Statut de présence inconnu.")
			return
		}
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Réservation introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_update_attendance", "Erreur lors de la mise à jour.")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Réservation introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_delete_reservation", "Erreur lors de la suppression.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
