package bookings

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"classbook/internal/api"
	"classbook/internal/cache"
	"classbook/internal/database"
	"classbook/internal/handler/classes"
	"classbook/internal/middleware"
	"classbook/internal/model"
	"classbook/internal/store"
	"classbook/internal/worker"

	"github.com/labstack/echo/v4"
)

const defaultLimit = 100

var (
	createBooking       = store.CreateBooking
	listBookingsForUser = store.ListBookingsForUser
)

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// @Summary     Book a class
// @Description 預約課程場次，額滿回 400，場次不存在回 404
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateBookingRequest true "預約資料"
// @Success     201 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/ [post]
func CreateBookingHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok || user.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateBookingRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		booking, err := createBooking(c.Request().Context(), db, user.ID, req.ClassID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "class not found"})
			case errors.Is(err, store.ErrClassFull):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "class is full"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		// booked_count 變動，讓列表快取失效；失敗由 TTL 兜底，記 warning
		logger := c.Logger()
		wp.Submit(func() {
			if err := cch.Incr(context.Background(), classes.ListGenKey).Err(); err != nil {
				logger.Warnf("bump %s: %v", classes.ListGenKey, err)
			}
		})

		return c.JSON(http.StatusCreated, api.BookingResponse{
			ID:        booking.ID,
			UserID:    booking.UserID,
			ClassID:   booking.ClassID,
			CreatedAt: booking.CreatedAt,
		})
	}
}

// @Summary     List my bookings
// @Description 列出目前使用者的預約，依建立時間新到舊
// @Tags        bookings
// @Produce     json
// @Param       skip  query int false "略過筆數" default(0)
// @Param       limit query int false "每頁筆數" default(100)
// @Success     200 {array} api.BookingResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/me [get]
func ListMyBookingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok || user.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		skip := queryInt(c, "skip", 0)
		limit := queryInt(c, "limit", defaultLimit)
		if limit > defaultLimit {
			limit = defaultLimit
		}

		items, err := listBookingsForUser(c.Request().Context(), db, user.ID, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.BookingResponse, 0, len(items))
		for _, b := range items {
			resp = append(resp, api.BookingResponse{
				ID:        b.ID,
				UserID:    b.UserID,
				ClassID:   b.ClassID,
				CreatedAt: b.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
