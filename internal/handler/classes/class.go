package classes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"classbook/internal/api"
	"classbook/internal/cache"
	"classbook/internal/database"
	"classbook/internal/model"
	"classbook/internal/store"
	"classbook/internal/worker"

	"github.com/labstack/echo/v4"
)

const (
	// ListGenKey 場次列表快取的世代編號，任何異動遞增即可讓舊頁失效
	ListGenKey   = "classes:gen"
	listCacheTTL = 30 * time.Second

	defaultCapacity = 10
	defaultLimit    = 100
	dateLayout      = "2006-01-02"
)

var (
	createClass = store.CreateClass
	listClasses = store.ListClasses
)

func listCacheKey(gen string, skip, limit int) string {
	return fmt.Sprintf("classes:%s:%d:%d", gen, skip, limit)
}

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

func toClassResponse(cs model.ClassSummary) api.ClassResponse {
	return api.ClassResponse{
		ID:          cs.ID,
		Title:       cs.Title,
		Description: cs.Description,
		Date:        cs.Date.Format(dateLayout),
		StartTime:   cs.StartTime,
		EndTime:     cs.EndTime,
		Capacity:    cs.Capacity,
		BookedCount: cs.BookedCount,
		CreatedAt:   cs.CreatedAt,
	}
}

// @Summary     Create a class session
// @Description 建立課程場次，僅限 instructor 或 admin
// @Tags        classes
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateClassRequest true "場次資料"
// @Success     201 {object} api.ClassResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /classes/ [post]
func CreateClassHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateClassRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid date"})
		}

		capacity := defaultCapacity
		if req.Capacity != nil {
			capacity = *req.Capacity
		}

		created, err := createClass(c.Request().Context(), db, &model.ClassSession{
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    capacity,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		logger := c.Logger()
		wp.Submit(func() {
			// 遞增失敗只會讓舊頁多活到 TTL 截止，記 warning 即可
			if err := cch.Incr(context.Background(), ListGenKey).Err(); err != nil {
				logger.Warnf("bump %s: %v", ListGenKey, err)
			}
		})

		return c.JSON(http.StatusCreated, toClassResponse(model.ClassSummary{ClassSession: *created}))
	}
}

// @Summary     List class sessions
// @Description 依建立時間排序分頁列出場次，含目前已預約人數；短暫快取於 Redis
// @Tags        classes
// @Produce     json
// @Param       skip  query int false "略過筆數" default(0)
// @Param       limit query int false "每頁筆數" default(100)
// @Success     200 {array} api.ClassResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /classes/ [get]
func ListClassesHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		skip := queryInt(c, "skip", 0)
		limit := queryInt(c, "limit", defaultLimit)
		if limit > defaultLimit {
			limit = defaultLimit
		}

		gen := "0"
		if v, err := cch.Get(ctx, ListGenKey).Result(); err == nil {
			gen = v
		}
		key := listCacheKey(gen, skip, limit)
		if data, err := cch.Get(ctx, key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, data)
		}

		items, err := listClasses(ctx, db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ClassResponse, 0, len(items))
		for _, cs := range items {
			resp = append(resp, toClassResponse(cs))
		}

		if data, err := json.Marshal(resp); err == nil {
			cch.Set(ctx, key, data, listCacheTTL)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
