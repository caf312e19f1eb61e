package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"order-store/internal/service"
	"order-store/internal/store"
	"order-store/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	customers *service.CustomerService
	items     *service.ItemService
	orders    *service.OrderService
	store     *store.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(customers *service.CustomerService, items *service.ItemService, orders *service.OrderService, st *store.Store) *Handler {
	return &Handler{
		customers: customers,
		items:     items,
		orders:    orders,
		store:     st,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/customers", h.createCustomer)
	router.GET("/customers/:id", h.getCustomer)
	router.PUT("/customers/:id", h.updateCustomer)
	router.DELETE("/customers/:id", h.deleteCustomer)

	router.POST("/items", h.createItem)
	router.GET("/items/:id", h.getItem)
	router.PUT("/items/:id", h.updateItem)
	router.DELETE("/items/:id", h.deleteItem)

	router.POST("/orders", h.createOrder)
	router.GET("/orders/:id", h.getOrder)
	router.PUT("/orders/:id", h.updateOrder)
	router.DELETE("/orders/:id", h.deleteOrder)
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck reports ready only when the database is reachable
func (h *Handler) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// createCustomer handles POST /customers
func (h *Handler) createCustomer(c *gin.Context) {
	var req service.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// getCustomer handles GET /customers/:id
func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// updateCustomer handles PUT /customers/:id
func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// deleteCustomer handles DELETE /customers/:id
func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

// createItem handles POST /items
func (h *Handler) createItem(c *gin.Context) {
	var req service.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.items.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// getItem handles GET /items/:id
func (h *Handler) getItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// updateItem handles PUT /items/:id
func (h *Handler) updateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.items.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// deleteItem handles DELETE /items/:id
func (h *Handler) deleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// createOrder handles POST /orders
func (h *Handler) createOrder(c *gin.Context) {
	var req service.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// getOrder handles GET /orders/:id
func (h *Handler) getOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// updateOrder handles PUT /orders/:id
func (h *Handler) updateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orders.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// deleteOrder handles DELETE /orders/:id
func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

// bindJSON binds the request body and writes a 400 response on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}
	return true
}

// idParam parses the :id path parameter, writing a 400 response on failure
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return id, true
}

// respondError maps store sentinel errors to status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not found",
			"details": err.Error(),
		})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Conflict",
			"details": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal error",
			"details": err.Error(),
		})
	}
}

// requestIDMiddleware tags every request with an id, echoed in the response
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-Id", reqID)
		c.Set("request_id", reqID)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
