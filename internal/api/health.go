package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the price store being loaded).
type HealthHandler struct {
	storeCheck func() error // Reports nil when the store is built and non-empty
}

// NewHealthHandler constructs a HealthHandler with the provided store check.
//
// Parameters:
//   - storeCheck (func() error): returns nil when the service is ready to
//     answer queries. Typically injected by app.InitializeApp after the
//     store is built.
func NewHealthHandler(storeCheck func() error) *HealthHandler {
	return &HealthHandler{storeCheck: storeCheck}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the store check passes, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the in-memory dataset)
	// @Summary      Readiness probe
	// @Description  Returns ready once the price series store is loaded
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.storeCheck != nil && h.storeCheck() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
