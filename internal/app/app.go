package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/api"
	"github.com/guttosm/cryptopulse/internal/ingestion"
	"github.com/guttosm/cryptopulse/internal/logger"
	"github.com/guttosm/cryptopulse/internal/service"
	"github.com/guttosm/cryptopulse/internal/store"
)

// newLoader is an indirection for creating the startup loader; tests can
// override it to load from memory instead of the filesystem.
var newLoader = func(dir string) ingestion.Loader {
	return ingestion.NewDirectoryLoader(dir)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Loads all per-symbol price files from dir via the startup loader.
//   - Builds the immutable PriceSeriesStore snapshot.
//   - Creates the query service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// The dataset is loaded exactly once; everything after this function is a
// lock-free read over the snapshot.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error (missing data directory, parse
//     failure, empty dataset).
func InitializeApp(ctx context.Context, dir string) (*gin.Engine, func(), error) {
	loader := newLoader(dir)

	records, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load price data: %w", err)
	}

	st := store.Build(records)
	if st.Len() == 0 {
		// All discovered files were empty. Refuse to serve a hollow store.
		return nil, nil, fmt.Errorf("no price series loaded from %s", dir)
	}
	logger.L().Info().
		Int("symbols", st.Len()).
		Strs("loaded", st.Symbols()).
		Msg("price store built")

	// Query service over the immutable snapshot
	svc := service.NewCryptoService(st)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Gin router with routes
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		if st.Len() == 0 {
			return errors.New("price store is empty")
		}
		return nil
	})
	healthHandler.Register(router)

	// No external resources to release; kept for symmetry with callers
	// that expect a shutdown hook.
	cleanup := func() {}

	return router, cleanup, nil
}
