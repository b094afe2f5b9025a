package api

import (
	"net/http"

	contractapi "github.com/draftforge/contract-backend/internal/api/contract"
	"github.com/draftforge/contract-backend/internal/api/docs"
	"github.com/draftforge/contract-backend/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	contractHandler *contractapi.Handler,
	generateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)         // Recover from panics
	r.Use(chimiddleware.RequestID)         // Add request ID
	r.Use(middleware.Logger(logger))       // Log requests
	r.Use(middleware.CORS(allowedOrigins)) // Handle CORS
	r.Use(middleware.Metrics)              // Record request metrics

	// Root endpoint with API information
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(rootPage))
	})

	// Health check endpoint
	r.Get("/health", contractHandler.Health)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	contractapi.RegisterRoutes(r, contractHandler, generateLimiter.Middleware)

	return r
}

const rootPage = `<!DOCTYPE html>
<html>
<head>
<title>AI Contract Generator API</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; }
.container { max-width: 800px; margin: 0 auto; }
.endpoint { background: #f5f5f5; padding: 15px; margin: 10px 0; border-radius: 5px; }
.method { font-weight: bold; color: #007bff; }
</style>
</head>
<body>
<div class="container">
<h1>AI Contract Generator API</h1>
<p>This service generates professional legal contracts using AI.</p>

<h2>Available Endpoints:</h2>

<div class="endpoint"><span class="method">GET</span> <code>/health</code> - Health check</div>
<div class="endpoint"><span class="method">GET</span> <code>/api/contract-types</code> - Available contract types</div>
<div class="endpoint"><span class="method">POST</span> <code>/api/generate-contract</code> - Generate contract (streaming + save)</div>
<div class="endpoint"><span class="method">POST</span> <code>/api/generate-contract-full</code> - Retrieve contract by ID</div>
<div class="endpoint"><span class="method">POST</span> <code>/api/download-contract</code> - Download contract by ID</div>
<div class="endpoint"><span class="method">GET</span> <code>/api/contracts</code> - List contracts</div>
<div class="endpoint"><span class="method">GET</span> <code>/api/contracts/stats</code> - Database statistics</div>
<div class="endpoint"><span class="method">DELETE</span> <code>/api/contracts/{id}</code> - Delete contract by ID</div>

<h2>Documentation:</h2>
<ul>
<li><a href="/docs">Interactive API Docs (Swagger UI)</a></li>
</ul>

<p>Send a POST request to <code>/api/generate-contract</code> with your business context to start
generating contracts. The contract is saved on completion and can be retrieved later using the
returned contract ID.</p>
</div>
</body>
</html>
`
