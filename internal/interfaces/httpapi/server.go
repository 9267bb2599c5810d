package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

type RouterOptions struct {
	ServiceName        string
	CORSAllowedOrigins []string
	LoginLimiter       *ClientLimiter
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	serviceName := strings.TrimSpace(opts.ServiceName)
	if serviceName == "" {
		serviceName = "football-tournament"
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler, opts.LoginLimiter)
	registerAdminRoutes(mux, handler, verifier)

	return RequestTracing(serviceName, RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}
