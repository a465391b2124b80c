package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/curbside/internal/report"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

// NewMux assembles every route of the curbside service onto one ServeMux.
func NewMux(cfg types.Config, repo *report.Repository, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/report", Instrument("/report", NewReportEndpoint(repo, logger)))
	mux.Handle("/report/{id}", Instrument("/report/{id}", NewReportDetailEndpoint(repo, cfg.AdminCredentials, logger)))
	mux.Handle("/sign-in", Instrument("/sign-in", NewSignInEndpoint(cfg.AdminCredentials, logger)))
	mux.Handle("/healthz", NewHealthEndpoint(logger))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
