// Package api composes the rest pipeline and the report repository into
// the HTTP endpoints of the curbside service.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/curbside/internal/report"
	"github.com/mesh-intelligence/curbside/internal/rest"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

// NewReportEndpoint serves POST /report: create a report from multipart
// form input.
func NewReportEndpoint(repo *report.Repository, logger *zap.Logger) http.Handler {
	return rest.NewEndpoint(logger, rest.Post(createReport(repo, logger)))
}

func createReport(repo *report.Repository, logger *zap.Logger) rest.HandlerFunc {
	return func(r *http.Request) (any, rest.Error) {
		newReport, images, restErr := parseNewReport(r)
		if restErr != nil {
			return nil, restErr
		}
		defer r.MultipartForm.RemoveAll()

		rep, err := repo.Create(newReport)
		if err != nil {
			logger.Error("creating report", zap.Error(err))
			return nil, &rest.InternalServerError{Message: "Failed to create Report"}
		}

		logger.Info("report created",
			zap.String("id", rep.ID.String()),
			zap.Int("images_discarded", images))
		return rep, nil
	}
}

// NewReportDetailEndpoint serves GET /report/{id}: retrieval of one stored
// report, restricted to the configured admin credentials.
func NewReportDetailEndpoint(repo *report.Repository, admin *types.LoginCredentials, logger *zap.Logger) http.Handler {
	return rest.NewEndpoint(logger, rest.Get(getReport(repo, admin, logger)))
}

func getReport(repo *report.Repository, admin *types.LoginCredentials, logger *zap.Logger) rest.HandlerFunc {
	return func(r *http.Request) (any, rest.Error) {
		if _, restErr := rest.VerifyCredentials(r, admin); restErr != nil {
			return nil, restErr
		}

		raw := r.PathValue("id")
		id, err := types.ParseReportID(raw)
		if err != nil {
			return nil, &rest.BadRequest{Errors: []string{fmt.Sprintf("Invalid report id %q", raw)}}
		}

		rep, err := repo.GetByID(id)
		switch {
		case errors.Is(err, types.ErrNotFound):
			return nil, &rest.BadRequest{Errors: []string{fmt.Sprintf("Report %q not found", raw)}}
		case err != nil:
			logger.Error("getting report", zap.String("id", raw), zap.Error(err))
			return nil, &rest.InternalServerError{Message: "Failed to get Report"}
		}
		return rep, nil
	}
}
