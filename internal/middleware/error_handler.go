package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// MapError translates service, engine and database errors into an HTTP
// status and response body. Handlers push errors onto the gin context
// and let ErrorHandler render them, so status mapping lives here.
func MapError(err error) (int, ErrorResponse) {
	var calcErr *landedcost.ValidationError
	if errors.As(err, &calcErr) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error: calcErr.Message,
			Field: calcErr.Field,
		}
	}

	if ve, ok := service.AsFieldError(err); ok {
		status := http.StatusBadRequest
		if ve.Field == "id" {
			status = http.StatusNotFound
		}
		return status, ErrorResponse{Error: ve.Message, Field: ve.Field}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "referenced resource does not exist",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
