package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snnyvrz/bookstore/internal/service"
	"github.com/snnyvrz/bookstore/internal/validation"
)

const (
	pgNumericValueOutOfRange    = "22003"
	pgStringDataRightTruncation = "22001"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeServiceError maps a service error to a response. Not-found becomes
// 404 with the domain message; Postgres data errors become 400; anything
// else is reported as a 500 with the given code and message.
func writeServiceError(c *gin.Context, err error, code, message string) {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		writeError(c, http.StatusNotFound,
			"BOOK_NOT_FOUND",
			notFound.Error(),
		)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNumericValueOutOfRange:
			writeError(c, http.StatusBadRequest,
				"INVALID_BOOK_DATA",
				"price is out of range",
			)
			return
		case pgStringDataRightTruncation:
			writeError(c, http.StatusBadRequest,
				"INVALID_BOOK_DATA",
				"value too long",
			)
			return
		}
	}

	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, code, message)
}
