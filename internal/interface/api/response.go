package api

import (
	"errors"
	"net/http"

	"tourcatalog-service/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// resultResponse is the body of every mutation and of every error
type resultResponse struct {
	entity.Result
	Fields []entity.FieldError `json:"fields,omitempty"`
}

// statusFor maps usecase errors to HTTP status codes
func statusFor(err error) int {
	var verr *entity.ValidationError
	var notFound *entity.NotFoundError
	var conflict *entity.ConflictError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondResult writes the discriminated result for id and err
func respondResult(c *gin.Context, id string, err error) {
	body := resultResponse{Result: entity.NewResult(id, err)}
	if err == nil {
		c.JSON(http.StatusOK, body)
		return
	}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}
	c.Error(err)
	c.JSON(statusFor(err), body)
}

// respondError writes a failed result
func respondError(c *gin.Context, err error) {
	respondResult(c, "", err)
}

func badRequest(field, message string) error {
	return &entity.ValidationError{Fields: []entity.FieldError{{Field: field, Message: message}}}
}
