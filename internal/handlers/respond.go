package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/insighthub/event-ingest-service/internal/store"
)

// FieldError describes one violated field in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report JSON field names instead of Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondValidationError renders a binding failure as 422 with one entry per
// violated field. Validation failures never reach the store.
func respondValidationError(c *gin.Context, err error) {
	var fields []FieldError

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var parseErr *time.ParseError

	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: messageForTag(fe)})
		}
	case errors.As(err, &typeErr):
		fields = append(fields, FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
	case errors.As(err, &parseErr):
		// time.Time is the only field decoded through a parser.
		fields = append(fields, FieldError{
			Field:   "event_time",
			Message: "must be an RFC 3339 timestamp with a timezone offset",
		})
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// respondStoreError distinguishes a uniqueness conflict from any other
// persistence fault, which stays opaque to the caller.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrDuplicateOrderID) {
		c.JSON(http.StatusConflict, gin.H{"error": "order_id already exists"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
}
