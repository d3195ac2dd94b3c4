package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// respondBindingError translates request-binding failures into the
// per-field error shape the API contract promises.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string]string{}
		for _, fe := range verrs {
			name := toSnake(fe.Field())
			fields[name] = fieldMessage(name, fe)
		}
		respondValidation(c, fields)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondValidation(c, map[string]string{
			typeErr.Field: fmt.Sprintf("%s must be a %s", labelFor(typeErr.Field), typeErr.Type.Kind()),
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func respondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Validation failed",
		"errors": fields,
	})
}

// respondStorageError logs the real error and answers with a message that
// leaks no backend detail.
func respondStorageError(c *gin.Context, err error, msg string) {
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func fieldMessage(name string, fe validator.FieldError) string {
	label := labelFor(name)
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "datetime":
		return "Valid release date is required"
	default:
		return label + " is invalid"
	}
}

func labelFor(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseID reads the :id path parameter. Non-numeric ids match no row, so
// the caller treats a false return as not-found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
