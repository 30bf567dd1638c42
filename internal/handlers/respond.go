package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// errLog records internal failure detail server-side. The response body
// still carries the detail in its error field, which this surface has
// always done for its callers.
var errLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().
	Timestamp().
	Logger()

// bindErrorMessage renders the first field failure readably instead of the
// validator's full chain.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("field %s failed %s validation", fe.Field(), fe.Tag())
	}
	return err.Error()
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func internalError(c *gin.Context, err error) {
	errLog.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "something went wrong",
		"error":   err.Error(),
	})
}
