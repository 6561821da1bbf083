package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"codeberg.org/asklavinia/server/internal/errors"
)

// Handler godoc
// @Summary Download the employment agreement
// @Description Serves the agreement PDF for inline display
// @Tags document
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/document [get]
func Handler(agreementPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := os.Stat(agreementPath); err != nil {
			errors.NotFound(c, "agreement document")
			return
		}

		c.Header("Content-Disposition",
			fmt.Sprintf("inline; filename=%q", filepath.Base(agreementPath)))
		c.Header("Content-Type", "application/pdf")
		c.File(agreementPath)
	}
}
