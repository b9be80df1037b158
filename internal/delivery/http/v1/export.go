package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks/internal/services"
)

func (h *handlerImpl) HandleExportTasks(c *gin.Context) {
	format := strings.ToLower(c.Query("format"))
	if format == "" {
		format = services.FormatJSON
	}

	data, err := h.export.Export(format)
	if err != nil {
		if errors.Is(err, services.ErrUnknownExportFormat) {
			h.logger.Error().
				Str("format", format).
				Msg("unknown export format")
			abort(c, newBadRequestError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to export tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.Data(http.StatusOK, exportContentType(format), data)
}

func exportContentType(format string) string {
	switch format {
	case services.FormatCSV:
		return "text/csv"
	case services.FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}
