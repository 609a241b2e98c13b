package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"varlens/adapters/excel"
)

// handleExport streams the season table with derived metrics as an xlsx
// workbook.
func (s *Server) handleExport(c *gin.Context) {
	workbook, err := excel.BuildWorkbook(s.metrics)
	if err != nil {
		log.Printf("[Server] export failed: %v", err)
		c.String(http.StatusInternalServerError, "export failed")
		return
	}
	defer workbook.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="var_season_metrics.xlsx"`)
	if err := workbook.Write(c.Writer); err != nil {
		log.Printf("[Server] export write failed: %v", err)
	}
}
