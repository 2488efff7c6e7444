package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/services"
	"github.com/mechcorp/maintenance-api/utils"
	"go.uber.org/zap"
)

// EquipmentStatusReport handles GET /api/reports/equipment-status and
// returns the report as a PDF attachment.
func EquipmentStatusReport(c *gin.Context) {
	html, err := services.BuildEquipmentStatusHTML(config.GetDB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	sendPDF(c, "equipment-status-report.pdf", html)
}

// WorkOrderSummaryReport handles
// GET /api/reports/work-order-summary?status=&startDate=&endDate=.
// startDate and endDate only filter when both are supplied; the createdAt
// range is inclusive at both boundaries.
func WorkOrderSummaryReport(c *gin.Context) {
	params := services.WorkOrderSummaryParams{Status: c.Query("status")}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate != "" && endDate != "" {
		start, err := utils.ParseReportDate(startDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		end, err := utils.ParseReportDate(endDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		params.StartDate = &start
		params.EndDate = &end
	}

	html, err := services.BuildWorkOrderSummaryHTML(config.GetDB(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	sendPDF(c, "work-order-summary-report.pdf", html)
}

// TechnicianWorkloadReport handles GET /api/reports/technician-workload.
func TechnicianWorkloadReport(c *gin.Context) {
	html, err := services.BuildTechnicianWorkloadHTML(config.GetDB())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	sendPDF(c, "technician-workload-report.pdf", html)
}

// sendPDF rasterizes the document and writes it as an attachment. The
// render runs on a background context: a caller that drops the connection
// does not stop a render already in progress. A failed render produces a
// 500, never a partial PDF.
func sendPDF(c *gin.Context, filename, html string) {
	pdf, err := services.GetPDFRenderer().RenderPDF(context.Background(), html)
	if err != nil {
		config.Logger().Error("report rendering failed", zap.String("report", filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// Archiving is best effort: a failed upload is logged but the caller
	// still gets their report.
	if archive := services.GetReportArchive(); archive != nil {
		if key, err := archive.StoreReport(context.Background(), filename, pdf); err != nil {
			config.Logger().Warn("report archiving failed", zap.String("report", filename), zap.Error(err))
		} else {
			config.Logger().Info("report archived", zap.String("key", key))
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
