package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/foodcity/feedback-server/config"
	"github.com/foodcity/feedback-server/models"
	"github.com/foodcity/feedback-server/questionnaire"
)

type exportRequest struct {
	Format            string  `json:"format"`
	PlaceSlug         *string `json:"place_slug,omitempty"`
	QuestionnaireType string  `json:"questionnaire_type"`
	FromDate          *string `json:"from_date,omitempty"`
	ToDate            *string `json:"to_date,omitempty"`
}

// CreateExport queues an asynchronous export of filtered feedback.
// POST /api/feedback/export
func CreateExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" && req.Format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Format must be csv or xlsx"})
		return
	}

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:             jobID,
		PlaceSlug:         req.PlaceSlug,
		QuestionnaireType: req.QuestionnaireType,
		FromDate:          req.FromDate,
		ToDate:            req.ToDate,
		Format:            req.Format,
		Status:            "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create export job"})
		return
	}

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GetExport polls a job, streaming the file once done.
// GET /api/exports/:job_id
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch job"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)

	placeSlug := ""
	if job.PlaceSlug != nil {
		placeSlug = *job.PlaceSlug
	}
	fromDate, toDate := "", ""
	if job.FromDate != nil {
		fromDate = *job.FromDate
	}
	if job.ToDate != nil {
		toDate = *job.ToDate
	}

	var feedbacks []models.Feedback
	q := feedbackQuery(placeSlug, job.QuestionnaireType, fromDate, toDate)
	if err := q.Order("created_at ASC").Find(&feedbacks).Error; err != nil {
		failExportJob(&job, err)
		return
	}

	cfg := questionnaire.Get(questionnaire.Type(job.QuestionnaireType))
	header := []string{"id", "created_at", "feedback_date", "questionnaire_type", "place_slug", "place_name"}
	var fieldIDs []string
	for _, s := range cfg.Sections {
		for _, f := range s.Fields {
			fieldIDs = append(fieldIDs, f.ID)
		}
	}
	header = append(header, fieldIDs...)

	rows := make([][]string, 0, len(feedbacks))
	for i := range feedbacks {
		fb := &feedbacks[i]
		row := []string{
			fmt.Sprintf("%d", fb.ID),
			fb.CreatedAt.Format("2006-01-02 15:04:05"),
			fb.FeedbackDate,
			fb.QuestionnaireType,
			derefOr(fb.PlaceSlug, ""),
			derefOr(fb.PlaceName, ""),
		}
		for _, id := range fieldIDs {
			row = append(row, fb.FieldString(id))
		}
		rows = append(rows, row)
	}

	filename := fmt.Sprintf("feedback_%s.%s", job.JobID, job.Format)
	outPath := path.Join(outDir, filename)

	var err error
	if job.Format == "xlsx" {
		err = writeXLSX(outPath, header, rows)
	} else {
		err = writeCSV(outPath, header, rows)
	}
	if err != nil {
		failExportJob(&job, err)
		return
	}

	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": outPath})
}

func writeCSV(outPath string, header []string, rows [][]string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeXLSX(outPath string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(outPath)
}

func failExportJob(job *models.ExportJob, err error) {
	em := err.Error()
	config.DB.Model(job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
