package models

import "time"

// ExportJob tracks one asynchronous feedback export. Filters mirror the stats
// query: optional place slug, questionnaire type and inclusive date range.
type ExportJob struct {
	JobID             string    `gorm:"column:job_id;primaryKey;size:36" json:"job_id"`
	PlaceSlug         *string   `gorm:"column:place_slug;size:32" json:"place_slug,omitempty"`
	QuestionnaireType string    `gorm:"column:questionnaire_type;size:50" json:"questionnaire_type,omitempty"`
	FromDate          *string   `gorm:"column:from_date;size:10" json:"from_date,omitempty"`
	ToDate            *string   `gorm:"column:to_date;size:10" json:"to_date,omitempty"`
	Format            string    `gorm:"column:format;size:10" json:"format"` // csv, xlsx
	Status            string    `gorm:"column:status;size:20;default:'queued'" json:"status"`
	FilePath          *string   `gorm:"column:file_path;type:text" json:"file_path,omitempty"`
	ErrorMsg          *string   `gorm:"column:error_msg;type:text" json:"error_msg,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExportJob) TableName() string {
	return "export_jobs"
}
