package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/handler"
	"github.com/noah-isme/tahfidz-api/internal/middleware"
)

type handlers struct {
	learners    *handler.LearnerHandler
	records     *handler.RecordHandler
	checkpoints *handler.CheckpointHandler
	reports     *handler.SemesterReportHandler
	progress    *handler.ProgressHandler
}

func registerRoutes(api *gin.RouterGroup, h handlers, logger *zap.Logger) {
	write := middleware.RequireActor()
	audit := func(action, resource string) gin.HandlerFunc {
		return middleware.Audit(logger, action, resource)
	}

	learners := api.Group("/learners")
	learners.GET("", h.learners.List)
	learners.POST("", write, audit("create", "learner"), h.learners.Create)
	learners.GET("/:id", h.learners.Get)
	learners.PATCH("/:id/status", write, audit("set_status", "learner"), h.learners.SetStatus)
	learners.GET("/:id/recitations", h.records.ListRecitations)
	learners.GET("/:id/evaluations", h.records.ListEvaluations)
	learners.GET("/:id/attendance", h.records.ListAttendance)
	learners.GET("/:id/attendance/summary", h.records.AttendanceSummary)
	learners.GET("/:id/checkpoints", h.checkpoints.History)
	learners.GET("/:id/checkpoints/eligibility", h.checkpoints.Eligibility)
	learners.GET("/:id/semester-reports", h.reports.ListByLearner)
	learners.GET("/:id/progress", h.progress.Get)

	api.POST("/recitations", write, h.records.CreateRecitation)
	api.POST("/evaluations", write, h.records.CreateEvaluation)
	api.POST("/attendance", write, h.records.RecordAttendance)

	api.POST("/checkpoints", write, audit("record", "checkpoint_exam"), h.checkpoints.Record)
	api.DELETE("/checkpoints/:id", write, audit("delete", "checkpoint_exam"), h.checkpoints.Delete)

	reports := api.Group("/semester-reports")
	reports.POST("", write, audit("generate", "semester_report"), h.reports.Generate)
	reports.POST("/bulk", write, audit("generate_bulk", "semester_report"), h.reports.Bulk)
	reports.POST("/bulk/jobs", write, audit("enqueue_bulk", "semester_report"), h.reports.EnqueueBulk)
	reports.GET("/bulk/jobs/:id", h.reports.BulkStatus)
	reports.GET("/:id", h.reports.Get)
	reports.PATCH("/:id", write, audit("update_narrative", "semester_report"), h.reports.UpdateNarrative)
	reports.POST("/:id/print", write, audit("print", "semester_report"), h.reports.Print)
	reports.DELETE("/:id", write, audit("delete", "semester_report"), h.reports.Delete)
}
