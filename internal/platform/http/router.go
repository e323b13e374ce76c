package http

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dashboard"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dataset"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/export"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/logger"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/observability"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Router wires HTTP handlers.
type Router struct {
	dashboard *dashboard.Service
	log       *logger.Logger
}

func NewRouter(svc *dashboard.Service, log *logger.Logger, allowedOrigins []string) *gin.Engine {
	if log == nil {
		log = logger.NewNop()
	}
	r := &Router{dashboard: svc, log: log}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(log),
		corsMiddleware(allowedOrigins),
		otelgin.Middleware(observability.ServiceName),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/dataset", r.getDataset)
		api.GET("/filters", r.getFilters)
		api.GET("/overview", r.getOverview)
		api.GET("/vulnerable", r.getVulnerable)
		api.GET("/vulnerable/priority/export", r.exportPriority)
		api.GET("/platforms", r.getPlatforms)
		api.GET("/records", r.listRecords)
		api.GET("/records/export", r.exportRecords)
		api.GET("/aggregate/:op", r.aggregate)
	}

	return router
}

// fail maps an error to its HTTP status.
func (r *Router) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, dataset.ErrSourceNotFound):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": dataset.ErrSourceNotFound.Error(), "detail": err.Error()})
	case errors.Is(err, analytics.ErrUnknownField),
		errors.Is(err, dashboard.ErrUnknownOp),
		errors.Is(err, dashboard.ErrBadQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (r *Router) getDataset(c *gin.Context) {
	info, err := r.dashboard.Dataset(c.Request.Context())
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (r *Router) getFilters(c *gin.Context) {
	opts, err := r.dashboard.Options(c.Request.Context())
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (r *Router) getOverview(c *gin.Context) {
	spec, err := filterFromQuery(c)
	if err != nil {
		r.fail(c, err)
		return
	}
	view, err := r.dashboard.Overview(c.Request.Context(), spec)
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) getVulnerable(c *gin.Context) {
	view, err := r.dashboard.Vulnerable(c.Request.Context())
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) getPlatforms(c *gin.Context) {
	view, err := r.dashboard.Platforms(c.Request.Context(), platformsFromQuery(c))
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) listRecords(c *gin.Context) {
	spec, err := filterFromQuery(c)
	if err != nil {
		r.fail(c, err)
		return
	}
	page, pageSize := pagination(c)

	records, datasetTotal, err := r.dashboard.Records(c.Request.Context(), spec)
	if err != nil {
		r.fail(c, err)
		return
	}
	start, end := pageBounds(page, pageSize, len(records))
	c.JSON(http.StatusOK, gin.H{
		"items":        records[start:end],
		"total":        len(records),
		"page":         page,
		"pageSize":     pageSize,
		"datasetTotal": datasetTotal,
	})
}

func (r *Router) exportRecords(c *gin.Context) {
	spec, err := filterFromQuery(c)
	if err != nil {
		r.fail(c, err)
		return
	}
	records, _, err := r.dashboard.Records(c.Request.Context(), spec)
	if err != nil {
		r.fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=students.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(model.AllColumns); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	for _, rec := range records {
		if err := writer.Write(recordRow(rec)); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
	}
}

func (r *Router) exportPriority(c *gin.Context) {
	rows, err := r.dashboard.Priority(c.Request.Context())
	if err != nil {
		r.fail(c, err)
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=prioritas_tinggi.xlsx")
	if err := export.WritePriorityXLSX(c.Writer, rows); err != nil {
		r.log.Error("priority export failed", "error", err)
		c.Status(http.StatusInternalServerError)
	}
}

func (r *Router) aggregate(c *gin.Context) {
	spec, err := filterFromQuery(c)
	if err != nil {
		r.fail(c, err)
		return
	}
	n := 0
	if raw := c.Query("n"); raw != "" {
		if n, err = strconv.Atoi(raw); err != nil || n < 0 {
			r.fail(c, queryError("n", raw))
			return
		}
	}
	result, err := r.dashboard.Aggregate(c.Request.Context(), c.Param("op"), dashboard.AggregateQuery{
		Filter: spec,
		Field:  c.Query("field"),
		By:     c.Query("by"),
		Value:  c.Query("value"),
		Row:    c.Query("row"),
		Col:    c.Query("col"),
		N:      n,
		Order:  c.Query("order"),
	})
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"op": c.Param("op"), "result": result})
}

// filterFromQuery reads the sidebar selection. Absent parameters and the
// "Semua" sentinel leave a dimension unfiltered.
func filterFromQuery(c *gin.Context) (analytics.FilterSpec, error) {
	spec := analytics.FilterSpec{
		Gender:         c.Query("gender"),
		AgeGroup:       c.Query("ageGroup"),
		PlatformType:   c.Query("platform"),
		AddictionLevel: c.Query("addictionLevel"),
		Platforms:      platformsFromQuery(c),
	}
	if raw := c.Query("vulnerableOnly"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return spec, queryError("vulnerableOnly", raw)
		}
		spec.VulnerableOnly = v
	}
	return spec, nil
}

func platformsFromQuery(c *gin.Context) []string {
	values, ok := c.GetQueryArray("platforms")
	if !ok {
		return nil
	}
	return dashboard.ParsePlatforms(values)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// pageBounds returns the slice bounds of page over n items. Pages past the
// end are empty; the offset is never computed when it could overflow.
func pageBounds(page, pageSize, n int) (int, int) {
	if page-1 >= (n+pageSize-1)/pageSize {
		return n, n
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}

func queryError(param, value string) error {
	return &paramError{param: param, value: value}
}

type paramError struct {
	param string
	value string
}

func (e *paramError) Error() string {
	return dashboard.ErrBadQuery.Error() + ": invalid " + e.param + " " + strconv.Quote(e.value)
}

func (e *paramError) Unwrap() error { return dashboard.ErrBadQuery }

func recordRow(r model.StudentRecord) []string {
	highRisk := model.HighRiskNo
	if r.HighRiskAddiction {
		highRisk = model.HighRiskYes
	}
	return []string{
		r.StudentID,
		r.Gender,
		strconv.Itoa(r.Age),
		r.AgeGroup,
		r.Country,
		r.PlatformType,
		formatFloat(r.AvgDailyUsageHours),
		r.UsageDurationCategory,
		formatFloat(r.AddictedScore),
		r.AddictionLevel,
		highRisk,
		formatFloat(r.MentalHealthScore),
		r.MentalHealthDetail,
		formatFloat(r.SleepHoursPerNight),
		r.SleepQualityDetail,
		r.VulnerableGroup,
		r.AcademicImpactLabel,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
