package handler

import "github.com/gin-gonic/gin"

// Routes bundles the handlers and gates mounted under the API prefix.
type Routes struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Hafalan  *HafalanHandler
	Murajaah *MurajaahHandler
	Recap    *RecapHandler
	Report   *ReportHandler
	Metrics  *MetricsHandler

	// RequireTeacher rejects requests without a teacher session.
	RequireTeacher gin.HandlerFunc
	// OptionalTeacher attaches a teacher session when a valid token is present.
	OptionalTeacher gin.HandlerFunc
}

// Register mounts every endpoint on group.
func (r Routes) Register(group *gin.RouterGroup) {
	group.GET("/health", r.Metrics.Health)
	group.GET("/ready", r.Metrics.Ready)
	group.GET("/metrics", r.Metrics.Prometheus)
	group.GET("/metrics/summary", r.Metrics.Summary)

	auth := group.Group("/auth")
	auth.POST("/login", r.Auth.Login)
	auth.POST("/logout", r.RequireTeacher, r.Auth.Logout)

	group.GET("/students", r.Catalog.Students)
	group.GET("/surahs", r.Catalog.Surahs)
	group.GET("/surahs/:name/ayat", r.Catalog.Ayat)
	group.GET("/quotes", r.Catalog.Quotes)
	group.GET("/quotes/random", r.Catalog.RandomQuote)

	students := group.Group("/students/:id")
	students.GET("", r.Catalog.Student)
	students.GET("/hafalan", r.Hafalan.List)
	students.POST("/hafalan", r.RequireTeacher, r.Hafalan.Create)
	students.GET("/murajaah", r.Murajaah.List)
	students.POST("/murajaah", r.OptionalTeacher, r.Murajaah.Create)

	hafalan := group.Group("/hafalan", r.RequireTeacher)
	hafalan.PUT("/:id", r.Hafalan.Update)
	hafalan.DELETE("/:id", r.Hafalan.Delete)

	group.GET("/murajaah", r.Murajaah.ListAll)
	murajaah := group.Group("/murajaah", r.RequireTeacher)
	murajaah.PUT("/:id", r.Murajaah.Update)
	murajaah.DELETE("/:id", r.Murajaah.Delete)

	recap := group.Group("/recap")
	recap.GET("/dashboard", r.Recap.Dashboard)
	recap.GET("/hafalan", r.Recap.Hafalan)
	recap.GET("/murajaah", r.Recap.Murajaah)

	reports := group.Group("/reports")
	reports.GET("/students/:id/hafalan", r.Report.StudentHafalan)
	reports.GET("/students/:id/murajaah", r.Report.StudentMurajaah)
	reports.GET("/hafalan", r.Report.HafalanRecap)
	reports.GET("/murajaah", r.Report.MurajaahCompliance)
}
