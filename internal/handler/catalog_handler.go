package handler

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/dto"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/response"
)

// CatalogHandler serves the compiled-in roster, chapter catalog and quotes.
type CatalogHandler struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewCatalogHandler constructs the handler. A nil source seeds from the clock.
func NewCatalogHandler(source rand.Source) *CatalogHandler {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &CatalogHandler{rand: rand.New(source)}
}

// Students godoc
// @Summary List the class roster
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *CatalogHandler) Students(c *gin.Context) {
	roster := models.Roster()
	out := make([]dto.StudentResponse, 0, len(roster))
	for _, student := range roster {
		out = append(out, dto.NewStudentResponse(student))
	}
	response.JSON(c, http.StatusOK, out)
}

// Student godoc
// @Summary Get a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *CatalogHandler) Student(c *gin.Context) {
	student, ok := models.FindStudent(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Siswa tidak ditemukan"))
		return
	}
	response.JSON(c, http.StatusOK, dto.NewStudentResponse(student))
}

// Surahs godoc
// @Summary List chapters
// @Description With studentId only the chapters of that student's track are returned
// @Tags Surahs
// @Produce json
// @Param studentId query string false "Student ID"
// @Success 200 {object} response.Envelope
// @Router /surahs [get]
func (h *CatalogHandler) Surahs(c *gin.Context) {
	catalog := models.SurahCatalog()
	studentID := strings.TrimSpace(c.Query("studentId"))
	if studentID == "" {
		response.JSON(c, http.StatusOK, catalog)
		return
	}
	student, ok := models.FindStudent(studentID)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Siswa tidak ditemukan"))
		return
	}
	out := make([]models.SurahInfo, 0, len(catalog))
	for _, surah := range catalog {
		if models.InCurriculum(student, surah.Name) {
			out = append(out, surah)
		}
	}
	response.JSON(c, http.StatusOK, out)
}

// Ayat godoc
// @Summary List selectable verse numbers of a chapter
// @Tags Surahs
// @Produce json
// @Param name path string true "Surah name"
// @Success 200 {object} response.Envelope
// @Router /surahs/{name}/ayat [get]
func (h *CatalogHandler) Ayat(c *gin.Context) {
	name := c.Param("name")
	response.JSON(c, http.StatusOK, dto.AyatOptionsResponse{Surah: name, Options: models.AyatOptions(name)})
}

// Quotes godoc
// @Summary List motivational quotes
// @Tags Quotes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /quotes [get]
func (h *CatalogHandler) Quotes(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.Quotes())
}

// RandomQuote godoc
// @Summary Pick one motivational quote
// @Tags Quotes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /quotes/random [get]
func (h *CatalogHandler) RandomQuote(c *gin.Context) {
	h.mu.Lock()
	quote := models.RandomQuote(h.rand)
	h.mu.Unlock()
	response.JSON(c, http.StatusOK, quote)
}
