package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linguamap/linguamap/internal/domain"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
)

// LessonHandler lesson catalog operations
type LessonHandler struct {
	lessonUseCase domain.LessonUseCase
}

func NewLessonHandler(LessonUseCase domain.LessonUseCase) *LessonHandler {
	return &LessonHandler{LessonUseCase}
}

// HandleGetLessonByID lesson with its full block content
func (lh *LessonHandler) HandleGetLessonByID(c echo.Context) (err error) {
	id := c.Param("id")
	lesson, err := lh.lessonUseCase.GetLessonByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if lesson == nil {
		return c.JSON(http.StatusNotFound,
			infra.NewRESTStandardError(http.StatusNotFound, domain.ErrLessonNotFound.Error()))
	}
	return c.JSON(http.StatusOK, lesson)
}
