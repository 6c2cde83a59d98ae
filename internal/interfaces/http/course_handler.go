package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linguamap/linguamap/internal/domain"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
	"github.com/linguamap/linguamap/internal/infrastructure/auth"
	"github.com/linguamap/linguamap/internal/progress"
)

// CourseHandler course catalog operations
type CourseHandler struct {
	courseUseCase   domain.CourseUseCase
	lessonUseCase   domain.LessonUseCase
	progressUseCase domain.ProgressUseCase
	jwtUtil         *auth.JWTUtil
}

func NewCourseHandler(
	CourseUseCase domain.CourseUseCase,
	LessonUseCase domain.LessonUseCase,
	ProgressUseCase domain.ProgressUseCase,
	JWTUtil *auth.JWTUtil,
) *CourseHandler {
	return &CourseHandler{CourseUseCase, LessonUseCase, ProgressUseCase, JWTUtil}
}

// HandleGetFeaturedCourses ...
func (ch *CourseHandler) HandleGetFeaturedCourses(c echo.Context) (err error) {
	courses, err := ch.courseUseCase.GetFeaturedCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// HandleGetCourseByID ...
func (ch *CourseHandler) HandleGetCourseByID(c echo.Context) (err error) {
	id := c.Param("id")
	course, err := ch.courseUseCase.GetCourseByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if course == nil {
		return c.JSON(http.StatusNotFound,
			infra.NewRESTStandardError(http.StatusNotFound, domain.ErrCourseNotFound.Error()))
	}
	return c.JSON(http.StatusOK, course)
}

// HandleGetCourseLessons ordered lessons of one course
func (ch *CourseHandler) HandleGetCourseLessons(c echo.Context) (err error) {
	id := c.Param("id")
	lessons, err := ch.lessonUseCase.GetCourseLessons(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lessons)
}

// HandleGetNextLesson resume point of the authenticated user inside a course
func (ch *CourseHandler) HandleGetNextLesson(c echo.Context) (err error) {
	ctx := c.Request().Context()
	courseID := c.Param("id")
	claims := ch.jwtUtil.GetContextToken(c)

	lessons, err := ch.lessonUseCase.GetCourseLessons(ctx, courseID)
	if err != nil {
		return err
	}
	record, err := ch.progressUseCase.GetUserCourseProgress(ctx, claims.UID, courseID)
	if err != nil {
		return err
	}

	var completed []string
	if record != nil {
		completed = record.CompletedLessons
	}
	return c.JSON(http.StatusOK, progress.ComputeNextLesson(lessons, completed))
}
