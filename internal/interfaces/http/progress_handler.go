package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linguamap/linguamap/internal/domain"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
	"github.com/linguamap/linguamap/internal/infrastructure/auth"
	"github.com/linguamap/linguamap/internal/infrastructure/validate"
)

// ProgressHandler user progress operations
type ProgressHandler struct {
	progressUseCase domain.ProgressUseCase
	jwtUtil         *auth.JWTUtil
	validator       validate.Validator
}

func NewProgressHandler(
	ProgressUseCase domain.ProgressUseCase,
	JWTUtil *auth.JWTUtil,
	Validator validate.Validator,
) *ProgressHandler {
	return &ProgressHandler{ProgressUseCase, JWTUtil, Validator}
}

// HandleGetCourseProgress progress record of the authenticated user, null
// when the course was never started
func (ph *ProgressHandler) HandleGetCourseProgress(c echo.Context) (err error) {
	claims := ph.jwtUtil.GetContextToken(c)
	record, err := ph.progressUseCase.GetUserCourseProgress(c.Request().Context(), claims.UID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// HandleGetPathProgress ...
func (ph *ProgressHandler) HandleGetPathProgress(c echo.Context) (err error) {
	claims := ph.jwtUtil.GetContextToken(c)
	record, err := ph.progressUseCase.GetUserPathProgress(c.Request().Context(), claims.UID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

type markLessonCompletedPost struct {
	LessonID string `json:"lesson_id"`
}

// HandleMarkLessonCompleted record a finished lesson for the authenticated
// user, repeated completions are no-ops
func (ph *ProgressHandler) HandleMarkLessonCompleted(c echo.Context) (err error) {
	claims := ph.jwtUtil.GetContextToken(c)
	post := new(markLessonCompletedPost)
	if err = c.Bind(post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			infra.NewRESTStandardError(http.StatusUnprocessableEntity, "Failed to bind completion entity").SetDetail(internal.Error()))
	}
	if err := ph.validator.Empty("lesson_id", post.LessonID); err != nil {
		return c.JSON(http.StatusBadRequest,
			infra.NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	result, err := ph.progressUseCase.MarkLessonCompleted(c.Request().Context(), claims.UID, c.Param("id"), post.LessonID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
