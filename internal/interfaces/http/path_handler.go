package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linguamap/linguamap/internal/domain"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
)

// PathHandler learning path catalog operations
type PathHandler struct {
	pathUseCase domain.LearningPathUseCase
}

func NewPathHandler(PathUseCase domain.LearningPathUseCase) *PathHandler {
	return &PathHandler{PathUseCase}
}

// HandleGetLearningPaths ...
func (ph *PathHandler) HandleGetLearningPaths(c echo.Context) (err error) {
	paths, err := ph.pathUseCase.GetLearningPaths(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paths)
}

// HandleGetLearningPathDetail path plus its courses in path order
func (ph *PathHandler) HandleGetLearningPathDetail(c echo.Context) (err error) {
	id := c.Param("id")
	detail, err := ph.pathUseCase.GetLearningPathDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if detail == nil {
		return c.JSON(http.StatusNotFound,
			infra.NewRESTStandardError(http.StatusNotFound, domain.ErrPathNotFound.Error()))
	}
	return c.JSON(http.StatusOK, detail)
}
