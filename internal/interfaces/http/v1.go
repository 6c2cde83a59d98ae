package http

import (
	"github.com/labstack/echo/v4"
)

func v1Endpoint(
	UserHandler *UserHandler,
	CourseHandler *CourseHandler,
	LessonHandler *LessonHandler,
	PathHandler *PathHandler,
	ProgressHandler *ProgressHandler,
	PlayerHandler *PlayerHandler,
	jwtMiddleware echo.MiddlewareFunc,
	refreshMiddleware echo.MiddlewareFunc,
	requestIDMiddleware echo.MiddlewareFunc,
	traceLoggerMiddleware echo.MiddlewareFunc,
) *endpoint {
	return &endpoint{
		apiVersion:  "api/v1",
		middlewares: []echo.MiddlewareFunc{requestIDMiddleware, traceLoggerMiddleware},
		groups: []*apiGroup{
			{
				prefix: "/user",
				routes: []*route{
					{"POST", "/login", UserHandler.HandleSignIn, nil},
					{"PUT", "/sign-out", UserHandler.HandleSignOut, nil},
					{"POST", "/sign-up", UserHandler.HandleSignUp, nil},
					{"GET", "/exists", UserHandler.HandleUserExists, nil},
				},
			},
			{
				prefix: "/course",
				routes: []*route{
					{"GET", "/featured", CourseHandler.HandleGetFeaturedCourses, nil},
					{"GET", "/:id", CourseHandler.HandleGetCourseByID, nil},
					{"GET", "/:id/lessons", CourseHandler.HandleGetCourseLessons, nil},
					{"GET", "/:id/next-lesson", CourseHandler.HandleGetNextLesson,
						[]echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware}},
				},
			},
			{
				prefix: "/lesson",
				routes: []*route{
					{"GET", "/:id", LessonHandler.HandleGetLessonByID, nil},
				},
			},
			{
				prefix: "/path",
				routes: []*route{
					{"GET", "", PathHandler.HandleGetLearningPaths, nil},
					{"GET", "/:id", PathHandler.HandleGetLearningPathDetail, nil},
				},
			},
			{
				prefix:      "/progress",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/course/:id", ProgressHandler.HandleGetCourseProgress, nil},
					{"GET", "/path/:id", ProgressHandler.HandleGetPathProgress, nil},
					{"POST", "/course/:id/completion", ProgressHandler.HandleMarkLessonCompleted, nil},
				},
			},
			{
				prefix:      "/ws",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware},
				routes: []*route{
					{"GET", "/lesson", PlayerHandler.HandleLessonSession, nil},
				},
			},
		},
	}
}
