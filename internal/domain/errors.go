package domain

import "errors"

// ErrNoSuchUser failed to validate the credential
var ErrNoSuchUser = errors.New("No such user or password is incorrect")

// ErrDuplicatedUser unique key constraint violation
var ErrDuplicatedUser = errors.New("Username or email is already registered")

// ErrUserTooManyRetry login attempts exceeded the configured maximum
var ErrUserTooManyRetry = errors.New("Too many login attempts, account is locked")

// ErrNotAuthenticated a mutation requiring identity was attempted without one
var ErrNotAuthenticated = errors.New("User not authenticated")

// ErrCourseNotFound unknown course id
var ErrCourseNotFound = errors.New("Course not found")

// ErrLessonNotFound unknown lesson id
var ErrLessonNotFound = errors.New("Lesson not found")

// ErrPathNotFound unknown learning path id
var ErrPathNotFound = errors.New("Learning path not found")

// ErrCourseHasNoLessons progress cannot be computed for an empty course
var ErrCourseHasNoLessons = errors.New("Course has no lessons, progress cannot be computed")
