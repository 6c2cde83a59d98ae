package http

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/linguamap/linguamap/internal/domain"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
	"github.com/linguamap/linguamap/internal/infrastructure/auth"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
	"github.com/linguamap/linguamap/internal/infrastructure/validate"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler user related operations
type UserHandler struct {
	JWTUtil        *auth.JWTUtil
	Conn           driver.ITransactionalDB
	UserRepository domain.UserRepository
	KVStore        driver.KeyValueDB
	UserUseCase    domain.UserUseCase
	Validator      validate.Validator
	MaximumRetry   int
	RetryTimeout   time.Duration
}

// NewUserHandler create an user controller instance
func NewUserHandler(
	JWTUtil *auth.JWTUtil,
	Conn driver.ITransactionalDB,
	UserRepository domain.UserRepository,
	KVStore driver.KeyValueDB,
	UserUseCase domain.UserUseCase,
	MaximumRetry int,
	RetryTimeout time.Duration,
	Validator validate.Validator,
) *UserHandler {
	return &UserHandler{
		JWTUtil:        JWTUtil,
		Conn:           Conn,
		UserRepository: UserRepository,
		KVStore:        KVStore,
		UserUseCase:    UserUseCase,
		Validator:      Validator,
		MaximumRetry:   MaximumRetry,
		RetryTimeout:   RetryTimeout,
	}
}

// HandleSignIn ...
func (uh *UserHandler) HandleSignIn(c echo.Context) (err error) {
	ju := uh.JWTUtil
	repo := uh.UserRepository

	post := new(domain.UserModel)
	if err = c.Bind(&post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			infra.NewRESTStandardError(http.StatusUnprocessableEntity, "Failed to bind user entity").SetDetail(internal.Error()))
	}
	post.Email = post.Username

	ctx := c.Request().Context()
	tx, err := uh.Conn.BeginTx(ctx, &driver.TxOptions{
		Isolation: sql.LevelRepeatableRead,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			infra.NewRESTStandardError(http.StatusInternalServerError, "Failed to start the transaction").SetDetail(err.Error()))
	}
	defer tx.Commit(ctx)

	user, err := repo.FindByCredential(ctx, post)
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			infra.NewRESTStandardError(http.StatusInternalServerError, "Failed to execute db query").SetDetail(err.Error()))
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, infra.NewRESTStandardError(http.StatusUnauthorized, domain.ErrNoSuchUser.Error()))
	}
	if user.LoginRetry >= uh.MaximumRetry {
		if time.Since(time.Unix(user.LastLogin, 0)) < uh.RetryTimeout {
			return c.JSON(http.StatusForbidden, infra.NewRESTStandardError(http.StatusForbidden, domain.ErrUserTooManyRetry.Error()))
		}
		// lockout expired
		user.LoginRetry = 0
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(post.Password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			user.LoginRetry++
			user.LastLogin = time.Now().Unix()
			repo.UpdateLogin(ctx, user)
			return c.JSON(http.StatusUnauthorized, infra.NewRESTStandardError(http.StatusUnauthorized, domain.ErrNoSuchUser.Error()))
		}
		return c.JSON(http.StatusInternalServerError,
			infra.NewRESTStandardError(http.StatusInternalServerError, "Failed to process user credential").SetDetail(err.Error()))
	}

	// reset retry number
	user.LoginRetry = 0
	user.LastLogin = time.Now().Unix()
	repo.UpdateLogin(ctx, user)
	// issue JWT
	tokenStr, err := ju.GenerateTokenStr(user)
	if err != nil {
		return err
	}
	ju.SetClientToken(c, tokenStr)
	return nil
}

// HandleSignUp ...
func (uh *UserHandler) HandleSignUp(c echo.Context) (err error) {
	UserUseCase := uh.UserUseCase
	post := new(domain.UserModel)

	if err = c.Bind(&post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			infra.NewRESTStandardError(http.StatusUnprocessableEntity, "Failed to bind user entity").SetDetail(internal.Error()))
	}

	// validation
	if err := uh.Validator.Struct(post); err != nil {
		return c.JSON(http.StatusBadRequest,
			infra.NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	// hash password
	if password, err := bcrypt.GenerateFromPassword([]byte(post.Password), bcrypt.DefaultCost); err == nil {
		post.Password = string(password)
	} else {
		return c.JSON(http.StatusUnprocessableEntity,
			infra.NewRESTStandardError(http.StatusUnprocessableEntity, "Failed to create user").SetDetail(err.Error()))
	}

	// register
	_, err = UserUseCase.SignUp(c.Request().Context(), post)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatedUser) {
			return c.JSON(http.StatusConflict, infra.NewRESTStandardError(http.StatusConflict, err.Error()))
		}
		return err
	}
	return
}

// HandleSignOut blacklist the live token for its remaining lifetime
func (uh *UserHandler) HandleSignOut(c echo.Context) (err error) {
	ju := uh.JWTUtil
	kv := uh.KVStore

	if tokenStr, err := ju.ExtractToken(c); err == nil {
		if token, err := ju.Validate(tokenStr); err == nil {
			ju.ClearClientToken(c)
			return kv.SetEX(tokenStr, "", token.TimeRemaining())
		}
		return c.NoContent(http.StatusUnauthorized)
	}
	return nil
}

// HandleUserExists ...
func (uh *UserHandler) HandleUserExists(c echo.Context) (err error) {
	UserUseCase := uh.UserUseCase
	post := new(domain.UserModel)
	post.Username = c.QueryParam("username")
	post.Email = c.QueryParam("email")

	if err := uh.Validator.AllEmpty([]string{"username", "email"}, post.Username, post.Email); err != nil {
		return c.JSON(http.StatusBadRequest,
			infra.NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{err}))
	}

	existing, err := UserUseCase.Exists(c.Request().Context(), post)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, existing)
}
