package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgconn"
	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
	"github.com/linguamap/linguamap/internal/infrastructure/uuid"
)

type UserRepository struct {
	Conn          driver.ITransactionalDB
	UUIDGenerator uuid.Generator
}

var _ domain.UserRepository = &UserRepository{}

func NewUserRepository(Conn driver.ITransactionalDB, UUIDGenerator uuid.Generator) *UserRepository {
	return &UserRepository{Conn, UUIDGenerator}
}

// FindByCredential query user with provided credential
func (repo *UserRepository) FindByCredential(ctx context.Context, post *domain.UserModel) (*domain.UserModel, error) {
	conn := repo.Conn
	username := post.Username
	row, err := conn.QueryContext(ctx, `SELECT id, username, password, email, login_retry, last_login
	FROM app_user WHERE username=$1 OR email=$2`, username, username)
	if err != nil {
		return nil, err
	}
	defer row.Close()

	if row.Next() {
		user := new(domain.UserModel)
		if err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.LoginRetry, &user.LastLogin); err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, nil
}

func (repo *UserRepository) SaveUser(ctx context.Context, post *domain.UserModel) error {
	conn := repo.Conn
	// generate id
	UUIDGenerator := repo.UUIDGenerator
	if uuid, err := UUIDGenerator.Generate(); err == nil {
		post.ID = uuid
	} else {
		return err
	}

	_, err := conn.ExecContext(ctx, `INSERT INTO app_user(id, username, password, email, last_login)
	VALUES($1,$2,$3,$4,$5)`, post.ID, post.Username, post.Password, post.Email, post.LastLogin)

	if isDuplicateKey(err) {
		return domain.ErrDuplicatedUser
	}
	return err
}

func (repo *UserRepository) UpdateLogin(ctx context.Context, post *domain.UserModel) error {
	conn := repo.Conn
	_, err := conn.ExecContext(ctx, `UPDATE app_user
	SET login_retry=$1,
			last_login=$2
	WHERE id = $3;`, post.LoginRetry, post.LastLogin, post.ID)
	return err
}

func (repo *UserRepository) BeginTx(ctx context.Context) (driver.ITransactionalDB, error) {
	return repo.Conn.BeginTx(ctx, &driver.TxOptions{
		Isolation: sql.LevelRepeatableRead,
	})
}

// isDuplicateKey unique constraint violation for either supported driver
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return false
}
