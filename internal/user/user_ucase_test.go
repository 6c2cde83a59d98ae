package user

import (
	"context"
	"errors"
	"testing"

	"github.com/linguamap/linguamap/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.UserModel
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.UserModel)}
}

func (f *fakeUserRepo) FindByCredential(ctx context.Context, post *domain.UserModel) (*domain.UserModel, error) {
	for _, u := range f.users {
		if u.Username == post.Username || u.Email == post.Email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLogin(ctx context.Context, post *domain.UserModel) error {
	f.users[post.ID] = post
	return nil
}

func (f *fakeUserRepo) SaveUser(ctx context.Context, post *domain.UserModel) error {
	post.ID = post.Username
	f.users[post.ID] = post
	return nil
}

func TestSignUp_NewUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	created, err := uc.SignUp(context.Background(), &domain.UserModel{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "hashed",
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
}

func TestSignUp_DuplicatedUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	post := &domain.UserModel{Username: "erin", Email: "erin@example.com", Password: "hashed"}
	if _, err := uc.SignUp(context.Background(), post); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	_, err := uc.SignUp(context.Background(), &domain.UserModel{
		Username: "erin",
		Email:    "other@example.com",
		Password: "hashed",
	})
	if !errors.Is(err, domain.ErrDuplicatedUser) {
		t.Fatalf("expected ErrDuplicatedUser, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	if _, err := uc.SignUp(context.Background(), &domain.UserModel{
		Username: "erin", Email: "erin@example.com", Password: "hashed",
	}); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	ok, err := uc.Exists(context.Background(), &domain.UserModel{Username: "erin"})
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected user to exist")
	}

	ok, err = uc.Exists(context.Background(), &domain.UserModel{Username: "nobody"})
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("expected user to be absent")
	}
}
