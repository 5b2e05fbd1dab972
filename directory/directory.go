//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_user_repository.go -package=mocks
package directory

import (
	"chat-mapper/domain"
	"chat-mapper/errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserRepository is the part of the user mapper the directory relies on.
type UserRepository interface {
	Register(user *domain.User) error
	Delete(user *domain.User) error
	FetchAll() ([]*domain.User, error)
}

// Directory indexes every persisted user by id and by phone number.
type Directory struct {
	users   UserRepository
	byID    map[int64]*domain.User
	byPhone map[string]*domain.User
	log     *slog.Logger
}

type signUpRequest struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Password string `validate:"required,min=8,max=72"`
}

func New(users UserRepository, log *slog.Logger) *Directory {
	return &Directory{
		users:   users,
		byID:    make(map[int64]*domain.User),
		byPhone: make(map[string]*domain.User),
		log:     log,
	}
}

// Warm loads every stored user. It is meant to run once at startup.
func (d *Directory) Warm() error {
	users, err := d.users.FetchAll()
	if err != nil {
		return fmt.Errorf("warm user directory: %w", err)
	}
	for _, u := range users {
		d.index(u)
	}
	d.log.Info("User directory warmed", "users", len(d.byID))
	return nil
}

// SignUp validates the account, enforces phone uniqueness and persists it.
func (d *Directory) SignUp(user *domain.User) error {
	req := signUpRequest{
		Name:     user.Name,
		Phone:    user.Phone,
		Email:    user.Email,
		Password: user.Password,
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidUser, err)
	}
	if _, taken := d.byPhone[user.Phone]; taken {
		return fmt.Errorf("%w: %s", errors.ErrPhoneAlreadyUsed, user.Phone)
	}
	if err := d.users.Register(user); err != nil {
		return err
	}
	d.index(user)
	return nil
}

// Remove deletes the user with everything it owns and drops it from the indexes.
func (d *Directory) Remove(user *domain.User) error {
	if err := d.users.Delete(user); err != nil {
		return err
	}
	delete(d.byID, user.ID())
	delete(d.byPhone, user.Phone)
	return nil
}

func (d *Directory) ByID(id int64) (*domain.User, bool) {
	u, ok := d.byID[id]
	return u, ok
}

func (d *Directory) ByPhone(phone string) (*domain.User, bool) {
	u, ok := d.byPhone[phone]
	return u, ok
}

func (d *Directory) Len() int {
	return len(d.byID)
}

func (d *Directory) index(user *domain.User) {
	d.byID[user.ID()] = user
	d.byPhone[user.Phone] = user
}
