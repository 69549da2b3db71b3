package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiko146/my-online-shop/models"
)

// ErrDuplicateAccount is returned when a signup collides with an
// existing username or email.
var ErrDuplicateAccount = errors.New("username or email already exists")

// Users wraps the user table behind named, parameterized queries.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// FindByEmail returns the user with the given email, or nil if none exists.
func (s *Users) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail returns a user matching either field, or nil.
// Signup uses it as the duplicate pre-check.
func (s *Users) FindByUsernameOrEmail(username, email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert persists a new user. The unique indexes on username and email
// back up the signup pre-check: if a concurrent signup won the race the
// insert fails and is reported as ErrDuplicateAccount.
func (s *Users) Insert(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

// Count reports how many users exist.
func (s *Users) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
