package postgres

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"gorm.io/gorm"
)

type UserStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{
		db: db,
	}
}

// Create is a function that creates a new user in the database.
func (s *UserStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, conflict(err, "user already exists")
	}
	return user, nil
}

// Get is a function that gets a user from the database by id.
func (s *UserStorage) Get(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, "user not found")
	}
	return &user, nil
}

// GetByEmail is a function that gets a user from the database by email.
func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, "no account found for this email")
	}
	return &user, nil
}

// GetAll is a function that gets all users from the database.
func (s *UserStorage) GetAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := s.db.WithContext(ctx).Find(&users).Error
	return users, err
}

// Update is a function that updates a user in the database.
func (s *UserStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Save(&user).Error
	return user, err
}

// Delete removes a user together with their memberships and event
// registrations. Dependent rows go first so foreign keys hold at every
// point of the transaction.
func (s *UserStorage) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.User{}).Error
	})
}
