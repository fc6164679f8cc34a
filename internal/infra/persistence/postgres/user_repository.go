// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"habitar/internal/domain/entity"
	"habitar/internal/domain/repository"
	"habitar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their identity id.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their unique email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user row. The email unique constraint is the
// authoritative duplicate guard; violations surface as ErrDuplicateUser so
// the caller can fall back to an update.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update rewrites the mutable columns of the row keyed by user.ID.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"user_id":          user.UserID,
		"email":            user.Email,
		"name":             user.Name,
		"full_name":        user.FullName,
		"role":             user.Role.String(),
		"status":           user.Status.String(),
		"nif":              user.NIF,
		"contact":          user.Contact,
		"token_identifier": user.TokenIdentifier,
		"updated_at":       time.Now(),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateRole patches only the role column of the row keyed by id.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"role":       role.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateStatus patches only the status column and returns the refreshed row.
func (repo *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update user status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

// ReassignIdentity rewrites the identity columns of the row keyed by email.
// Used when the identity platform re-issued an id for an email that already
// has an application row.
func (repo *userRepository) ReassignIdentity(ctx context.Context, email string, user *entity.User) error {
	updates := map[string]any{
		"id":               user.ID,
		"user_id":          user.UserID,
		"name":             user.Name,
		"full_name":        user.FullName,
		"role":             user.Role.String(),
		"status":           user.Status.String(),
		"nif":              user.NIF,
		"contact":          user.Contact,
		"token_identifier": user.TokenIdentifier,
		"updated_at":       time.Now(),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reassign user identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListUsers returns users matching the filter, newest first.
func (repo *userRepository) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []model.UserModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:              userM.ID,
		UserID:          userM.UserID,
		Email:           userM.Email,
		Name:            userM.Name,
		FullName:        userM.FullName,
		Role:            entity.Role(userM.Role),
		Status:          entity.UserStatus(userM.Status),
		NIF:             userM.NIF,
		Contact:         userM.Contact,
		TokenIdentifier: userM.TokenIdentifier,
		CreatedAt:       userM.CreatedAt,
		UpdatedAt:       userM.UpdatedAt,
	}
}

// fromUserDomain maps a pure domain entity to a GORM persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:              user.ID,
		UserID:          user.UserID,
		Email:           user.Email,
		Name:            user.Name,
		FullName:        user.FullName,
		Role:            user.Role.String(),
		Status:          user.Status.String(),
		NIF:             user.NIF,
		Contact:         user.Contact,
		TokenIdentifier: user.TokenIdentifier,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
