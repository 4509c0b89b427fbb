// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/errors"
	"newsbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their preferences.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Preference").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading their preferences.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Preference").
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

// FindByGoogleID retrieves a single user by their linked Google account ID.
func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Preference").
		Where("google_id = ?", googleID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including default preferences when set.
// GORM's Create with associations inserts into users and user_preferences
// within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate the generated identifiers and timestamps back to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Preference != nil && userM.Preference != nil {
		user.Preference.ID = userM.Preference.ID
		user.Preference.UserID = userM.Preference.UserID
		user.Preference.CreatedAt = userM.Preference.CreatedAt
		user.Preference.UpdatedAt = userM.Preference.UpdatedAt
	}

	return nil
}

// Update modifies an existing user record. Preferences are saved through
// SavePreference, so associations are deliberately omitted here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindPreferenceByUserID retrieves the personalization settings of a user.
func (repo *userRepository) FindPreferenceByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserPreference, error) {
	var prefM model.UserPreferenceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find user preference")
	}

	return toPreferenceDomain(&prefM), nil
}

// SavePreference creates or replaces the personalization settings of a user.
func (repo *userRepository) SavePreference(ctx context.Context, pref *entity.UserPreference) error {
	prefM := fromPreferenceDomain(pref)

	if err := repo.db.WithContext(ctx).Save(prefM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("preferences already exist for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save user preference")
	}

	pref.ID = prefM.ID
	pref.CreatedAt = prefM.CreatedAt
	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// FindDigestRecipients retrieves all active, verified users subscribed to the
// given delivery frequency, with their preferences preloaded.
func (repo *userRepository) FindDigestRecipients(ctx context.Context, frequency entity.EmailFrequency) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Preference").
		Where("is_active = ? AND is_verified = ? AND email_frequency = ?", true, true, frequency.String()).
		Order("email ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find digest recipients")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var googleID string
	if data.GoogleID != nil {
		googleID = *data.GoogleID
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		FullName:       data.FullName,
		IsActive:       data.IsActive,
		IsVerified:     data.IsVerified,
		Role:           entity.Role(data.Role),
		ProfileImage:   data.ProfileImage,
		Bio:            data.Bio,
		EmailFrequency: entity.EmailFrequency(data.EmailFrequency),
		EmailTimeHour:  data.EmailTimeHour,
		GoogleID:       googleID,
		Preference:     toPreferenceDomain(data.Preference),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var googleID *string
	if data.GoogleID != "" {
		googleID = &data.GoogleID
	}

	userM := &model.UserModel{
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		FullName:       data.FullName,
		IsActive:       data.IsActive,
		IsVerified:     data.IsVerified,
		Role:           data.Role.String(),
		ProfileImage:   data.ProfileImage,
		Bio:            data.Bio,
		EmailFrequency: data.EmailFrequency.String(),
		EmailTimeHour:  data.EmailTimeHour,
		GoogleID:       googleID,
		Preference:     fromPreferenceDomain(data.Preference),
	}
	userM.ID = data.ID
	userM.CreatedAt = data.CreatedAt
	userM.UpdatedAt = data.UpdatedAt

	return userM
}

// toPreferenceDomain converts a GORM UserPreferenceModel to a domain UserPreference entity.
func toPreferenceDomain(data *model.UserPreferenceModel) *entity.UserPreference {
	if data == nil {
		return nil
	}

	categories := make([]entity.NewsCategory, 0, len(data.PreferredCategories))
	for _, c := range data.PreferredCategories {
		categories = append(categories, entity.NewsCategory(c))
	}

	return &entity.UserPreference{
		ID:                  data.ID,
		UserID:              data.UserID,
		PreferredCategories: categories,
		SummaryLength:       entity.SummaryLength(data.SummaryLength),
		Language:            data.Language,
		PushNotification:    data.PushNotification,
		EmailNotification:   data.EmailNotification,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain UserPreference entity to a GORM UserPreferenceModel.
func fromPreferenceDomain(data *entity.UserPreference) *model.UserPreferenceModel {
	if data == nil {
		return nil
	}

	categories := make([]string, 0, len(data.PreferredCategories))
	for _, c := range data.PreferredCategories {
		categories = append(categories, c.String())
	}

	prefM := &model.UserPreferenceModel{
		UserID:              data.UserID,
		PreferredCategories: datatypes.JSONSlice[string](categories),
		SummaryLength:       data.SummaryLength.String(),
		Language:            data.Language,
		PushNotification:    data.PushNotification,
		EmailNotification:   data.EmailNotification,
	}
	prefM.ID = data.ID
	prefM.CreatedAt = data.CreatedAt
	prefM.UpdatedAt = data.UpdatedAt

	return prefM
}
