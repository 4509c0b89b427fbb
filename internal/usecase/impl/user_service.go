package impl

import (
	"context"
	"log/slog"

	deliverycontext "newsbite/internal/delivery/context"
	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the account identified by userID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return usecase.NewUserOutput(user), nil
}

// UpdateProfile applies the non-nil fields of input to the account.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", userID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		if err := applyProfileUpdate(user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return usecase.NewUserOutput(updatedUser), nil
}

// GetPreferences returns the stored digest preferences, or the defaults when
// the user has never saved any. Defaults are not persisted by reading them.
func (srv *userService) GetPreferences(ctx context.Context, userID uuid.UUID) (*usecase.PreferencesOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to load user for preferences")
	}

	pref := user.Preference
	if pref == nil {
		pref = defaultPreference()
	}

	return usecase.NewPreferencesOutput(pref), nil
}

// UpdatePreferences applies the non-nil fields of input on top of the stored
// (or default) preferences and persists the result.
func (srv *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*usecase.PreferencesOutput, error) {
	srv.log(ctx).Debug("Updating preferences", slog.Any("userID", userID))

	var updatedPref *entity.UserPreference
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to load user for preference update")
		}

		pref := user.Preference
		if pref == nil {
			pref = defaultPreference()
			pref.UserID = user.ID
		}

		if err := applyPreferenceUpdate(pref, input); err != nil {
			return err
		}

		if err := userRepo.SavePreference(ctx, pref); err != nil {
			return errors.Wrap(err, "failed to save preferences")
		}

		updatedPref = pref

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute preference update transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute preference update transaction")
	}

	srv.log(ctx).Debug("Preferences updated", slog.Any("userID", userID))

	return usecase.NewPreferencesOutput(updatedPref), nil
}

// applyProfileUpdate copies the non-nil input fields onto the user.
func applyProfileUpdate(user *entity.User, input *usecase.UpdateProfileInput) error {
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.EmailFrequency != nil {
		frequency := entity.EmailFrequency(*input.EmailFrequency)
		if !frequency.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown email frequency")
		}
		user.EmailFrequency = frequency
	}
	if input.EmailTimeHour != nil {
		if *input.EmailTimeHour < 0 || *input.EmailTimeHour > 23 {
			return domainerrors.ErrValidationFailed.WrapMessage("email time hour must be between 0 and 23")
		}
		user.EmailTimeHour = *input.EmailTimeHour
	}

	return nil
}

// applyPreferenceUpdate copies the non-nil input fields onto the preference.
// A non-nil empty category list clears the selection, meaning all categories.
func applyPreferenceUpdate(pref *entity.UserPreference, input *usecase.UpdatePreferencesInput) error {
	if input.Categories != nil {
		categories := make([]entity.NewsCategory, 0, len(input.Categories))
		for _, raw := range input.Categories {
			category := entity.NewsCategory(raw)
			if !category.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown news category: " + raw)
			}
			categories = append(categories, category)
		}
		pref.PreferredCategories = categories
	}
	if input.SummaryLength != nil {
		length := entity.SummaryLength(*input.SummaryLength)
		if !length.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown summary length")
		}
		pref.SummaryLength = length
	}
	if input.Language != nil {
		pref.Language = *input.Language
	}
	if input.PushNotification != nil {
		pref.PushNotification = *input.PushNotification
	}
	if input.EmailNotification != nil {
		pref.EmailNotification = *input.EmailNotification
	}

	return nil
}
