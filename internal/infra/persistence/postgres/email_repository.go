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
)

// emailRepository implements the domain repository.EmailRepository interface using GORM.
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository is the constructor for emailRepository.
func NewEmailRepository(db *gorm.DB) repository.EmailRepository {
	return &emailRepository{db: db}
}

// CreateTemplate persists a new email template.
func (repo *emailRepository) CreateTemplate(ctx context.Context, tmpl *entity.EmailTemplate) error {
	tmplM := fromTemplateDomain(tmpl)

	if err := repo.db.WithContext(ctx).Create(tmplM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTemplateAlreadyExists.WrapMessage("template name already used")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required template information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create template")
	}

	tmpl.ID = tmplM.ID
	tmpl.CreatedAt = tmplM.CreatedAt
	tmpl.UpdatedAt = tmplM.UpdatedAt

	return nil
}

// FindTemplateByName retrieves a template by its unique name.
func (repo *emailRepository) FindTemplateByName(ctx context.Context, name string) (*entity.EmailTemplate, error) {
	var tmplM model.EmailTemplateModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tmplM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by name")
	}

	return toTemplateDomain(&tmplM), nil
}

// FindActiveTemplate retrieves the newest active template for an email type
// and language.
func (repo *emailRepository) FindActiveTemplate(ctx context.Context, emailType entity.EmailType, language string) (*entity.EmailTemplate, error) {
	var tmplM model.EmailTemplateModel
	err := repo.db.WithContext(ctx).
		Where("email_type = ? AND language = ? AND is_active = ?", emailType.String(), language, true).
		Order("created_at DESC").
		First(&tmplM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find active template")
	}

	return toTemplateDomain(&tmplM), nil
}

// CreateLog persists a new email send record.
func (repo *emailRepository) CreateLog(ctx context.Context, log *entity.EmailLog) error {
	logM := fromEmailLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("provider message id already recorded")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("recipient user no longer exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required email log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create email log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// UpdateLog modifies an existing email send record.
func (repo *emailRepository) UpdateLog(ctx context.Context, log *entity.EmailLog) error {
	logM := fromEmailLogDomain(log)

	if err := repo.db.WithContext(ctx).Save(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("provider message id already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update email log")
	}

	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// ListLogs retrieves a page of email logs matching the filter, newest first,
// along with the total number of matches.
func (repo *emailRepository) ListLogs(ctx context.Context, filter repository.EmailLogFilter) ([]*entity.EmailLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EmailLogModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.EmailType != "" {
		query = query.Where("email_type = ?", filter.EmailType.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count email logs")
	}

	var logModels []*model.EmailLogModel
	err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&logModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list email logs")
	}

	logs := make([]*entity.EmailLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toEmailLogDomain(logM))
	}

	return logs, total, nil
}

// CreateDigest persists a newly assembled digest.
func (repo *emailRepository) CreateDigest(ctx context.Context, digest *entity.EmailDigest) error {
	digestM := fromDigestDomain(digest)

	if err := repo.db.WithContext(ctx).Create(digestM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required digest information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create digest")
	}

	digest.ID = digestM.ID
	digest.CreatedAt = digestM.CreatedAt
	digest.UpdatedAt = digestM.UpdatedAt

	return nil
}

// FindDigestByID retrieves a digest by its unique ID.
func (repo *emailRepository) FindDigestByID(ctx context.Context, id uuid.UUID) (*entity.EmailDigest, error) {
	var digestM model.EmailDigestModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&digestM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDigestNotFound
		}

		return nil, errors.Wrap(err, "failed to find digest by id")
	}

	return toDigestDomain(&digestM), nil
}

// UpdateDigest modifies an existing digest, e.g. to record send statistics.
func (repo *emailRepository) UpdateDigest(ctx context.Context, digest *entity.EmailDigest) error {
	digestM := fromDigestDomain(digest)

	if err := repo.db.WithContext(ctx).Save(digestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update digest")
	}

	digest.UpdatedAt = digestM.UpdatedAt

	return nil
}

// ListDigests retrieves a page of digests matching the filter, newest digest
// date first, along with the total number of matches.
func (repo *emailRepository) ListDigests(ctx context.Context, filter repository.DigestFilter) ([]*entity.EmailDigest, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EmailDigestModel{})
	if filter.DigestType != "" {
		query = query.Where("digest_type = ?", filter.DigestType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count digests")
	}

	var digestModels []*model.EmailDigestModel
	err := query.
		Order("digest_date DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&digestModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list digests")
	}

	digests := make([]*entity.EmailDigest, 0, len(digestModels))
	for _, digestM := range digestModels {
		digests = append(digests, toDigestDomain(digestM))
	}

	return digests, total, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toTemplateDomain converts a GORM EmailTemplateModel to a domain EmailTemplate entity.
func toTemplateDomain(data *model.EmailTemplateModel) *entity.EmailTemplate {
	if data == nil {
		return nil
	}

	return &entity.EmailTemplate{
		ID:              data.ID,
		Name:            data.Name,
		EmailType:       entity.EmailType(data.EmailType),
		SubjectTemplate: data.SubjectTemplate,
		HTMLTemplate:    data.HTMLTemplate,
		TextTemplate:    data.TextTemplate,
		IsActive:        data.IsActive,
		Version:         data.Version,
		Language:        data.Language,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromTemplateDomain converts a domain EmailTemplate entity to a GORM EmailTemplateModel.
func fromTemplateDomain(data *entity.EmailTemplate) *model.EmailTemplateModel {
	if data == nil {
		return nil
	}

	tmplM := &model.EmailTemplateModel{
		Name:            data.Name,
		EmailType:       data.EmailType.String(),
		SubjectTemplate: data.SubjectTemplate,
		HTMLTemplate:    data.HTMLTemplate,
		TextTemplate:    data.TextTemplate,
		IsActive:        data.IsActive,
		Version:         data.Version,
		Language:        data.Language,
	}
	tmplM.ID = data.ID
	tmplM.CreatedAt = data.CreatedAt
	tmplM.UpdatedAt = data.UpdatedAt

	return tmplM
}

// toEmailLogDomain converts a GORM EmailLogModel to a domain EmailLog entity.
func toEmailLogDomain(data *model.EmailLogModel) *entity.EmailLog {
	if data == nil {
		return nil
	}

	var messageID string
	if data.MessageID != nil {
		messageID = *data.MessageID
	}

	return &entity.EmailLog{
		ID:               data.ID,
		UserID:           data.UserID,
		RecipientEmail:   data.RecipientEmail,
		RecipientName:    data.RecipientName,
		EmailType:        entity.EmailType(data.EmailType),
		Subject:          data.Subject,
		HTMLContent:      data.HTMLContent,
		TextContent:      data.TextContent,
		Status:           entity.EmailStatus(data.Status),
		SentAt:           data.SentAt,
		OpenedAt:         data.OpenedAt,
		ClickedAt:        data.ClickedAt,
		BounceReason:     data.BounceReason,
		MessageID:        messageID,
		ProviderResponse: data.ProviderResponse,
		RetryCount:       data.RetryCount,
		LastError:        data.LastError,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromEmailLogDomain converts a domain EmailLog entity to a GORM EmailLogModel.
func fromEmailLogDomain(data *entity.EmailLog) *model.EmailLogModel {
	if data == nil {
		return nil
	}

	var messageID *string
	if data.MessageID != "" {
		messageID = &data.MessageID
	}

	logM := &model.EmailLogModel{
		UserID:           data.UserID,
		RecipientEmail:   data.RecipientEmail,
		RecipientName:    data.RecipientName,
		EmailType:        data.EmailType.String(),
		Subject:          data.Subject,
		HTMLContent:      data.HTMLContent,
		TextContent:      data.TextContent,
		Status:           data.Status.String(),
		SentAt:           data.SentAt,
		OpenedAt:         data.OpenedAt,
		ClickedAt:        data.ClickedAt,
		BounceReason:     data.BounceReason,
		MessageID:        messageID,
		ProviderResponse: data.ProviderResponse,
		RetryCount:       data.RetryCount,
		LastError:        data.LastError,
	}
	logM.ID = data.ID
	logM.CreatedAt = data.CreatedAt
	logM.UpdatedAt = data.UpdatedAt

	return logM
}

// toDigestDomain converts a GORM EmailDigestModel to a domain EmailDigest entity.
func toDigestDomain(data *model.EmailDigestModel) *entity.EmailDigest {
	if data == nil {
		return nil
	}

	rawStats := data.CategoryStats.Data()
	categoryStats := make(map[entity.NewsCategory]int, len(rawStats))
	for category, count := range rawStats {
		categoryStats[entity.NewsCategory(category)] = count
	}

	return &entity.EmailDigest{
		ID:              data.ID,
		DigestDate:      data.DigestDate,
		DigestType:      entity.DigestType(data.DigestType),
		Title:           data.Title,
		Summary:         data.Summary,
		ArticleIDs:      []uuid.UUID(data.ArticleIDs),
		TotalArticles:   data.TotalArticles,
		TotalRecipients: data.TotalRecipients,
		SentCount:       data.SentCount,
		FailedCount:     data.FailedCount,
		CategoryStats:   categoryStats,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDigestDomain converts a domain EmailDigest entity to a GORM EmailDigestModel.
func fromDigestDomain(data *entity.EmailDigest) *model.EmailDigestModel {
	if data == nil {
		return nil
	}

	categoryStats := make(map[string]int, len(data.CategoryStats))
	for category, count := range data.CategoryStats {
		categoryStats[category.String()] = count
	}

	digestM := &model.EmailDigestModel{
		DigestDate:      data.DigestDate,
		DigestType:      data.DigestType.String(),
		Title:           data.Title,
		Summary:         data.Summary,
		ArticleIDs:      datatypes.JSONSlice[uuid.UUID](data.ArticleIDs),
		TotalArticles:   data.TotalArticles,
		TotalRecipients: data.TotalRecipients,
		SentCount:       data.SentCount,
		FailedCount:     data.FailedCount,
		CategoryStats:   datatypes.NewJSONType(categoryStats),
	}
	digestM.ID = data.ID
	digestM.CreatedAt = data.CreatedAt
	digestM.UpdatedAt = data.UpdatedAt

	return digestM
}
