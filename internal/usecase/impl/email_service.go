package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsbite/config"
	deliverycontext "newsbite/internal/delivery/context"
	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"
	"newsbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// digestArticleLimit caps how many articles one digest carries.
	digestArticleLimit = 20

	digestDateLayout = "2006-01-02"
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	txManager      repository.TransactionManager
	emailRepo      repository.EmailRepository
	userRepo       repository.UserRepository
	eventPublisher service.EventPublisher
	cfg            *config.Config
	logger         *slog.Logger
}

// EmailServiceParams holds dependencies for EmailService, injected by Fx.
type EmailServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EmailRepo      repository.EmailRepository
	UserRepo       repository.UserRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewEmailService is the constructor for emailService. It receives all dependencies as interfaces.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	return &emailService{
		txManager:      params.TxManager,
		emailRepo:      params.EmailRepo,
		userRepo:       params.UserRepo,
		eventPublisher: params.EventPublisher,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLogs returns one page of email send records matching the filter. Admin only.
func (srv *emailService) ListLogs(ctx context.Context, requesterID uuid.UUID, input *usecase.ListEmailLogsInput) (*usecase.EmailLogListOutput, error) {
	if err := requireAdmin(ctx, srv.userRepo, requesterID); err != nil {
		return nil, err
	}

	var filter repository.EmailLogFilter
	if input.EmailType != "" {
		emailType := entity.EmailType(input.EmailType)
		if !emailType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown email type: " + input.EmailType)
		}
		filter.EmailType = emailType
	}
	if input.Status != "" {
		status := entity.EmailStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown email status: " + input.Status)
		}
		filter.Status = status
	}

	page, pageSize := clampPaging(srv.cfg, input.Page, input.PageSize)
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	logs, total, err := srv.emailRepo.ListLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list email logs")
	}

	outputs := make([]*usecase.EmailLogOutput, 0, len(logs))
	for _, logRecord := range logs {
		outputs = append(outputs, usecase.NewEmailLogOutput(logRecord))
	}

	return &usecase.EmailLogListOutput{
		Logs:     outputs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListDigests returns one page of assembled digests matching the filter. Admin only.
func (srv *emailService) ListDigests(ctx context.Context, requesterID uuid.UUID, input *usecase.ListDigestsInput) (*usecase.DigestListOutput, error) {
	if err := requireAdmin(ctx, srv.userRepo, requesterID); err != nil {
		return nil, err
	}

	var filter repository.DigestFilter
	if input.DigestType != "" {
		digestType := entity.DigestType(input.DigestType)
		if !digestType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown digest type: " + input.DigestType)
		}
		filter.DigestType = digestType
	}

	page, pageSize := clampPaging(srv.cfg, input.Page, input.PageSize)
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	digests, total, err := srv.emailRepo.ListDigests(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list digests")
	}

	outputs := make([]*usecase.DigestOutput, 0, len(digests))
	for _, digest := range digests {
		outputs = append(outputs, usecase.NewDigestOutput(digest))
	}

	return &usecase.DigestListOutput{
		Digests:  outputs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// BuildDigest assembles a digest for the given cadence and date, marks its
// articles published, queues one pending email per subscribed recipient and
// announces the result on the event bus. Admin only.
func (srv *emailService) BuildDigest(ctx context.Context, requesterID uuid.UUID, input *usecase.BuildDigestInput) (*usecase.DigestOutput, error) {
	if err := requireAdmin(ctx, srv.userRepo, requesterID); err != nil {
		return nil, err
	}

	digestType := entity.DigestType(input.DigestType)
	if !digestType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown digest type: " + input.DigestType)
	}

	date := time.Now().UTC()
	if input.Date != "" {
		parsed, err := time.Parse(digestDateLayout, input.Date)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("date must look like " + digestDateLayout)
		}
		date = parsed
	}

	from, to := digestWindow(digestType, date)

	srv.log(ctx).Info("Building digest",
		slog.String("digestType", digestType.String()),
		slog.Time("from", from),
		slog.Time("to", to),
	)

	var digest *entity.EmailDigest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newsRepo := repoFactory.NewNewsRepository()
		userRepo := repoFactory.NewUserRepository()
		emailRepo := repoFactory.NewEmailRepository()

		articles, err := newsRepo.FindDigestArticles(ctx, from, to, digestArticleLimit)
		if err != nil {
			return errors.Wrap(err, "failed to find digest articles")
		}
		if len(articles) == 0 {
			return domainerrors.ErrNotFound.WrapMessage("no digest-ready articles in the covered period")
		}

		recipients, err := userRepo.FindDigestRecipients(ctx, digestType.Frequency())
		if err != nil {
			return errors.Wrap(err, "failed to find digest recipients")
		}

		digest = buildDigestEntity(digestType, from, articles, len(recipients))
		if err := emailRepo.CreateDigest(ctx, digest); err != nil {
			return errors.Wrap(err, "failed to create digest")
		}

		for _, recipient := range recipients {
			digestLog := &entity.EmailLog{
				UserID:         &recipient.ID,
				RecipientEmail: recipient.Email,
				RecipientName:  recipient.FullName,
				EmailType:      digestType.EmailType(),
				Subject:        digest.Title,
				Status:         entity.EmailStatusPending,
			}
			if err := emailRepo.CreateLog(ctx, digestLog); err != nil {
				return errors.Wrap(err, "failed to queue digest email")
			}
		}

		// Included articles count as published from now on.
		for _, article := range articles {
			if article.Status == entity.NewsStatusPublished {
				continue
			}
			article.Status = entity.NewsStatusPublished
			if err := newsRepo.UpdateArticle(ctx, article); err != nil {
				return errors.Wrap(err, "failed to mark article published")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute digest transaction", slog.String("digestType", digestType.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute digest transaction")
	}

	srv.publishDigestBuilt(ctx, digest)

	srv.log(ctx).Info("Digest built",
		slog.Any("digestID", digest.ID),
		slog.Int("articles", digest.TotalArticles),
		slog.Int("recipients", digest.TotalRecipients),
	)

	return usecase.NewDigestOutput(digest), nil
}

// publishDigestBuilt hands the event to the bus. Publishing is fire and
// forget; the digest is already committed.
func (srv *emailService) publishDigestBuilt(ctx context.Context, digest *entity.EmailDigest) {
	event := &service.DigestBuiltEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		DigestID:        digest.ID.String(),
		DigestType:      digest.DigestType.String(),
		TotalRecipients: digest.TotalRecipients,
	}
	if err := srv.eventPublisher.PublishDigestBuilt(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish digest built event", slog.Any("digestID", digest.ID), slog.Any("error", err))
	}
}

// digestWindow returns the half-open interval [from, to) a digest of the
// given cadence covers when asked for on date.
func digestWindow(digestType entity.DigestType, date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch digestType {
	case entity.DigestTypeWeekly:
		// The seven days ending on date.
		return day.AddDate(0, 0, -6), day.AddDate(0, 0, 1)
	case entity.DigestTypeMonthly:
		// The calendar month containing date.
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)

		return first, first.AddDate(0, 1, 0)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

func buildDigestEntity(digestType entity.DigestType, digestDate time.Time, articles []*entity.NewsArticle, totalRecipients int) *entity.EmailDigest {
	articleIDs := make([]uuid.UUID, 0, len(articles))
	categoryStats := make(map[entity.NewsCategory]int, len(articles))
	for _, article := range articles {
		articleIDs = append(articleIDs, article.ID)
		categoryStats[article.Category]++
	}

	return &entity.EmailDigest{
		DigestDate:      digestDate,
		DigestType:      digestType,
		Title:           digestTitle(digestType, digestDate),
		ArticleIDs:      articleIDs,
		TotalArticles:   len(articles),
		TotalRecipients: totalRecipients,
		CategoryStats:   categoryStats,
	}
}

func digestTitle(digestType entity.DigestType, digestDate time.Time) string {
	var cadence string
	switch digestType {
	case entity.DigestTypeWeekly:
		cadence = "Weekly"
	case entity.DigestTypeMonthly:
		cadence = "Monthly"
	default:
		cadence = "Daily"
	}

	return fmt.Sprintf("NewsBite %s Digest - %s", cadence, digestDate.Format(digestDateLayout))
}
