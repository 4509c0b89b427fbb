package handler

import (
	"net/http"
	"strconv"

	"newsbite/internal/delivery/http/middleware"
	"newsbite/internal/delivery/http/response"
	"newsbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsHandler holds dependencies for article browsing and content management.
type NewsHandler struct {
	uc usecase.NewsUsecase
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// ListArticles returns one page of articles matching the query filters.
func (h *NewsHandler) ListArticles(c echo.Context) error {
	var input usecase.ListArticlesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid listing query")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListArticles(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	meta := response.NewMeta(output.Page, output.PageSize, output.Total)

	return response.Paginated(c, output.Articles, meta, "Articles retrieved successfully")
}

// GetTrendingKeywords returns the current trending keywords.
func (h *NewsHandler) GetTrendingKeywords(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be an integer")
		}
		limit = parsed
	}

	output, err := h.uc.GetTrendingKeywords(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Trending keywords retrieved successfully")
}

// GetArticle returns one article's detail view.
func (h *NewsHandler) GetArticle(c echo.Context) error {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid article ID")
	}

	output, err := h.uc.GetArticle(c.Request().Context(), articleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Article retrieved successfully")
}

// IngestArticle stores a crawled article. Admin only.
func (h *NewsHandler) IngestArticle(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	var input usecase.IngestArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid article input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.IngestArticle(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Article ingested successfully")
}

// AttachSummary stores a generated summary for an article. Admin only.
func (h *NewsHandler) AttachSummary(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid article ID")
	}

	var input usecase.AttachSummaryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid summary input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AttachSummary(c.Request().Context(), userID, articleID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Summary attached successfully")
}

// PresignThumbnailUpload hands out a presigned upload slot for an article
// thumbnail. Admin only.
func (h *NewsHandler) PresignThumbnailUpload(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid article ID")
	}

	var input usecase.PresignThumbnailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid thumbnail input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PresignThumbnailUpload(c.Request().Context(), userID, articleID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Thumbnail upload URL issued")
}
