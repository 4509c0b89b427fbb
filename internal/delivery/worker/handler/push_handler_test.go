package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsbite/internal/domain/entity"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"
	mockrepo "newsbite/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestPushHandler(newsRepo repository.NewsRepository) *PushHandler {
	return &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		newsRepo:       newsRepo,
		now:            func() time.Time { return testNow },
	}
}

func newPushRequest(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodePushMessage(t *testing.T, eventType string, payload any) []byte {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	envelope, err := json.Marshal(service.EventEnvelope{Type: eventType, Data: data})
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(envelope)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return body
}

func TestHandlePush_InvalidBody(t *testing.T) {
	h := newTestPushHandler(mockrepo.NewMockNewsRepository(t))
	c, rec := newPushRequest(t, []byte("not json"))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_UndecodableDataIsAcked(t *testing.T) {
	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	h := newTestPushHandler(mockrepo.NewMockNewsRepository(t))
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UnknownEventTypeIsAcked(t *testing.T) {
	body := encodePushMessage(t, "article.deleted", map[string]string{"article_id": "abc"})

	h := newTestPushHandler(mockrepo.NewMockNewsRepository(t))
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_ArticleSummarized_CreatesKeywords(t *testing.T) {
	newsRepo := mockrepo.NewMockNewsRepository(t)
	newsRepo.EXPECT().FindKeywordByText(mock.Anything, "interest rates").
		Return(nil, repository.ErrKeywordNotFound).Once()
	newsRepo.EXPECT().FindKeywordByText(mock.Anything, "inflation").
		Return(nil, repository.ErrKeywordNotFound).Once()

	var saved []*entity.NewsKeyword
	newsRepo.EXPECT().SaveKeyword(mock.Anything, mock.Anything).
		Run(func(_ context.Context, keyword *entity.NewsKeyword) {
			saved = append(saved, keyword)
		}).
		Return(nil).Times(2)

	body := encodePushMessage(t, service.EventArticleSummarized, service.ArticleSummarizedEvent{
		ArticleID: "a-1",
		Category:  entity.NewsCategoryEconomy.String(),
		KeyPoints: []string{"  Interest Rates ", "Inflation", "  "},
	})

	h := newTestPushHandler(newsRepo)
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, saved, 2)
	assert.Equal(t, "interest rates", saved[0].Keyword)
	assert.Equal(t, 1, saved[0].Frequency)
	assert.Equal(t, 1, saved[0].CategoryFrequency[entity.NewsCategoryEconomy])
	assert.InDelta(t, 1.0, saved[0].TrendScore, 1e-9)
	assert.False(t, saved[0].IsTrending)
	assert.Equal(t, testNow, saved[0].LastSeen)
}

func TestHandlePush_ArticleSummarized_ExistingKeywordDecays(t *testing.T) {
	existing := &entity.NewsKeyword{
		Keyword:           "inflation",
		Frequency:         9,
		CategoryFrequency: map[entity.NewsCategory]int{entity.NewsCategoryEconomy: 9},
		TrendScore:        8,
		LastSeen:          testNow.Add(-24 * time.Hour),
	}

	newsRepo := mockrepo.NewMockNewsRepository(t)
	newsRepo.EXPECT().FindKeywordByText(mock.Anything, "inflation").Return(existing, nil).Once()

	var saved *entity.NewsKeyword
	newsRepo.EXPECT().SaveKeyword(mock.Anything, mock.Anything).
		Run(func(_ context.Context, keyword *entity.NewsKeyword) {
			saved = keyword
		}).
		Return(nil).Once()

	body := encodePushMessage(t, service.EventArticleSummarized, service.ArticleSummarizedEvent{
		ArticleID: "a-2",
		Category:  entity.NewsCategoryPolitics.String(),
		KeyPoints: []string{"inflation"},
	})

	h := newTestPushHandler(newsRepo)
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, saved)
	assert.Equal(t, 10, saved.Frequency)
	assert.Equal(t, 9, saved.CategoryFrequency[entity.NewsCategoryEconomy])
	assert.Equal(t, 1, saved.CategoryFrequency[entity.NewsCategoryPolitics])
	// one half-life elapsed: 8 decays to 4, plus 1 for this sighting
	assert.InDelta(t, 5.0, saved.TrendScore, 1e-9)
	assert.True(t, saved.IsTrending)
	assert.Equal(t, testNow, saved.LastSeen)
}

func TestHandlePush_ArticleSummarized_SaveFailureIsRetryable(t *testing.T) {
	newsRepo := mockrepo.NewMockNewsRepository(t)
	newsRepo.EXPECT().FindKeywordByText(mock.Anything, "inflation").
		Return(nil, repository.ErrKeywordNotFound).Once()
	newsRepo.EXPECT().SaveKeyword(mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).Once()

	body := encodePushMessage(t, service.EventArticleSummarized, service.ArticleSummarizedEvent{
		ArticleID: "a-3",
		Category:  entity.NewsCategoryEconomy.String(),
		KeyPoints: []string{"inflation"},
	})

	h := newTestPushHandler(newsRepo)
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_ArticleSummarized_UnknownCategoryIsAcked(t *testing.T) {
	body := encodePushMessage(t, service.EventArticleSummarized, service.ArticleSummarizedEvent{
		ArticleID: "a-4",
		Category:  "weather",
		KeyPoints: []string{"typhoon"},
	})

	h := newTestPushHandler(mockrepo.NewMockNewsRepository(t))
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_DigestBuiltIsAcked(t *testing.T) {
	body := encodePushMessage(t, service.EventDigestBuilt, service.DigestBuiltEvent{
		DigestID:        "d-1",
		DigestType:      "daily",
		TotalRecipients: 12,
	})

	h := newTestPushHandler(mockrepo.NewMockNewsRepository(t))
	c, rec := newPushRequest(t, body)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDecayedScore(t *testing.T) {
	lastSeen := testNow.Add(-48 * time.Hour)
	assert.InDelta(t, 1.0, decayedScore(4, lastSeen, testNow), 1e-9)
	assert.Equal(t, 0.0, decayedScore(0, lastSeen, testNow))
	assert.Equal(t, 3.0, decayedScore(3, time.Time{}, testNow))
}
