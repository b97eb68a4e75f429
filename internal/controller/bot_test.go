package controller

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct{}

func (stubTransport) Do(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"ok":true,"result":{}}`)),
	}, nil
}

func newTestBot(t *testing.T) *bot.Bot {
	t.Helper()

	opts := append(BotOptions(),
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(time.Second, stubTransport{}),
	)

	b, err := bot.New("123:test", opts...)
	require.NoError(t, err)
	return b
}

func textUpdate(updateID int64, chatID int64, text string) *models.Update {
	return &models.Update{
		ID: updateID,
		Message: &models.Message{
			ID:   int(updateID),
			From: &models.User{ID: chatID},
			Chat: models.Chat{ID: chatID},
			Text: text,
		},
	}
}

// Два быстрых сообщения одного чата должны дообрабатываться в порядке
// поступления: шаги диалога читают и пишут одну и ту же сессию.
func TestSameChatUpdatesCompleteInArrivalOrder(t *testing.T) {
	b := newTestBot(t)

	var mu sync.Mutex
	var completed []string

	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix,
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message.Text == "first" {
				time.Sleep(100 * time.Millisecond)
			}
			mu.Lock()
			completed = append(completed, update.Message.Text)
			mu.Unlock()
		})

	ctx := context.Background()
	b.ProcessUpdate(ctx, textUpdate(1, 1, "first"))
	b.ProcessUpdate(ctx, textUpdate(2, 1, "second"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, completed)
}
