package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whoamihappyhacking/tgstat/internal/errors"
	"github.com/whoamihappyhacking/tgstat/internal/model"
)

// openTestStore creates an in-memory store for testing.
func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleAnalysis() *model.ChatAnalysis {
	name := "дім"
	return &model.ChatAnalysis{
		ChatID:        777,
		ChatName:      &name,
		TotalMessages: 3,
		MonthlyStats: []model.MonthlyStat{
			{
				Month:        "2024-01",
				MessageCount: 2,
				PhotoCount:   1,
				Keywords: []model.NameValue{
					{Name: "кохаю", Value: 1},
					{Name: "добраніч", Value: 0},
				},
				TopEmojis: []model.NameValue{{Name: "😀", Value: 2}},
			},
			{
				Month:        "2024-02",
				MessageCount: 1,
				PhotoCount:   0,
				Keywords: []model.NameValue{
					{Name: "кохаю", Value: 0},
					{Name: "добраніч", Value: 1},
				},
			},
		},
	}
}

func TestUpsert_GetRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := sampleAnalysis()
	require.NoError(t, s.Upsert(ctx, want))

	got, err := s.Get(ctx, 777)
	require.NoError(t, err)
	assert.NotEmpty(t, got.LastUpdated, "store owns last_updated")

	got.LastUpdated = ""
	assert.Equal(t, want, got, "ordering of keywords and emojis survives storage")
}

func TestUpsert_ReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := sampleAnalysis()
	require.NoError(t, s.Upsert(ctx, first))

	second := sampleAnalysis()
	second.TotalMessages = 10
	second.MonthlyStats = second.MonthlyStats[:1]
	require.NoError(t, s.Upsert(ctx, second))

	got, err := s.Get(ctx, 777)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TotalMessages)
	assert.Len(t, got.MonthlyStats, 1)
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpsert_NilChatName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := sampleAnalysis()
	a.ChatName = nil
	require.NoError(t, s.Upsert(ctx, a))

	got, err := s.Get(ctx, a.ChatID)
	require.NoError(t, err)
	assert.Nil(t, got.ChatName)
}
