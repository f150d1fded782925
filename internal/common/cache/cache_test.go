// internal/common/cache/cache_test.go
package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-match/internal/common/config"
	"career-match/internal/common/logger"
	"career-match/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Answers models.Answers `json:"answers"`
	Limit   int            `json:"limit"`
}

func testConfig() config.CacheConfig {
	return config.CacheConfig{Enabled: true, TTL: 60000, KeyPrefix: "test:assessment"}
}

func sampleAssessment() models.Assessment {
	return models.Assessment{
		Status:         models.StatusMatched,
		DatasetVersion: "2024.3",
		Matches: []models.CareerMatch{
			{CareerID: "data_scientist", Name: "Data Scientist", TotalScore: 0.82, Score: 82, Tier: models.TierStrongMatch},
		},
		RadarData: models.RadarData{Categories: []string{"Technical Skills"}, Scores: []float64{0.7}},
		UserProfile: models.UserProfile{
			Domain:  models.DomainMathematical,
			TopTags: []string{"programming"},
		},
		Diagnostics: models.Diagnostics{Unresolved: []models.UnresolvedReference{}, Disqualified: []string{}},
	}
}

func setupMiniredis(t *testing.T) (*AssessmentCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, testConfig(), logger.NewTestLogger(t)), mr
}

func TestAssessmentCache_Key(t *testing.T) {
	c, _ := setupMiniredis(t)

	a := request{Answers: models.Answers{"q1": models.SingleAnswer("a"), "q2": models.ListAnswer("x", "y")}, Limit: 6}
	b := request{Answers: models.Answers{"q2": models.ListAnswer("x", "y"), "q1": models.SingleAnswer("a")}, Limit: 6}
	reordered := request{Answers: models.Answers{"q1": models.SingleAnswer("a"), "q2": models.ListAnswer("y", "x")}, Limit: 6}

	keyA, err := c.Key("2024.3", a)
	require.NoError(t, err)
	keyB, err := c.Key("2024.3", b)
	require.NoError(t, err)
	keyOther, err := c.Key("2024.3", reordered)
	require.NoError(t, err)
	keyNewVersion, err := c.Key("2024.4", a)
	require.NoError(t, err)

	assert.Equal(t, keyA, keyB)
	assert.NotEqual(t, keyA, keyOther, "ranking order is part of the request")
	assert.NotEqual(t, keyA, keyNewVersion)
	assert.Regexp(t, `^test:assessment:2024\.3:[0-9a-f]{64}$`, keyA)
}

func TestAssessmentCache_RoundTrip(t *testing.T) {
	c, mr := setupMiniredis(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "test:assessment:v:missing")
	assert.False(t, ok)

	want := sampleAssessment()
	c.Set(ctx, "test:assessment:v:k", want)

	got, ok := c.Get(ctx, "test:assessment:v:k")
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Minute, mr.TTL("test:assessment:v:k"))

	mr.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, "test:assessment:v:k")
	assert.False(t, ok, "entry should expire after the ttl")
}

func TestAssessmentCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := setupMiniredis(t)
	require.NoError(t, mr.Set("test:assessment:v:bad", "{not json"))

	_, ok := c.Get(context.Background(), "test:assessment:v:bad")
	assert.False(t, ok)
}

func TestAssessmentCache_RedisFailuresFallThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := New(client, testConfig(), logger.NewTestLogger(t))
	ctx := context.Background()

	mock.ExpectGet("k").SetErr(errors.New("connection refused"))
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	mock.Regexp().ExpectSet("k", `.*`, time.Minute).SetErr(errors.New("READONLY"))
	assert.NotPanics(t, func() { c.Set(ctx, "k", sampleAssessment()) })

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, c.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
