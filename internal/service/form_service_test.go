package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"fitsphere/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Minimal headers are enough for content sniffing.
var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

type formFixture struct {
	svc     FormService
	repo    *fakeFormRepo
	storage *fakeStorage
	logs    *observer.ObservedLogs
}

func newFormFixture() formFixture {
	core, logs := observer.New(zapcore.WarnLevel)
	f := formFixture{repo: &fakeFormRepo{}, storage: newFakeStorage(), logs: logs}
	svc := NewFormService(f.repo, f.storage, zap.New(core)).(*formService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	f.svc = svc
	return f
}

func TestAnalyzeKnownExercises(t *testing.T) {
	cases := []struct {
		exercise string
		score    float64
		status   domain.FormStatus
		first    string
	}{
		{"bench-press", 7.8, domain.FormGood, "Back Position"},
		{"squat", 8.2, domain.FormExcellent, "Knee Alignment"},
		{"deadlift", 8.5, domain.FormExcellent, "Back Alignment"},
		{"overhead-press", 7.6, domain.FormGood, "Core Stability"},
		{"Bicep-Curl", 8.0, domain.FormExcellent, "Form Quality"},
	}
	for _, tc := range cases {
		t.Run(tc.exercise, func(t *testing.T) {
			f := newFormFixture()
			res, err := f.svc.Analyze(context.Background(), primitive.NewObjectID(), tc.exercise, pngDataURL())
			require.NoError(t, err)
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, tc.first, res.Items[0].Aspect)
			assert.Equal(t, strings.ToLower(tc.exercise), res.Exercise)
		})
	}
}

func TestAnalyzeStoresSnapshot(t *testing.T) {
	f := newFormFixture()
	userID := primitive.NewObjectID()

	res, err := f.svc.Analyze(context.Background(), userID, "squat", base64.StdEncoding.EncodeToString(jpegBytes))
	require.NoError(t, err)

	prefix := "form-checks/" + userID.Hex() + "/"
	assert.True(t, strings.HasPrefix(res.SnapshotKey, prefix), res.SnapshotKey)
	assert.True(t, strings.HasSuffix(res.SnapshotKey, ".jpg"), res.SnapshotKey)
	assert.Equal(t, jpegBytes, f.storage.objects[res.SnapshotKey])
	assert.Equal(t, "image/jpeg", f.storage.types[res.SnapshotKey])
	assert.Equal(t, "https://storage.test/"+res.SnapshotKey, res.SnapshotURL)

	require.Len(t, f.repo.analyses, 1)
	assert.Equal(t, res.SnapshotKey, f.repo.analyses[0].SnapshotKey)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), res.CreatedAt)
}

func TestAnalyzeSurvivesUploadFailure(t *testing.T) {
	f := newFormFixture()
	f.storage.putErr = errStore

	res, err := f.svc.Analyze(context.Background(), primitive.NewObjectID(), "deadlift", pngDataURL())
	require.NoError(t, err)
	assert.Empty(t, res.SnapshotKey)
	assert.Empty(t, res.SnapshotURL)
	assert.Equal(t, 1, f.logs.FilterMessage("failed to store form snapshot").Len())
}

func TestAnalyzeSurvivesPresignFailure(t *testing.T) {
	f := newFormFixture()
	f.storage.presignErr = errStore

	res, err := f.svc.Analyze(context.Background(), primitive.NewObjectID(), "deadlift", pngDataURL())
	require.NoError(t, err)
	assert.NotEmpty(t, res.SnapshotKey)
	assert.Empty(t, res.SnapshotURL)
}

func TestAnalyzeDeletesSnapshotWhenStoreFails(t *testing.T) {
	f := newFormFixture()
	f.repo.err = errStore

	_, err := f.svc.Analyze(context.Background(), primitive.NewObjectID(), "squat", pngDataURL())
	require.ErrorIs(t, err, errStore)
	assert.Empty(t, f.storage.objects)
}

func TestAnalyzeWithoutStorage(t *testing.T) {
	repo := &fakeFormRepo{}
	svc := NewFormService(repo, nil, zap.NewNop())

	res, err := svc.Analyze(context.Background(), primitive.NewObjectID(), "squat", pngDataURL())
	require.NoError(t, err)
	assert.Empty(t, res.SnapshotKey)
	assert.Len(t, repo.analyses, 1)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	f := newFormFixture()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := f.svc.Analyze(ctx, userID, "", pngDataURL())
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.Analyze(ctx, userID, "squat", "  ")
	assert.ErrorIs(t, err, ErrValidation)

	for name, image := range map[string]string{
		"not base64":     "!!!",
		"not an image":   base64.StdEncoding.EncodeToString([]byte("hello world, plain text")),
		"data url plain": "data:image/png," + base64.StdEncoding.EncodeToString(pngBytes),
	} {
		_, err = f.svc.Analyze(ctx, userID, "squat", image)
		assert.ErrorIs(t, err, ErrInvalidImage, name)
	}

	big := base64.StdEncoding.EncodeToString(make([]byte, maxSnapshotBytes+1024))
	_, err = f.svc.Analyze(ctx, userID, "squat", big)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, f.repo.analyses)
}

func TestFormHistory(t *testing.T) {
	f := newFormFixture()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	for i := 0; i < recentFormLimit+2; i++ {
		_, err := f.svc.Analyze(ctx, userID, "squat", pngDataURL())
		require.NoError(t, err)
	}
	_, err := f.svc.Analyze(ctx, primitive.NewObjectID(), "squat", pngDataURL())
	require.NoError(t, err)

	history, err := f.svc.History(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, history, recentFormLimit)
	for _, a := range history {
		assert.Equal(t, userID, a.UserID)
	}
}

func TestCheckForExerciseReturnsCopy(t *testing.T) {
	c := checkForExercise("squat")
	c.items[0].Aspect = "changed"
	assert.Equal(t, "Knee Alignment", checkForExercise("squat").items[0].Aspect)
}

func TestScoreStatus(t *testing.T) {
	assert.Equal(t, domain.FormExcellent, scoreStatus(8.0))
	assert.Equal(t, domain.FormGood, scoreStatus(7.0))
	assert.Equal(t, domain.FormGood, scoreStatus(7.99))
	assert.Equal(t, domain.FormNeedsWork, scoreStatus(6.9))
}
