package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/repository"
	"fitsphere/backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrInvalidImage = errors.New("image must be a base64 encoded JPEG, PNG or WebP")

const (
	formSnapshotPrefix = "form-checks"
	maxSnapshotBytes   = 5 << 20
	recentFormLimit    = 10
)

var allowedSnapshotTypes = []string{"image/jpeg", "image/png", "image/webp"}

// FormResult is a stored analysis plus a temporary link to its snapshot.
type FormResult struct {
	domain.FormAnalysis
	SnapshotURL string `json:"snapshotUrl,omitempty"`
}

type FormService interface {
	// Analyze grades the submitted snapshot of exercise. A failed snapshot
	// upload does not fail the analysis.
	Analyze(ctx context.Context, userID primitive.ObjectID, exercise, image string) (*FormResult, error)
	History(ctx context.Context, userID primitive.ObjectID) ([]domain.FormAnalysis, error)
}

type formService struct {
	repo        repository.FormAnalysisRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
	now         func() time.Time
}

// NewFormService creates a FormService. fileStorage may be nil, in which
// case snapshots are not kept.
func NewFormService(repo repository.FormAnalysisRepository, fileStorage storage.FileStorage, logger *zap.Logger) FormService {
	return &formService{repo: repo, fileStorage: fileStorage, logger: logger, now: time.Now}
}

func (s *formService) Analyze(ctx context.Context, userID primitive.ObjectID, exercise, image string) (*FormResult, error) {
	exercise = strings.ToLower(strings.TrimSpace(exercise))
	if exercise == "" || strings.TrimSpace(image) == "" {
		return nil, validationError("image and exercise are required")
	}

	data, mime, err := decodeSnapshot(image)
	if err != nil {
		return nil, err
	}

	check := checkForExercise(exercise)
	analysis := &domain.FormAnalysis{
		UserID:    userID,
		Exercise:  exercise,
		Items:     check.items,
		Score:     check.score,
		Status:    scoreStatus(check.score),
		CreatedAt: s.now().UTC(),
	}
	analysis.SnapshotKey = s.storeSnapshot(ctx, userID, data, mime)

	id, err := s.repo.Create(ctx, analysis)
	if err != nil {
		s.discardSnapshot(ctx, analysis.SnapshotKey)
		return nil, fmt.Errorf("store form analysis: %w", err)
	}
	analysis.ID = id

	result := &FormResult{FormAnalysis: *analysis}
	if analysis.SnapshotKey != "" {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, analysis.SnapshotKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			s.logger.Warn("failed to presign snapshot", zap.String("key", analysis.SnapshotKey), zap.Error(err))
		} else {
			result.SnapshotURL = url
		}
	}
	return result, nil
}

// storeSnapshot returns the object key, or "" when the snapshot was not kept.
func (s *formService) storeSnapshot(ctx context.Context, userID primitive.ObjectID, data []byte, mime *mimetype.MIME) string {
	if s.fileStorage == nil {
		return ""
	}
	ext := strings.TrimPrefix(mime.Extension(), ".")
	key := path.Join(formSnapshotPrefix, userID.Hex(), uuid.NewString()+"."+ext)
	if err := s.fileStorage.PutObject(ctx, key, bytes.NewReader(data), int64(len(data)), mime.String()); err != nil {
		s.logger.Warn("failed to store form snapshot", zap.String("userId", userID.Hex()), zap.Error(err))
		return ""
	}
	return key
}

func (s *formService) discardSnapshot(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, key); err != nil {
		s.logger.Warn("failed to delete orphaned snapshot", zap.String("key", key), zap.Error(err))
	}
}

func (s *formService) History(ctx context.Context, userID primitive.ObjectID) ([]domain.FormAnalysis, error) {
	analyses, err := s.repo.ListRecentByUserID(ctx, userID, recentFormLimit)
	if err != nil {
		return nil, fmt.Errorf("list form analyses: %w", err)
	}
	return analyses, nil
}

// decodeSnapshot accepts raw base64 or a data URL and sniffs the content.
// The declared type of a data URL is ignored.
func decodeSnapshot(image string) ([]byte, *mimetype.MIME, error) {
	payload := strings.TrimSpace(image)
	if strings.HasPrefix(payload, "data:") {
		i := strings.Index(payload, ",")
		if i < 0 || !strings.HasSuffix(payload[:i], ";base64") {
			return nil, nil, ErrInvalidImage
		}
		payload = payload[i+1:]
	}
	payload = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, payload)

	if base64.StdEncoding.DecodedLen(len(payload)) > maxSnapshotBytes+3 {
		return nil, nil, validationError("image must not exceed 5 MB")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, nil, ErrInvalidImage
	}

	mime := mimetype.Detect(data)
	for _, allowed := range allowedSnapshotTypes {
		if mime.Is(allowed) {
			return data, mime, nil
		}
	}
	return nil, nil, ErrInvalidImage
}

type formCheck struct {
	items []domain.FormCheckItem
	score float64
}

// Form checks are simulated until pose estimation lands; each known
// exercise has a fixed checklist.
var formChecks = map[string]formCheck{
	"bench-press": {score: 7.8, items: []domain.FormCheckItem{
		{Aspect: "Back Position", Status: domain.FormGood},
		{Aspect: "Elbow Angle", Status: domain.FormNeedsAdjustment},
		{Aspect: "Core Engagement", Status: domain.FormExcellent},
		{Aspect: "Foot Placement", Status: domain.FormGood},
		{Aspect: "Bar Path", Status: domain.FormGood},
	}},
	"squat": {score: 8.2, items: []domain.FormCheckItem{
		{Aspect: "Knee Alignment", Status: domain.FormNeedsAdjustment},
		{Aspect: "Back Straightness", Status: domain.FormGood},
		{Aspect: "Depth", Status: domain.FormExcellent},
		{Aspect: "Foot Position", Status: domain.FormGood},
		{Aspect: "Head Position", Status: domain.FormExcellent},
	}},
	"deadlift": {score: 8.5, items: []domain.FormCheckItem{
		{Aspect: "Back Alignment", Status: domain.FormExcellent},
		{Aspect: "Hip Position", Status: domain.FormGood},
		{Aspect: "Grip Width", Status: domain.FormNeedsAdjustment},
		{Aspect: "Shoulder Position", Status: domain.FormGood},
		{Aspect: "Knee Tracking", Status: domain.FormExcellent},
	}},
	"overhead-press": {score: 7.6, items: []domain.FormCheckItem{
		{Aspect: "Core Stability", Status: domain.FormGood},
		{Aspect: "Wrist Alignment", Status: domain.FormNeedsAdjustment},
		{Aspect: "Shoulder Mobility", Status: domain.FormExcellent},
		{Aspect: "Hip Position", Status: domain.FormGood},
		{Aspect: "Elbow Position", Status: domain.FormGood},
	}},
}

var defaultFormCheck = formCheck{score: 8.0, items: []domain.FormCheckItem{
	{Aspect: "Form Quality", Status: domain.FormGood},
	{Aspect: "Technique", Status: domain.FormExcellent},
	{Aspect: "Safety", Status: domain.FormGood},
}}

// checkForExercise returns a copy so callers cannot modify the table.
func checkForExercise(exercise string) formCheck {
	check, ok := formChecks[exercise]
	if !ok {
		check = defaultFormCheck
	}
	items := make([]domain.FormCheckItem, len(check.items))
	copy(items, check.items)
	return formCheck{items: items, score: check.score}
}

func scoreStatus(score float64) domain.FormStatus {
	switch {
	case score >= 8.0:
		return domain.FormExcellent
	case score >= 7.0:
		return domain.FormGood
	default:
		return domain.FormNeedsWork
	}
}
