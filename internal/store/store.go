// Package store persists user state, resumes, tracked applications and
// cached match scores, in Redis with an in-memory fallback.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Resume is the parsed resume text kept per user.
type Resume struct {
	Text       string    `json:"text"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Application is one tracked job application.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplicationUpdate carries the mutable fields of an application. Nil fields
// are left unchanged.
type ApplicationUpdate struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// MatchScore is a cached per-user, per-job scoring result.
type MatchScore struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

type Store struct {
	kv     kv
	logger *zap.Logger
	now    func() time.Time
}

func New(backend kv, log *zap.Logger) *Store {
	return &Store{kv: backend, logger: log, now: time.Now}
}

func resumeKey(userID string) string       { return "resume:" + userID }
func applicationsKey(userID string) string { return "applications:" + userID }
func matchScoresKey(userID string) string  { return "matchscores:" + userID }

const jobsKeyPattern = "jobs:*"

func (s *Store) SaveResume(ctx context.Context, userID string, resume Resume) error {
	return s.SetJSON(ctx, resumeKey(userID), resume, 0)
}

func (s *Store) GetResume(ctx context.Context, userID string) (Resume, bool, error) {
	var resume Resume
	found, err := s.GetJSON(ctx, resumeKey(userID), &resume)
	return resume, found, err
}

func (s *Store) DeleteResume(ctx context.Context, userID string) error {
	return s.kv.Del(ctx, resumeKey(userID))
}

// ListApplications returns the user's tracked applications. A user with no
// history gets an empty slice, not an error.
func (s *Store) ListApplications(ctx context.Context, userID string) ([]Application, error) {
	var apps []Application
	if _, err := s.GetJSON(ctx, applicationsKey(userID), &apps); err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []Application{}
	}
	return apps, nil
}

func (s *Store) SaveApplication(ctx context.Context, userID string, app Application) error {
	apps, err := s.ListApplications(ctx, userID)
	if err != nil {
		return err
	}
	apps = append(apps, app)
	return s.SetJSON(ctx, applicationsKey(userID), apps, 0)
}

// UpdateApplication applies the non-nil fields of update to the matching
// application. The second return value reports whether the application exists.
func (s *Store) UpdateApplication(ctx context.Context, userID, appID string, update ApplicationUpdate) (Application, bool, error) {
	apps, err := s.ListApplications(ctx, userID)
	if err != nil {
		return Application{}, false, err
	}

	for i := range apps {
		if apps[i].ID != appID {
			continue
		}
		if update.Status != nil {
			apps[i].Status = *update.Status
		}
		if update.Notes != nil {
			apps[i].Notes = *update.Notes
		}
		apps[i].UpdatedAt = s.now()
		if err := s.SetJSON(ctx, applicationsKey(userID), apps, 0); err != nil {
			return Application{}, false, err
		}
		return apps[i], true, nil
	}

	return Application{}, false, nil
}

func (s *Store) DeleteApplication(ctx context.Context, userID, appID string) error {
	apps, err := s.ListApplications(ctx, userID)
	if err != nil {
		return err
	}

	kept := apps[:0]
	for _, app := range apps {
		if app.ID != appID {
			kept = append(kept, app)
		}
	}
	return s.SetJSON(ctx, applicationsKey(userID), kept, 0)
}

func (s *Store) CacheMatchScore(ctx context.Context, userID, jobID string, score MatchScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("marshaling match score: %w", err)
	}
	return s.kv.HSet(ctx, matchScoresKey(userID), jobID, string(data))
}

func (s *Store) GetMatchScore(ctx context.Context, userID, jobID string) (MatchScore, bool, error) {
	raw, found, err := s.kv.HGet(ctx, matchScoresKey(userID), jobID)
	if err != nil || !found {
		return MatchScore{}, false, err
	}

	var score MatchScore
	if err := json.Unmarshal([]byte(raw), &score); err != nil {
		return MatchScore{}, false, fmt.Errorf("unmarshaling match score: %w", err)
	}
	return score, true, nil
}

func (s *Store) ClearMatchScores(ctx context.Context, userID string) error {
	return s.kv.Del(ctx, matchScoresKey(userID))
}

// GetJSON reads the value at key into dst, reporting whether the key exists.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("unmarshaling %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %q: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(data), ttl)
}

// ClearJobs drops every cached job search result.
func (s *Store) ClearJobs(ctx context.Context) error {
	keys, err := s.kv.Keys(ctx, jobsKeyPattern)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	s.logger.Debug("clearing cached job searches", zap.Int("keys", len(keys)))
	return s.kv.Del(ctx, keys...)
}
