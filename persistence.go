package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// validSessionID accepts only the canonical lowercase UUID form.
func validSessionID(sessionID string) bool {
	id, err := uuid.Parse(sessionID)
	return err == nil && id.String() == sessionID
}

// sessionFilePath returns the file for sessionID, rejecting anything that is
// not a UUID so the ID can never escape the session directory.
func (app *App) sessionFilePath(sessionID string) (string, error) {
	if !validSessionID(sessionID) {
		return "", fmt.Errorf("invalid session ID %q", sessionID)
	}
	return filepath.Join(app.Config.SessionDir, sessionID+".json"), nil
}

// saveSessionToFile persists a session to disk. It is a no-op when no
// session directory is configured.
func (app *App) saveSessionToFile(sessionID string, sess Session) error {
	if app.Config.SessionDir == "" {
		return nil
	}
	sessionFile, err := app.sessionFilePath(sessionID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(app.Config.SessionDir, 0755); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sessionID, err)
	}

	tmp := sessionFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write session file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, sessionFile); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session file %s: %w", sessionFile, err)
	}
	return nil
}

// loadSessionFromFile loads a session from disk. Expired, corrupt and
// invalid files are removed and reported as os.ErrNotExist.
func (app *App) loadSessionFromFile(sessionID string) (Session, error) {
	if app.Config.SessionDir == "" {
		return Session{}, os.ErrNotExist
	}
	sessionFile, err := app.sessionFilePath(sessionID)
	if err != nil {
		return Session{}, os.ErrNotExist
	}

	info, err := os.Stat(sessionFile)
	if err != nil {
		return Session{}, err
	}

	fileAge := time.Since(info.ModTime())
	if fileAge > app.Config.SessionTimeout {
		logInfo("Session file is too old (%v, max: %v), removing: %s", fileAge, app.Config.SessionTimeout, sessionFile)
		_ = os.Remove(sessionFile)
		return Session{}, os.ErrNotExist
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logWarn("Failed to unmarshal session file %s (corrupted), removing: %v", sessionFile, err)
		_ = os.Remove(sessionFile)
		return Session{}, os.ErrNotExist
	}

	if err := sess.State.Validate(); err != nil {
		logWarn("Session file %s has invalid state, removing: %v", sessionFile, err)
		_ = os.Remove(sessionFile)
		return Session{}, os.ErrNotExist
	}

	return sess, nil
}

// cleanupOldSessions removes session files older than maxAge and returns how
// many were removed.
func (app *App) cleanupOldSessions(maxAge time.Duration) (int, error) {
	sessionDir := app.Config.SessionDir
	if sessionDir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(sessionDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read sessions directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removedCount := 0
	errorCount := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logWarn("Failed to get info for session file %s: %v", entry.Name(), err)
			errorCount++
			continue
		}

		if info.ModTime().Before(cutoff) {
			sessionFile := filepath.Join(sessionDir, entry.Name())
			if err := os.Remove(sessionFile); err != nil {
				logWarn("Failed to remove old session file %s: %v", sessionFile, err)
				errorCount++
			} else {
				removedCount++
			}
		}
	}

	logInfo("Session cleanup completed: removed %d files, %d errors", removedCount, errorCount)
	return removedCount, nil
}
