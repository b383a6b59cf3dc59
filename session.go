package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wordsearch/internal/state"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !validSessionID(sessionID) {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.Config.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.Config.CookieMaxAge.Seconds()), "/", "", secure, true)
		requestLogger(c.Request.Context()).Infof("Created new session: %s", sessionID)
	}
	return sessionID
}

// getSearchState returns the session's state, reloading it from disk or
// starting fresh when it is not in memory.
func (app *App) getSearchState(ctx context.Context, sessionID string) state.SearchState {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	return app.loadSearchStateLocked(ctx, sessionID)
}

// loadSearchStateLocked must be called with SessionMutex held.
func (app *App) loadSearchStateLocked(ctx context.Context, sessionID string) state.SearchState {
	log := requestLogger(ctx)
	if sess, ok := app.Sessions[sessionID]; ok {
		sess.LastAccessTime = time.Now()
		app.Sessions[sessionID] = sess
		return sess.State
	}

	if sess, err := app.loadSessionFromFile(sessionID); err == nil {
		sess.LastAccessTime = time.Now()
		app.Sessions[sessionID] = sess
		log.Infof("Restored session %s from disk (%d words, %d criteria)", sessionID, len(sess.State.Words), len(sess.State.Criteria))
		return sess.State
	}

	log.Infof("Starting new search state for session: %s", sessionID)
	s := state.New()
	app.Sessions[sessionID] = Session{State: s, LastAccessTime: time.Now()}
	return s
}

// updateSearchState applies transition to the session's current state and
// stores the result while holding SessionMutex throughout. When transition
// fails nothing is stored and the current state is returned with the error.
func (app *App) updateSearchState(ctx context.Context, sessionID string, transition func(state.SearchState) (state.SearchState, error)) (state.SearchState, error) {
	app.SessionMutex.Lock()
	current := app.loadSearchStateLocked(ctx, sessionID)
	next, err := transition(current)
	if err != nil {
		app.SessionMutex.Unlock()
		return current, err
	}
	app.Sessions[sessionID] = Session{State: next, LastAccessTime: time.Now()}
	app.SessionMutex.Unlock()

	app.persistSession(ctx, sessionID)
	return next, nil
}

// persistSession writes the latest in-memory copy of the session to disk.
// Writes are serialized so the file always ends up with the newest state.
func (app *App) persistSession(ctx context.Context, sessionID string) {
	app.PersistMutex.Lock()
	defer app.PersistMutex.Unlock()

	app.SessionMutex.RLock()
	sess, ok := app.Sessions[sessionID]
	app.SessionMutex.RUnlock()
	if !ok {
		return
	}
	if err := app.saveSessionToFile(sessionID, sess); err != nil {
		requestLogger(ctx).Warnf("Failed to persist session %s: %v", sessionID, err)
	}
}

// evictIdleSessions drops in-memory sessions idle for longer than maxAge and
// returns how many were dropped.
func (app *App) evictIdleSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	evicted := 0
	for id, sess := range app.Sessions {
		if sess.LastAccessTime.Before(cutoff) {
			delete(app.Sessions, id)
			evicted++
		}
	}
	return evicted
}

func (app *App) sessionCount() int {
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	return len(app.Sessions)
}
