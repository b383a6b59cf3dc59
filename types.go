package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"wordsearch/internal/state"
)

type contextKey string

// App holds the server configuration and every live search session.
type App struct {
	Config       Config
	Sessions     map[string]Session
	SessionMutex sync.RWMutex
	PersistMutex sync.Mutex
	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
	StartTime    time.Time
}

// Session is one browser's search state. The state is replaced wholesale on
// every accepted action.
type Session struct {
	State          state.SearchState `json:"state"`
	LastAccessTime time.Time         `json:"lastAccessTime"`
}

// NewApp returns an App with empty session and limiter tables.
func NewApp(cfg Config) *App {
	return &App{
		Config:     cfg,
		Sessions:   make(map[string]Session),
		LimiterMap: make(map[string]*rate.Limiter),
		StartTime:  time.Now(),
	}
}
