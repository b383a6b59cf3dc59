package main

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wordsearch/internal/state"
	"wordsearch/internal/types"
	"wordsearch/internal/wordfilter"
)

// respond writes the session state as JSON.
func respond(c *gin.Context, s state.SearchState, message string) {
	c.JSON(http.StatusOK, types.FromState(s, message))
}

// reject reports a user-correctable problem. The session state is not touched.
func reject(c *gin.Context, status int, msg string) {
	requestLogger(c.Request.Context()).Infof("Rejected %s %s: %s", c.Request.Method, c.FullPath(), msg)
	c.JSON(status, types.ErrorResponse{Error: msg})
}

// stateHandler returns the current session state.
func (app *App) stateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	respond(c, app.getSearchState(c.Request.Context(), sessionID), "")
}

// wordsHandler replaces the word list with the parsed "words" form field.
func (app *App) wordsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	words := wordfilter.ParseWordList(c.PostForm("words"))

	next, _ := app.updateSearchState(ctx, sessionID, func(s state.SearchState) (state.SearchState, error) {
		return s.WithWords(words), nil
	})
	requestLogger(ctx).Infof("Session %s loaded %d words from text", sessionID, len(words))
	respond(c, next, "")
}

// uploadHandler replaces the word list with the contents of an uploaded CSV
// file. On any failure the word list is left as it was.
func (app *App) uploadHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	limit := app.Config.MaxUploadBytes + uploadFormOverhead
	if c.Request.ContentLength > limit {
		reject(c, http.StatusRequestEntityTooLarge, MsgUploadTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reject(c, http.StatusRequestEntityTooLarge, MsgUploadTooLarge)
			return
		}
		reject(c, http.StatusBadRequest, MsgUploadMissing)
		return
	}
	if !isCSVUpload(fh) {
		reject(c, http.StatusUnprocessableEntity, MsgUploadType)
		return
	}
	if fh.Size > app.Config.MaxUploadBytes {
		reject(c, http.StatusRequestEntityTooLarge, MsgUploadTooLarge)
		return
	}

	words, err := readUpload(fh)
	if err != nil {
		requestLogger(ctx).Warnf("Session %s upload %q failed: %v", sessionID, fh.Filename, err)
		if errors.Is(err, wordfilter.ErrInvalidEncoding) {
			reject(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			reject(c, http.StatusUnprocessableEntity, MsgUploadRead)
		}
		return
	}

	next, _ := app.updateSearchState(ctx, sessionID, func(s state.SearchState) (state.SearchState, error) {
		return s.WithWords(words), nil
	})
	requestLogger(ctx).Infof("Session %s loaded %d words from %q", sessionID, len(words), fh.Filename)
	respond(c, next, fmt.Sprintf(MsgUploadLoaded, filepath.Base(fh.Filename)))
}

func isCSVUpload(fh *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(fh.Filename), csvExtension) {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	return err == nil && mediaType == csvContentType
}

func readUpload(fh *multipart.FileHeader) (wordfilter.WordList, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return wordfilter.ReadWordList(io.LimitReader(f, fh.Size))
}

// addCriterionHandler appends a letter/positions criterion. "exclusive"
// defaults to true.
func (app *App) addCriterionHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	letter, positions := c.PostForm("letter"), c.PostForm("positions")
	exclusive := formBool(c.PostForm("exclusive"), true)
	next, err := app.updateSearchState(ctx, sessionID, func(s state.SearchState) (state.SearchState, error) {
		return s.AddCriterion(letter, positions, exclusive)
	})
	if err != nil {
		reject(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respond(c, next, "")
}

// removeCriterionHandler drops the criterion at the 0-based :index.
func (app *App) removeCriterionHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		reject(c, http.StatusBadRequest, MsgBadIndex)
		return
	}
	next, err := app.updateSearchState(ctx, sessionID, func(s state.SearchState) (state.SearchState, error) {
		return s.RemoveCriterion(index)
	})
	if err != nil {
		reject(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respond(c, next, "")
}

// clearCriteriaHandler resets every primary and chained setting.
func (app *App) clearCriteriaHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	next, _ := app.updateSearchState(ctx, sessionID, func(s state.SearchState) (state.SearchState, error) {
		return s.Clear(), nil
	})
	respond(c, next, MsgCriteriaCleared)
}

// searchHandler stores the submitted primary and chained settings and runs
// the search. A rejected search keeps the settings but not new results.
func (app *App) searchHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	cfg := wordfilter.ChainedConfig{
		TargetPosition:          formInt(c.PostForm("targetPosition")),
		ExclusiveTargetPosition: formBool(c.PostForm("exclusiveTarget"), true),
		SecondaryLength:         formInt(c.PostForm("secondaryLength")),
		SecondaryMatchPosition:  formInt(c.PostForm("secondaryMatchPosition")),
	}
	length, excluded := formInt(c.PostForm("length")), c.PostForm("excluded")
	chained := formBool(c.PostForm("chained"), false)

	start := time.Now()
	var searchErr error
	next, _ := app.updateSearchState(ctx, sessionID, func(s state.SearchState) (state.SearchState, error) {
		// RunSearch hands back the new settings on rejection; they are kept.
		result, err := s.WithPrimary(length, excluded).WithChain(chained, cfg).RunSearch()
		searchErr = err
		return result, nil
	})
	if searchErr != nil {
		reject(c, http.StatusUnprocessableEntity, searchErr.Error())
		return
	}
	requestLogger(ctx).Infof("Session %s search over %d words returned %d results in %v",
		sessionID, len(next.Words), len(next.Results), time.Since(start))
	respond(c, next, "")
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"env":       app.Config.envName(),
		"sessions":  app.sessionCount(),
		"uptime":    formatUptime(uptime),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
