// Package server exposes the calendar feed and a small read-only JSON API
// over HTTP. The ICS feed is served from an atomically swapped cache that a
// background worker refreshes; the JSON endpoints compose wishes on demand.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/engine"
	"github.com/TeQuac/Gratulations/internal/model"
	"github.com/TeQuac/Gratulations/internal/store"
)

// ContactSource is the read subset of the contact store the API needs.
type ContactSource interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id string) (*model.Contact, error)
}

// cacheItem stores the rendered calendar and its HTTP caching metadata.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 as required by HTTP date headers
}

// Server serves the ICS feed and the JSON API.
type Server struct {
	// cache uses atomic.Pointer for lock-free reads. The feed is read often
	// and replaced rarely, so this beats a RWMutex on the hot path.
	cache atomic.Pointer[cacheItem]

	Port      string
	Contacts  ContactSource
	Generator *engine.Generator
}

// New creates a Server for the given port.
func New(port string, contacts ContactSource, gen *engine.Generator) *Server {
	return &Server{
		Port:      port,
		Contacts:  contacts,
		Generator: gen,
	}
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get(config.RouteCalendar, s.handleCalendar)
	r.Head(config.RouteCalendar, s.handleCalendar)

	r.Route(config.RouteAPI, func(r chi.Router) {
		r.Get(config.RouteContacts, s.handleContacts)
		r.Get(config.RouteContactWish, s.handleContactWish)
		r.Get(config.RouteToday, s.handleToday)
	})

	return r
}

// Start runs the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Router(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// UpdateCalendar atomically replaces the served feed.
func (s *Server) UpdateCalendar(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Concurrent readers see either the old or the new complete item,
	// never a partial state.
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// RefreshCalendar rebuilds the feed from the current contact list and swaps
// it into the cache.
func (s *Server) RefreshCalendar(ctx context.Context, reminderTrigger string) error {
	contacts, err := s.Contacts.List(ctx)
	if err != nil {
		return err
	}
	ics, _, err := s.Generator.BuildCalendar(ctx, contacts, reminderTrigger)
	if err != nil {
		return err
	}
	s.UpdateCalendar(ics)
	return nil
}

// handleCalendar serves the ICS feed with conditional-request support.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.Contacts.List(r.Context())
	if err != nil {
		s.internalError(w, err)
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	s.writeJSON(w, http.StatusOK, contacts)
}

// wishResponse carries the composed wish plus prefilled share links.
type wishResponse struct {
	engine.Celebration
	Date     string `json:"date"`
	Mailto   string `json:"mailto,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

func (s *Server) handleContactWish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, config.ParamID)

	contact, err := s.Contacts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, config.HTTPMsgNotFound, http.StatusNotFound)
			return
		}
		s.internalError(w, err)
		return
	}

	day, ok := s.requestDate(w, r)
	if !ok {
		return
	}

	cel, err := s.Generator.WishFor(*contact, day)
	if err != nil {
		s.internalError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, wishResponse{
		Celebration: cel,
		Date:        day.Format(config.DateFormatDayKey),
		Mailto:      engine.MailtoLink(*contact, cel.Wish.Text),
		WhatsApp:    engine.WhatsAppLink(*contact, cel.Wish.Text),
	})
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	day, ok := s.requestDate(w, r)
	if !ok {
		return
	}

	contacts, err := s.Contacts.List(r.Context())
	if err != nil {
		s.internalError(w, err)
		return
	}

	celebrations := s.Generator.BirthdaysOn(contacts, day)
	if celebrations == nil {
		celebrations = []engine.Celebration{}
	}
	s.writeJSON(w, http.StatusOK, celebrations)
}

// requestDate resolves the optional date query parameter, defaulting to the
// generator's current day. A malformed value yields a 400 response and a
// false second return.
func (s *Server) requestDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get(config.ParamDate)
	if raw == "" {
		return s.Generator.Clock.Now(), true
	}
	day, err := time.Parse(config.DateFormatDayKey, raw)
	if err != nil {
		http.Error(w, config.HTTPMsgBadDate, http.StatusBadRequest)
		return time.Time{}, false
	}
	return day, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	slog.Error(config.HTTPMsgInternalErr,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyError, err,
	)
	http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
}
