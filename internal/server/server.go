// Package server exposes the composer over HTTP: a stateless render
// endpoint plus supporting lookups. No invoice is ever persisted.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/export"
	"github.com/rezonia/invoice-composer/internal/model"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	exporter *export.Exporter
	log      zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config, log zerolog.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		exporter: export.NewExporter(export.WithLogger(log)),
		log:      log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/currencies", s.handleCurrencies)
		v1.POST("/invoices/pdf", s.handleRenderInvoice)
	}
}

// Run starts the HTTP server. It blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("address", s.config.Address).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCurrencies(c *gin.Context) {
	codes := currency.Supported()
	out := make([]CurrencyResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, CurrencyResponse{
			Code:   string(code),
			Symbol: currency.Symbol(code),
		})
	}
	c.JSON(http.StatusOK, out)
}

// handleRenderInvoice renders one invoice to PDF. Accepts either a JSON
// body, or a multipart form with an "invoice" JSON field and an optional
// "logo" file.
func (s *Server) handleRenderInvoice(c *gin.Context) {
	params, err := s.requestParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !params.Currency.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("unsupported currency code %q", params.Currency),
		})
		return
	}

	var buf bytes.Buffer
	if err := s.exporter.SaveInvoicePDF(c.Request.Context(), params, &buf); err != nil {
		var ingestErr *model.IngestionError
		if errors.As(err, &ingestErr) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		s.log.Error().Err(err).Msg("export failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed"})
		return
	}

	filename := params.Number
	if filename == "" {
		filename = "invoice"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// requestParams decodes either request shape into export parameters.
func (s *Server) requestParams(c *gin.Context) (export.Params, error) {
	var req InvoiceRequest

	if ct := c.ContentType(); ct == "multipart/form-data" {
		raw := c.PostForm("invoice")
		if raw == "" {
			return export.Params{}, errors.New("missing invoice form field")
		}
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return export.Params{}, fmt.Errorf("invalid invoice JSON: %w", err)
		}
		params := req.toParams()

		file, header, err := c.Request.FormFile("logo")
		if err == nil {
			params.Logo = file
			params.LogoName = header.Filename
		} else if !errors.Is(err, http.ErrMissingFile) {
			return export.Params{}, fmt.Errorf("read logo: %w", err)
		}
		return params, nil
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return export.Params{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req.toParams(), nil
}
