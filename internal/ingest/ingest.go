// Package ingest converts a raw logo image into an embeddable data URI.
//
// Ingestion is the only fallible, asynchronous step ahead of document
// assembly: the export pipeline waits for a Result and only assembles once
// ingestion has fully succeeded. A corrupt or unsupported image fails the
// whole export instead of silently dropping the logo.
package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"io"
	"os"

	// Register decoders for the supported logo formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/rezonia/invoice-composer/internal/model"
)

// Result is the outcome of a one-shot asynchronous ingestion.
type Result struct {
	Image *model.EmbeddedImage
	Err   error
}

// Ingest reads an image from r and returns its embeddable representation.
// source names the input in error messages (a path or field name).
func Ingest(ctx context.Context, r io.Reader, source string) (*model.EmbeddedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewIngestionError(source, "cancelled", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, model.NewIngestionError(source, "read failed", err)
	}
	if len(data) == 0 {
		return nil, model.NewIngestionError(source, "empty image", nil)
	}

	mime := detectImageMIME(data)
	if mime == "" {
		return nil, model.NewIngestionError(source, "unsupported image format (want PNG or JPEG)", nil)
	}

	// Magic bytes alone don't prove the file is intact.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, model.NewIngestionError(source, "corrupt image", err)
	}

	return &model.EmbeddedImage{
		MIME:    mime,
		DataURI: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

// IngestFile ingests the image at path.
func IngestFile(ctx context.Context, path string) (*model.EmbeddedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewIngestionError(path, "open failed", err)
	}
	defer f.Close()
	return Ingest(ctx, f, path)
}

// IngestAsync runs Ingest in a goroutine and delivers exactly one Result.
// The channel is buffered so the goroutine never leaks if the caller
// abandons the result.
func IngestAsync(ctx context.Context, r io.Reader, source string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		img, err := Ingest(ctx, r, source)
		ch <- Result{Image: img, Err: err}
	}()
	return ch
}

// detectImageMIME sniffs the image format by magic bytes. Returns "" for
// anything that is not a supported logo format.
func detectImageMIME(data []byte) string {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}):
		return "image/png"
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	default:
		return ""
	}
}
