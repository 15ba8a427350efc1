// Package form builds the multipart bodies for mutation endpoints. Each
// submission type maps its fields to wire names explicitly, so the set of
// transmitted fields is fixed at compile time. Geographic coordinates are
// transmitted as fixed-precision strings with 8 decimal places.
package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/rs/zerolog"
)

// ErrNoImages is returned when a listing submission carries no images; the
// backend requires at least one.
var ErrNoImages = errors.New("No images provided")

// File is one uploaded file part.
type File struct {
	Name   string
	Reader io.Reader
}

// Builder accumulates multipart parts. The first error sticks; Close
// reports it.
type Builder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	logger zerolog.Logger
	err    error
}

func NewBuilder(logger zerolog.Logger) *Builder {
	b := &Builder{logger: logger}
	b.writer = multipart.NewWriter(&b.buf)
	return b
}

// Field writes one text field.
func (b *Builder) Field(name, value string) {
	if b.err != nil {
		return
	}
	if err := b.writer.WriteField(name, value); err != nil {
		b.err = fmt.Errorf("write field %s: %w", name, err)
	}
}

// Int writes a numeric field as its decimal string.
func (b *Builder) Int(name string, value int) {
	b.Field(name, strconv.Itoa(value))
}

// Coordinate writes a latitude/longitude field with exactly 8 decimal
// places, the precision the backend stores.
func (b *Builder) Coordinate(name string, value float64) {
	b.Field(name, strconv.FormatFloat(value, 'f', 8, 64))
}

// File writes one file part. An entry without content is not a valid file;
// it is logged and skipped rather than failing the whole submission.
func (b *Builder) File(field string, f File) {
	if b.err != nil {
		return
	}
	if f.Reader == nil {
		b.logger.Error().Str("field", field).Str("name", f.Name).Msg("not a valid file, skipping")
		return
	}
	part, err := b.writer.CreateFormFile(field, f.Name)
	if err != nil {
		b.err = fmt.Errorf("create file part %s: %w", field, err)
		return
	}
	if _, err := io.Copy(part, f.Reader); err != nil {
		b.err = fmt.Errorf("copy file part %s: %w", field, err)
	}
}

// Close finalizes the body and returns the content type (carrying the
// boundary) and the encoded form.
func (b *Builder) Close() (string, io.Reader, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if err := b.writer.Close(); err != nil {
		return "", nil, fmt.Errorf("close form: %w", err)
	}
	return b.writer.FormDataContentType(), &b.buf, nil
}
