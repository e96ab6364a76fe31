package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// maxLineBytes is the longest line Reader accepts.
const maxLineBytes = 1 << 20

// Reader reads records from a line-oriented dataset. Blank and malformed
// lines are skipped and counted.
type Reader struct {
	sc      *bufio.Scanner
	sep     string
	speaker string
	line    int
	skipped int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithSeparator sets the field separator (default "|").
func WithSeparator(sep string) ReaderOption {
	return func(r *Reader) {
		if sep != "" {
			r.sep = sep
		}
	}
}

// WithDefaultSpeaker sets the speaker of records that name none (default "1").
func WithDefaultSpeaker(speaker string) ReaderOption {
	return func(r *Reader) {
		if speaker != "" {
			r.speaker = speaker
		}
	}
}

func NewReader(src io.Reader, opts ...ReaderOption) *Reader {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	r := &Reader{sc: sc, sep: Separator, speaker: DefaultSpeaker}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		r.line++
		rec, err := parseRecord(r.sc.Text(), r.sep, r.speaker)
		if errors.Is(err, ErrMalformedRecord) {
			r.skipped++
			continue
		}
		rec.Line = r.line
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("dataset: line %d: %w", r.line+1, err)
	}
	return Record{}, io.EOF
}

// ReadAll returns every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Skipped reports how many lines were not records.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Writer writes records as dataset lines.
type Writer struct {
	w   *bufio.Writer
	sep string
}

func NewWriter(dst io.Writer, sep string) *Writer {
	if sep == "" {
		sep = Separator
	}
	return &Writer{w: bufio.NewWriter(dst), sep: sep}
}

func (w *Writer) Write(r Record) error {
	if _, err := w.w.WriteString(r.FormatWith(w.sep)); err != nil {
		return fmt.Errorf("dataset: writing record %q: %w", r.ID, err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("dataset: writing record %q: %w", r.ID, err)
	}
	return nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("dataset: flush: %w", err)
	}
	return nil
}
