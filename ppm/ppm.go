// SPDX-License-Identifier: MIT

package ppm

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rayray/canvas"
	"github.com/katalvlaran/rayray/color"
)

// Header constants.
const (
	MagicNumber = "P3"
	MaxValue    = color.MaxChannel
)

// Document is an encoded PPM image held as text lines without terminators.
type Document struct {
	rows   []string
	logger *slog.Logger
}

// Encode renders c as a P3 document.
// Returns ErrNilCanvas if c is nil.
// Complexity: O(W×H).
func Encode(c *canvas.Canvas, opts ...Option) (*Document, error) {
	if c == nil {
		return nil, ppmErrorf(opEncode, ErrNilCanvas)
	}
	o := gatherOptions(opts...)

	rows := make([]string, 0, 3+c.Height())
	rows = append(rows,
		MagicNumber,
		strconv.Itoa(c.Width())+" "+strconv.Itoa(c.Height()),
		strconv.Itoa(MaxValue),
	)

	var line strings.Builder
	for y := 0; y < c.Height(); y++ {
		px, err := c.Row(y)
		if err != nil {
			return nil, ppmErrorf(opEncode, err)
		}
		for _, col := range px {
			r, g, b := col.Bytes()
			for _, ch := range [3]uint8{r, g, b} {
				tok := strconv.Itoa(int(ch)) + " "
				if line.Len() > 0 && line.Len()+len(tok) >= o.maxLineLength {
					rows = append(rows, line.String())
					line.Reset()
				}
				line.WriteString(tok)
			}
		}
		// a canvas row never shares a line with the next one
		if line.Len() > 0 {
			rows = append(rows, line.String())
			line.Reset()
		}
	}

	o.logger.Debug("ppm: canvas encoded",
		slog.Int("width", c.Width()),
		slog.Int("height", c.Height()),
		slog.Int("rows", len(rows)),
	)

	return &Document{rows: rows, logger: o.logger}, nil
}

// Rows returns a copy of the document lines, header first, without newlines.
func (d *Document) Rows() []string {
	out := make([]string, len(d.rows))
	copy(out, d.rows)

	return out
}

// String joins the rows with newlines and appends a final empty line.
func (d *Document) String() string {
	var sb strings.Builder
	for _, r := range d.rows {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	return sb.String()
}

// WriteTo writes the document text to w. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	if err != nil {
		return int64(n), ppmErrorf(opWriteTo, errors.Join(ErrWrite, err))
	}

	return int64(n), nil
}

// Save writes the document to path, creating or truncating the file.
// Any failure, including one reported by Close, is returned wrapped in ErrWrite.
func (d *Document) Save(path string) (err error) {
	defer func() {
		if err != nil {
			d.logger.Warn("ppm: save failed", slog.String("path", path), slog.Any("err", err))
			return
		}
		d.logger.Debug("ppm: saved", slog.String("path", path), slog.Int("rows", len(d.rows)))
	}()

	f, err := os.Create(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return ppmErrorf(opSave, errors.Join(ErrWrite, err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ppmErrorf(opSave, errors.Join(ErrWrite, cerr))
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err = io.WriteString(bw, d.String()); err != nil {
		return ppmErrorf(opSave, errors.Join(ErrWrite, err))
	}
	if err = bw.Flush(); err != nil {
		return ppmErrorf(opSave, errors.Join(ErrWrite, err))
	}

	return nil
}

// Save encodes c and writes it to path.
func Save(c *canvas.Canvas, path string, opts ...Option) error {
	d, err := Encode(c, opts...)
	if err != nil {
		return err
	}

	return d.Save(path)
}
