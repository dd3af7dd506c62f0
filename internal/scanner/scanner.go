// Package scanner reads files line by line and records which target words
// each line contains.
package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/harrison/wordcheck/internal/models"
	"github.com/harrison/wordcheck/internal/words"
)

// DefaultMaxLineBytes is the longest line accepted when no limit is configured
const DefaultMaxLineBytes = 64 * 1024 * 1024

// ErrInvalidEncoding is returned when a line is not valid UTF-8
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// Scanner matches file lines against a word set.
// Matched words are marked found in the set as a side effect.
type Scanner struct {
	words        *words.Set
	maxLineBytes int
}

// New creates a Scanner over set. maxLineBytes <= 0 selects DefaultMaxLineBytes.
func New(set *words.Set, maxLineBytes int) *Scanner {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &Scanner{
		words:        set,
		maxLineBytes: maxLineBytes,
	}
}

// ScanFile scans the file at path. Any open, read, or decode failure is
// returned in FileResult.Err and the file contributes no records.
func (s *Scanner) ScanFile(path string) models.FileResult {
	result := models.FileResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to open file: %w", err)
		return result
	}
	defer f.Close()

	records, err := s.Scan(f)
	if err != nil {
		result.Err = err
		return result
	}

	result.Records = records
	return result
}

// Scan reads r as UTF-8 text lines and returns one record per matching
// word per line, in line order then word order.
func (s *Scanner) Scan(r io.Reader) ([]models.MatchRecord, error) {
	// A leading BOM is dropped; a UTF-16 BOM switches to UTF-16 decoding.
	decoded := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	initial := 64 * 1024
	if initial > s.maxLineBytes {
		initial = s.maxLineBytes
	}

	sc := bufio.NewScanner(decoded)
	sc.Buffer(make([]byte, 0, initial), s.maxLineBytes)
	sc.Split(ScanLines)

	var records []models.MatchRecord
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := sc.Bytes()
		if !utf8.Valid(line) {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrInvalidEncoding)
		}

		text := string(line)
		for _, word := range s.words.MatchLine(text) {
			records = append(records, models.MatchRecord{
				Word: word,
				Line: lineNum,
				Text: text,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", lineNum+1, err)
	}

	return records, nil
}

// ScanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n", or a lone
// "\r". Terminators are dropped and a final unterminated line is returned.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need one more byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
