// Package drop turns dropped or pasted file references into track records
// inserted into the playlist.
package drop

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotLocal is returned for URIs that do not name a local file.
var ErrNotLocal = errors.New("not a local file")

// ParsePayload extracts local paths from a text/uri-list payload or from
// text pasted into the terminal. Lines are trimmed; empty lines and lines
// starting with '#' are skipped. file:// URIs are decoded to paths, other
// URI schemes are reported as ErrNotLocal. A line made of shell-quoted or
// backslash-escaped words, as terminals paste dragged files, yields one
// path per word. The paths that did parse are returned alongside the error.
func ParsePayload(text string) ([]string, error) {
	var (
		paths []string
		errs  []error
	)
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, word := range splitLine(line) {
			p, err := toPath(word)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			paths = append(paths, p)
		}
	}
	return paths, errors.Join(errs...)
}

// toPath converts one entry into a local path.
func toPath(entry string) (string, error) {
	scheme, _, ok := strings.Cut(entry, "://")
	if !ok {
		return entry, nil
	}
	if !strings.EqualFold(scheme, "file") {
		return "", fmt.Errorf("%s: %w", entry, ErrNotLocal)
	}
	u, err := url.Parse(entry)
	if err != nil {
		return "", fmt.Errorf("%s: %w", entry, err)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("%s: %w", entry, ErrNotLocal)
	}
	return u.Path, nil
}

// splitLine splits a line into words when it uses shell quoting or
// escaping. A plain line is a single entry, spaces included.
func splitLine(line string) []string {
	if !strings.ContainsAny(line, `'"\`) {
		return []string{line}
	}

	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inWord = true
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words
}
