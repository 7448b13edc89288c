// Package tags reads music file metadata into track records. It covers MP3,
// FLAC, Ogg (Opus and Vorbis) and M4A files, with per-format fallbacks for
// files the generic reader cannot parse.
package tags

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// ErrUnsupportedFormat is returned for files whose extension is not a
// supported music format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Record field names filled by the readers, besides the plain tag names.
const (
	FieldPath            = "path"
	FieldFilename        = "filename"
	FieldFilenameExt     = "filename_ext"
	FieldDirectoryName   = "directoryname"
	FieldFilesize        = "filesize"
	FieldFilesizeNatural = "filesize_natural"
	FieldCodec           = "codec"
	FieldLength          = "length"
	FieldLengthSeconds   = "length_seconds"
	FieldSampleRate      = "samplerate"
	FieldBitsPerSample   = "bitspersample"
	FieldChannels        = "channels"
	FieldBitrate         = "bitrate"
)

// AudioInfo contains audio stream properties (not tags).
type AudioInfo struct {
	Duration   time.Duration
	Format     string // MP3, FLAC, OPUS, VORBIS, AAC, ALAC, M4A
	SampleRate int
	BitDepth   int
	Channels   int // 0 when the container does not say
	Bitrate    int // average kbps
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		return true
	}
	return false
}

// codecForExt is the codec assumed before the stream itself is inspected.
func codecForExt(ext string) string {
	switch ext {
	case ExtMP3:
		return "MP3"
	case ExtFLAC:
		return "FLAC"
	case ExtOPUS:
		return "Opus"
	case ExtOGG, ExtOGA:
		return "Vorbis"
	case ExtM4A, ExtMP4:
		return "AAC"
	}
	return ""
}

// taglibTags wraps a taglib result map with helper methods.
// This reduces duplication across format-specific readers.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// all returns every value for the first key that has any.
func (t taglibTags) all(keys ...string) []string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values
		}
	}
	return nil
}

// parseNumberPair parses a track/disc number that may be "N" or "N/M" format.
func parseNumberPair(s string) (num, total int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, "/", 2)
	num, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		total, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return num, total
}

// formatLength renders a duration as m:ss, or h:mm:ss from one hour up.
func formatLength(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return strconv.Itoa(h) + ":" + pad2(m) + ":" + pad2(s)
	}
	return strconv.Itoa(secs/60) + ":" + pad2(s)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
