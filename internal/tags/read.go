package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/hnl/internal/track"
)

// builder fills a record, skipping empty values so that a reader never
// overwrites a field another reader already found.
type builder struct {
	rec *track.Record
}

func (b builder) set(field, value string) {
	if value = strings.TrimSpace(value); value != "" {
		b.rec.Set(field, value)
	}
}

func (b builder) setAll(field string, values []string) {
	if len(values) > 0 {
		b.rec.Set(field, values...)
	}
}

func (b builder) setNum(field string, n int) {
	if n > 0 {
		b.rec.Set(field, strconv.Itoa(n))
	}
}

// fillIfMissing sets field only when the record does not have it yet.
func (b builder) fillIfMissing(field, value string) {
	if !b.rec.Has(field) {
		b.set(field, value)
	}
}

// Read reads tag metadata from a music file into a new record.
// It returns only tag metadata and file properties, not audio stream
// properties.
func Read(path string) (*track.Record, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec := track.New(path)
	b := builder{rec: rec}

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch ext {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			err = readMP3WithID3v2Fallback(path, b)
		case ExtM4A, ExtMP4, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA:
			// dhowden/tag can't parse some M4A files (e.g., ffmpeg-created)
			// and fails on some FLAC and Ogg files
			err = readWithTaglib(path, b)
		}
		if err != nil {
			return nil, err
		}
	} else {
		readCommon(m, b)
		readExtended(path, ext, b)
	}

	b.fillIfMissing("title", filepath.Base(path))
	b.fillIfMissing("albumartist", rec.Value("artist"))

	if err := readFileFields(path, ext, b); err != nil {
		return nil, err
	}
	return rec, nil
}

func readCommon(m tag.Metadata, b builder) {
	b.set("title", m.Title())
	b.set("artist", m.Artist())
	b.set("albumartist", m.AlbumArtist())
	b.set("album", m.Album())
	b.set("genre", m.Genre())
	b.set("composer", m.Composer())
	b.setNum("date", m.Year())

	trackNum, totalTracks := m.Track()
	discNum, totalDiscs := m.Disc()
	b.setNum("tracknumber", trackNum)
	b.setNum("tracktotal", totalTracks)
	b.setNum("discnumber", discNum)
	b.setNum("disctotal", totalDiscs)
}

// readExtended reads the format specific tags dhowden/tag does not expose.
func readExtended(path, ext string, b builder) {
	switch ext {
	case ExtMP3:
		readMP3ExtendedTags(path, b)
	case ExtFLAC:
		readFLACExtendedTags(path, b)
	case ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		readTaglibExtendedTags(path, b)
	}
}

// readFileFields adds the fields derived from the file itself.
func readFileFields(path, ext string, b builder) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	base := filepath.Base(path)

	b.set(FieldPath, path)
	b.set(FieldFilename, strings.TrimSuffix(base, filepath.Ext(base)))
	b.set(FieldFilenameExt, base)
	b.set(FieldDirectoryName, filepath.Base(filepath.Dir(path)))
	b.set(FieldFilesize, strconv.FormatInt(fi.Size(), 10))
	b.set(FieldFilesizeNatural, humanize.Bytes(uint64(max(fi.Size(), 0))))
	b.set(FieldCodec, codecForExt(ext))
	return nil
}

// ReadRecord reads tags and, when possible, audio stream properties. A file
// whose stream cannot be parsed still yields its tags.
func ReadRecord(path string) (*track.Record, error) {
	rec, err := Read(path)
	if err != nil {
		return nil, err
	}
	if info, err := ReadAudioInfo(path); err == nil {
		applyAudioInfo(rec, info)
	}
	return rec, nil
}

func applyAudioInfo(rec *track.Record, info *AudioInfo) {
	b := builder{rec: rec}
	if info.Duration > 0 {
		b.set(FieldLength, formatLength(info.Duration))
		b.set(FieldLengthSeconds, strconv.Itoa(int(info.Duration.Seconds())))
	}
	b.setNum(FieldSampleRate, info.SampleRate)
	b.setNum(FieldBitsPerSample, info.BitDepth)
	b.setNum(FieldBitrate, info.Bitrate)
	b.set(FieldChannels, channelsName(info.Channels))
	b.set(FieldCodec, info.Format)
}

// channelsName spells out the common layouts the way players show them.
func channelsName(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	}
	return strconv.Itoa(n)
}

// FileReader reads records from disk for the drop loader.
type FileReader struct {
	// AudioInfo enables reading stream properties (length, sample rate).
	AudioInfo bool
}

// Read implements the drop loader's reader.
func (r FileReader) Read(path string) (*track.Record, error) {
	if r.AudioInfo {
		return ReadRecord(path)
	}
	return Read(path)
}
