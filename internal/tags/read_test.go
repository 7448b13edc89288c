package tags

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.senan.xyz/taglib"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	// MP3 frame header (MPEG1 Layer3, 128kbps, 44100Hz, stereo) + padding
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

// createTaggedMP3 writes a minimal MP3 with the given ID3v2 text frames.
func createTaggedMP3(t *testing.T, path string, frames map[string]string, txxx map[string]string) {
	t.Helper()
	createMinimalMP3(t, path)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	defer tag.Close()

	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}
	for desc, value := range txxx {
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: desc,
			Value:       value,
		})
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save ID3 tags: %v", err)
	}
}

// createTestAudio creates a one second sine file using ffmpeg.
func createTestAudio(t *testing.T, dir, name, codec string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", codec, path)
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	return path
}

func TestRead_MP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{
		"TIT2": "Test Title",
		"TPE1": "Test Artist",
		"TPE2": "Test Album Artist",
		"TALB": "Test Album",
		"TCON": "Rock",
		"TRCK": "3/12",
		"TPOS": "1/2",
		"TPUB": "Test Label",
		"TSRC": "USRC17607839",
	}, map[string]string{
		"CATALOGNUMBER":        "CAT-001",
		"MusicBrainz Album Id": "b1a9c0e7-0000-4000-8000-000000000000",
	})

	rec, err := Read(path)
	require.NoError(t, err)

	want := map[string]string{
		"title":               "Test Title",
		"artist":              "Test Artist",
		"albumartist":         "Test Album Artist",
		"album":               "Test Album",
		"genre":               "Rock",
		"tracknumber":         "3",
		"tracktotal":          "12",
		"discnumber":          "1",
		"disctotal":           "2",
		"organization":        "Test Label",
		"isrc":                "USRC17607839",
		"catalognumber":       "CAT-001",
		"musicbrainz_albumid": "b1a9c0e7-0000-4000-8000-000000000000",
		"codec":               "MP3",
		"filename":            "song",
		"filename_ext":        "song.mp3",
		"path":                path,
		"directoryname":       filepath.Base(filepath.Dir(path)),
	}
	for field, value := range want {
		assert.Equal(t, value, rec.Value(field), "field %s", field)
	}
	assert.Equal(t, path, rec.Path())
}

func TestRead_Aliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{
		"TIT2": "T",
		"TRCK": "4/9",
		"TPE2": "AA",
		"TPUB": "Label",
	}, nil)

	rec, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "9", rec.Value("totaltracks"))
	assert.Equal(t, "AA", rec.Value("album artist"))
	assert.Equal(t, "Label", rec.Value("publisher"))
	assert.Equal(t, "4", rec.Value("track"))
}

func TestRead_FileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{"TIT2": "T"}, nil)
	fi, err := os.Stat(path)
	require.NoError(t, err)

	rec, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, strconv.FormatInt(fi.Size(), 10), rec.Value("filesize"))
	assert.True(t, strings.HasSuffix(rec.Value("filesize_natural"), "kB") ||
		strings.HasSuffix(rec.Value("filesize_natural"), " B"), rec.Value("filesize_natural"))
}

func TestRead_TitleFallbackToFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my-song.mp3")
	createTaggedMP3(t, path, map[string]string{"TPE1": "Artist", "TALB": "Album"}, nil)

	rec, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "my-song.mp3", rec.Value("title"))
}

func TestRead_AlbumArtistFallbackToArtist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{"TIT2": "T", "TPE1": "Solo Artist"}, nil)

	rec, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Solo Artist", rec.Value("albumartist"))
}

func TestRead_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z.tmp")
	require.NoError(t, os.WriteFile(path, []byte("not music"), 0o600))

	_, err := Read(path)

	assert.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)
}

func TestRead_NonexistentFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestRead_Unicode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{
		"TIT2": "日本語タイトル",
		"TPE1": "Ärtist Ñame",
	}, nil)

	rec, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "日本語タイトル", rec.Value("title"))
	assert.Equal(t, "Ärtist Ñame", rec.Value("artist"))
}

func TestRead_EachCallGetsNewIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{"TIT2": "T"}, nil)

	a, err := Read(path)
	require.NoError(t, err)
	b, err := Read(path)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRead_FLAC_VorbisComments(t *testing.T) {
	path := createTestAudio(t, t.TempDir(), "test.flac", "flac")
	err := taglib.WriteTags(path, map[string][]string{
		"TITLE":               {"Flac Title"},
		"ARTIST":              {"First", "Second"},
		"ALBUM":               {"Flac Album"},
		"DATE":                {"2021-03-04"},
		"TRACKNUMBER":         {"7"},
		"TOTALTRACKS":         {"10"},
		"LABEL":               {"Flac Label"},
		"MUSICBRAINZ_TRACKID": {"rec-id"},
		"MOOD":                {"calm"},
	}, taglib.Clear)
	require.NoError(t, err)

	rec, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Flac Title", rec.Value("title"))
	assert.Equal(t, "First", rec.Value("artist"))
	assert.Equal(t, "Flac Album", rec.Value("album"))
	assert.Equal(t, "2021-03-04", rec.Value("date"))
	assert.Equal(t, "7", rec.Value("tracknumber"))
	assert.Equal(t, "10", rec.Value("tracktotal"))
	assert.Equal(t, "Flac Label", rec.Value("organization"))
	assert.Equal(t, "rec-id", rec.Value("musicbrainz_trackid"))
	assert.Equal(t, "calm", rec.Value("mood"))
}

func TestReadRecord_AudioFields(t *testing.T) {
	path := createTestAudio(t, t.TempDir(), "test.flac", "flac")

	rec, err := ReadRecord(path)
	require.NoError(t, err)

	assert.Equal(t, "0:01", rec.Value("length"))
	assert.Equal(t, "1", rec.Value("length_seconds"))
	assert.Equal(t, "FLAC", rec.Value("codec"))
	assert.NotEmpty(t, rec.Value("samplerate"))
	assert.Equal(t, "test.flac", rec.Value("title"))
}

func TestReadRecord_AudioFailureIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{"TIT2": "Still Here"}, nil)

	rec, err := ReadRecord(path)
	require.NoError(t, err)

	assert.Equal(t, "Still Here", rec.Value("title"))
}

func TestFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createTaggedMP3(t, path, map[string]string{"TIT2": "Reader"}, nil)

	for _, withAudio := range []bool{false, true} {
		rec, err := FileReader{AudioInfo: withAudio}.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "Reader", rec.Value("title"))
	}

	_, err := FileReader{}.Read(filepath.Join(t.TempDir(), "x.tmp"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
