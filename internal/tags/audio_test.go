package tags

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseStreamInfo(t *testing.T) {
	// 44100 Hz, 16 bits per sample, 441000 samples (10 seconds)
	data := make([]byte, 34)
	rate := 44100
	samples := int64(441000)
	data[10] = byte(rate >> 12)
	data[11] = byte(rate >> 4)
	data[12] = byte(rate<<4) | (1 << 1) // 2 channels, stored minus one
	bps := 16 - 1
	data[12] |= byte(bps >> 4)
	data[13] = byte(bps<<4) | byte(samples>>32)
	binary.BigEndian.PutUint32(data[14:18], uint32(samples))

	info := parseStreamInfo(data)

	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
	if info.Duration != 10*time.Second {
		t.Errorf("Duration = %v, want 10s", info.Duration)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
}

func TestParseOggHead(t *testing.T) {
	vorbis := []byte("OggS\x00\x02junk\x01vorbis\x00\x00\x00\x00\x02")
	vorbis = binary.LittleEndian.AppendUint32(vorbis, 44100)

	tests := []struct {
		name   string
		head   []byte
		want   oggHead
		wantOK bool
	}{
		{"opus", []byte("OggS\x00\x02....OpusHead\x01\x02"), oggHead{"OPUS", 48000, 2}, true},
		{"opus without channel byte", []byte("OpusHead\x01"), oggHead{"OPUS", 48000, 0}, true},
		{"vorbis", vorbis, oggHead{"VORBIS", 44100, 2}, true},
		{"unknown", []byte("OggS\x00\x02....Speex   "), oggHead{}, false},
		{"truncated vorbis", []byte("\x01vorbis\x00\x00"), oggHead{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseOggHead(tt.head)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseOggHead() = (%+v, %v), want (%+v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAverageBitrate(t *testing.T) {
	if got := averageBitrate(40000, time.Second); got != 320 {
		t.Errorf("averageBitrate() = %d, want 320", got)
	}
	if got := averageBitrate(40000, 0); got != 0 {
		t.Errorf("averageBitrate() with no duration = %d, want 0", got)
	}
}

func TestChannelsName(t *testing.T) {
	for n, want := range map[int]string{0: "", 1: "mono", 2: "stereo", 6: "6"} {
		if got := channelsName(n); got != want {
			t.Errorf("channelsName(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestReadAudioInfo_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ReadAudioInfo(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadAudioInfo() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadAudioInfo_Duration(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		path   string
		format string
	}{
		{"Opus", createTestAudio(t, dir, "test.opus", "libopus"), "OPUS"},
		{"Vorbis", createTestAudio(t, dir, "test.ogg", "libvorbis"), "VORBIS"},
		{"FLAC", createTestAudio(t, dir, "test.flac", "flac"), "FLAC"},
		{"M4A", createTestAudio(t, dir, "test.m4a", "aac"), "AAC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ReadAudioInfo(tt.path)
			if err != nil {
				t.Fatalf("ReadAudioInfo() error: %v", err)
			}
			if info.Format != tt.format {
				t.Errorf("Format = %q, want %q", info.Format, tt.format)
			}
			if info.Bitrate <= 0 {
				t.Errorf("Bitrate = %d, want > 0", info.Bitrate)
			}
			// Test files are 1s long
			if info.Duration < 900*time.Millisecond || info.Duration > 1100*time.Millisecond {
				t.Errorf("Duration = %v, want approximately 1s", info.Duration)
			}
		})
	}
}
