package tags

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/llehouerou/go-m4a"
	"github.com/llehouerou/go-mp3"
)

// prober reads the stream properties of one container format from an
// open file positioned at its start.
type prober func(f *os.File) (*AudioInfo, error)

var probers = map[string]prober{
	ExtMP3:  probeMP3,
	ExtFLAC: probeFLAC,
	ExtOPUS: probeOgg,
	ExtOGG:  probeOgg,
	ExtOGA:  probeOgg,
	ExtM4A:  probeM4A,
	ExtMP4:  probeM4A,
}

// ReadAudioInfo reads audio stream properties: length, codec, sample rate,
// bit depth and channels where the container records them. The bitrate is
// the average over the whole file.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	probe, ok := probers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := probe(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if fi, err := f.Stat(); err == nil {
		info.Bitrate = averageBitrate(fi.Size(), info.Duration)
	}
	return info, nil
}

// averageBitrate is size over duration in kbps, 0 when unknown.
func averageBitrate(size int64, d time.Duration) int {
	if size <= 0 || d <= 0 {
		return 0
	}
	return int(float64(size) * 8 / d.Seconds() / 1000)
}

func samplesDuration(samples int64, sampleRate int) time.Duration {
	if sampleRate <= 0 || samples <= 0 {
		return 0
	}
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

func probeMP3(f *os.File) (*AudioInfo, error) {
	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}
	return &AudioInfo{
		Duration:   samplesDuration(int64(decoder.SampleCount()), sampleRate),
		Format:     "MP3",
		SampleRate: sampleRate,
		BitDepth:   16, // decoded output
	}, nil
}

// probeFLAC reads STREAMINFO. Files with a prepended ID3 tag confuse the
// metadata parser and go through beep's decoder instead.
func probeFLAC(f *os.File) (*AudioInfo, error) {
	if meta, err := goflac.ParseMetadata(f); err == nil {
		for _, block := range meta.Meta {
			if block.Type == goflac.StreamInfo && len(block.Data) >= 18 {
				return parseStreamInfo(block.Data), nil
			}
		}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return probeFLACStream(f)
}

// parseStreamInfo decodes the STREAMINFO block: sample rate (20 bits),
// channels (3, minus one), bits per sample (5, minus one), total samples
// (36).
func parseStreamInfo(data []byte) *AudioInfo {
	sampleRate := int(data[10])<<12 | int(data[11])<<4 | int(data[12])>>4
	channels := int(data[12]>>1)&0x07 + 1
	bitsPerSample := (int(data[12])&0x01)<<4 | int(data[13])>>4 + 1
	totalSamples := int64(data[13]&0x0F)<<32 | int64(binary.BigEndian.Uint32(data[14:18]))

	return &AudioInfo{
		Duration:   samplesDuration(totalSamples, sampleRate),
		Format:     "FLAC",
		SampleRate: sampleRate,
		BitDepth:   bitsPerSample,
		Channels:   channels,
	}
}

func probeFLACStream(f *os.File) (*AudioInfo, error) {
	if err := skipID3v2(f); err != nil {
		return nil, err
	}
	streamer, format, err := flac.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "FLAC",
		SampleRate: int(format.SampleRate),
		BitDepth:   format.Precision * 8,
		Channels:   format.NumChannels,
	}, nil
}

// oggHead is what the first Ogg packet tells about the stream.
type oggHead struct {
	format     string
	sampleRate int
	channels   int
}

// parseOggHead identifies the codec from the first packet. Vorbis streams
// carry their sample rate in the identification header; Opus granule
// positions always count 48kHz samples.
func parseOggHead(head []byte) (oggHead, bool) {
	if i := bytes.Index(head, []byte("OpusHead")); i >= 0 {
		h := oggHead{format: "OPUS", sampleRate: 48000}
		// 8 byte magic, 1 byte version, 1 byte channel count
		if i+10 <= len(head) {
			h.channels = int(head[i+9])
		}
		return h, true
	}
	if i := bytes.Index(head, []byte("\x01vorbis")); i >= 0 && i+16 <= len(head) {
		// 7 byte signature, 4 byte version, 1 byte channels, 4 byte rate
		rate := binary.LittleEndian.Uint32(head[i+12 : i+16])
		if rate > 0 {
			return oggHead{format: "VORBIS", sampleRate: int(rate), channels: int(head[i+11])}, true
		}
	}
	return oggHead{}, false
}

func probeOgg(f *os.File) (*AudioInfo, error) {
	buf := make([]byte, 128)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	head, ok := parseOggHead(buf[:n])
	if !ok {
		return nil, errors.New("ogg: unknown codec")
	}

	granule, err := lastOggGranule(f)
	if err != nil {
		return nil, err
	}
	return &AudioInfo{
		Duration:   samplesDuration(granule, head.sampleRate),
		Format:     head.format,
		SampleRate: head.sampleRate,
		BitDepth:   16,
		Channels:   head.channels,
	}, nil
}

// oggTailSize bounds the search for the last page.
const oggTailSize = 64 << 10

// lastOggGranule returns the granule position of the last Ogg page, which
// is the stream length in samples.
func lastOggGranule(f *os.File) (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	size := min(int64(oggTailSize), fi.Size())
	buf := make([]byte, size)
	n, err := f.ReadAt(buf, fi.Size()-size)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	buf = buf[:n]

	// The granule position sits 6 bytes into the page header.
	i := bytes.LastIndex(buf, []byte("OggS"))
	if i < 0 || i+14 > len(buf) {
		return 0, errors.New("ogg: no page in file tail")
	}
	granule := int64(binary.LittleEndian.Uint64(buf[i+6 : i+14]))
	if granule <= 0 {
		return 0, errors.New("ogg: last page has no granule position")
	}
	return granule, nil
}

func probeM4A(f *os.File) (*AudioInfo, error) {
	container, err := m4a.Open(f)
	if err != nil {
		return nil, err
	}

	info := &AudioInfo{
		Duration:   container.Duration(),
		Format:     "M4A",
		SampleRate: int(container.SampleRate()),
		BitDepth:   16,
	}
	switch container.Codec() {
	case m4a.CodecAAC:
		info.Format = "AAC"
	case m4a.CodecALAC:
		info.Format = "ALAC"
		if container.SampleSize() == 24 {
			info.BitDepth = 24
		}
	case m4a.CodecUnknown:
	}
	return info, nil
}

// skipID3v2 positions r after an ID3v2 tag, or at the start when there is
// none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
