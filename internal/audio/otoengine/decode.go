package otoengine

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/hatkit/pianohat/sdk/contracts"
)

// decodeFile decodes an audio file into PCM matching the engine's output
// format (16-bit little-endian at the configured rate and channel count).
func decodeFile(path string, cfg contracts.EngineConfig) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio engine: %w", err)
	}
	defer f.Close()

	var (
		samples  []float64
		channels int
		rate     int
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		samples, channels, rate, err = decodeWAV(f)
	case ".ogg":
		samples, channels, rate, err = decodeOGG(f)
	case ".mp3":
		samples, channels, rate, err = decodeMP3(f)
	default:
		return nil, fmt.Errorf("audio engine: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("audio engine: decoding %s: %w", path, err)
	}

	pcm := toPCM16(samples, channels, rate, cfg.ChannelCount, cfg.SampleRate)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("audio engine: %s contains no audio data", path)
	}
	return pcm, nil
}

func decodeWAV(f *os.File) ([]float64, int, int, error) {
	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, 0, 0, fmt.Errorf("empty or invalid WAV stream")
	}
	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(d.BitDepth)
	}
	scale := float64(int64(1) << uint(bitDepth-1))
	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}
	return samples, buf.Format.NumChannels, buf.Format.SampleRate, nil
}

func decodeOGG(f *os.File) ([]float64, int, int, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, 0, 0, err
	}
	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}
	return samples, format.Channels, format.SampleRate, nil
}

func decodeMP3(f *os.File) ([]float64, int, int, error) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, 0, err
	}
	// go-mp3 always yields 16-bit little-endian stereo.
	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, 0, 0, err
	}
	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = float64(v) / 32768
	}
	return samples, 2, d.SampleRate(), nil
}

// toPCM16 converts interleaved float frames into 16-bit little-endian PCM,
// remixing channels and linearly resampling as needed.
func toPCM16(src []float64, srcCh, srcRate, dstCh, dstRate int) []byte {
	if srcCh <= 0 || dstCh <= 0 || srcRate <= 0 || dstRate <= 0 {
		return nil
	}
	frames := len(src) / srcCh
	if frames == 0 {
		return nil
	}

	monoAt := func(i int) float64 {
		s := 0.0
		for c := 0; c < srcCh; c++ {
			s += src[i*srcCh+c]
		}
		return s / float64(srcCh)
	}
	chanAt := func(i, c int) float64 {
		switch {
		case srcCh == dstCh:
			return src[i*srcCh+c]
		case dstCh == 1:
			return monoAt(i)
		default:
			// Fewer source channels than outputs: duplicate the last one.
			return src[i*srcCh+min(c, srcCh-1)]
		}
	}

	outFrames := frames
	if srcRate != dstRate {
		outFrames = int(int64(frames) * int64(dstRate) / int64(srcRate))
	}
	buf := make([]byte, outFrames*dstCh*2)
	for i := 0; i < outFrames; i++ {
		pos := float64(i) * float64(srcRate) / float64(dstRate)
		i0 := int(pos)
		if i0 >= frames {
			i0 = frames - 1
		}
		i1 := min(i0+1, frames-1)
		frac := pos - float64(i0)
		for c := 0; c < dstCh; c++ {
			v := chanAt(i0, c)*(1-frac) + chanAt(i1, c)*frac
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			s := int16(v * 32767)
			binary.LittleEndian.PutUint16(buf[(i*dstCh+c)*2:], uint16(s))
		}
	}
	return buf
}
