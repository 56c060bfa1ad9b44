// This file is part of Animessage.
//
// Animessage is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Animessage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Animessage.  If not, see <https://www.gnu.org/licenses/>.

package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/lesplooch/animessage/curated"
)

// sentinel error patterns returned by Decode()
const (
	UnsupportedFormat = "unsupported audio format (%s)"
	DecodeError       = "cannot decode %s audio: %v"
)

// Clip is decoded audio ready to be played.
type Clip struct {
	SampleRate int
	Channels   int

	// signed 16 bit samples. interleaved if there is more than one channel
	Data []int16
}

// Duration of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	frames := len(c.Data) / c.Channels
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

// Bytes returns the clip data as little endian bytes.
func (c *Clip) Bytes() []byte {
	b := make([]byte, len(c.Data)*2)
	for i, s := range c.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

// Format is the encoding of an audio file.
type Format int

// List of valid Format values.
const (
	FormatUnknown Format = iota
	FormatWAV
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	}
	return "unknown"
}

// Sniff the format of the data. The filename extension is used if it is
// recognised, otherwise the header of the data is inspected. The read
// position of r is not changed.
func Sniff(filename string, r io.ReadSeeker) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	}

	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return FormatUnknown, err
	}
	defer func() {
		_, _ = r.Seek(pos, io.SeekStart)
	}()

	hdr := make([]byte, 12)
	n, err := io.ReadFull(r, hdr)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return FormatUnknown, nil
	}
	hdr = hdr[:n]

	switch {
	case len(hdr) >= 12 && bytes.Equal(hdr[:4], []byte("RIFF")) && bytes.Equal(hdr[8:12], []byte("WAVE")):
		return FormatWAV, nil
	case bytes.HasPrefix(hdr, []byte("ID3")):
		return FormatMP3, nil
	case len(hdr) >= 2 && hdr[0] == 0xff && hdr[1]&0xe0 == 0xe0:
		return FormatMP3, nil
	}

	return FormatUnknown, nil
}

// Decode the audio data. The filename is used to identify the format of the
// data. See Sniff().
func Decode(filename string, r io.ReadSeeker) (*Clip, error) {
	f, err := Sniff(filename, r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}

	switch f {
	case FormatWAV:
		return decodeWAV(r)
	case FormatMP3:
		return decodeMP3(r)
	}

	return nil, curated.Errorf(UnsupportedFormat, filepath.Base(filename))
}

func decodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, FormatWAV, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, FormatWAV, err)
	}

	return fromIntBuffer(buf, buf.SourceBitDepth)
}

// fromIntBuffer converts a go-audio buffer of any bit depth into a clip
func fromIntBuffer(buf *goaudio.IntBuffer, depth int) (*Clip, error) {
	if buf.Format == nil || buf.Format.NumChannels == 0 || buf.Format.SampleRate == 0 {
		return nil, curated.Errorf(DecodeError, FormatWAV, "missing format information")
	}

	c := &Clip{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		Data:       make([]int16, len(buf.Data)),
	}

	for i, v := range buf.Data {
		switch depth {
		case 8:
			// eight bit wav data is unsigned
			c.Data[i] = int16((v - 128) << 8)
		case 16:
			c.Data[i] = int16(v)
		case 24:
			c.Data[i] = int16(v >> 8)
		case 32:
			c.Data[i] = int16(v >> 16)
		default:
			return nil, curated.Errorf(DecodeError, FormatWAV, "unsupported bit depth")
		}
	}

	return c, nil
}

func decodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, FormatMP3, err)
	}

	// the stream is always 16bit little endian with two channels, even if
	// the source is single channel
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, curated.Errorf(DecodeError, FormatMP3, err)
	}

	c := &Clip{
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Data:       make([]int16, len(data)/2),
	}
	for i := range c.Data {
		c.Data[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}

	return c, nil
}
