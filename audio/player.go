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
	"sync"

	"github.com/lesplooch/animessage/curated"
	"github.com/veandco/go-sdl2/sdl"
)

// PlaybackError is returned when the audio device cannot be opened or
// queued.
const PlaybackError = "audio playback: %v"

// number of sample frames in the device buffer. precise value is not
// critical because the entire clip is queued at once
const bufferLength = 4096

// SDLPlayer plays clips using SDL. Playback happens in the background: Play()
// returns as soon as the clip has been queued.
type SDLPlayer struct {
	mu      sync.Mutex
	devices []sdl.AudioDeviceID
}

// NewSDLPlayer initialises the SDL audio subsystem.
func NewSDLPlayer() (*SDLPlayer, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}
	return &SDLPlayer{}, nil
}

// Play the clip on a newly opened audio device. Devices that have finished
// playing earlier clips are closed.
func (p *SDLPlayer) Play(clip *Clip) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reap()

	spec := &sdl.AudioSpec{
		Freq:     int32(clip.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(clip.Channels),
		Samples:  bufferLength,
	}

	// allowed changes is zero so SDL will convert the clip to whatever the
	// hardware supports
	var obtained sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &obtained, 0)
	if err != nil {
		return curated.Errorf(PlaybackError, err)
	}

	err = sdl.QueueAudio(id, clip.Bytes())
	if err != nil {
		sdl.CloseAudioDevice(id)
		return curated.Errorf(PlaybackError, err)
	}

	sdl.PauseAudioDevice(id, false)
	p.devices = append(p.devices, id)

	return nil
}

// reap closes devices that have nothing left to play
func (p *SDLPlayer) reap() {
	n := 0
	for _, id := range p.devices {
		if sdl.GetQueuedAudioSize(id) == 0 {
			sdl.CloseAudioDevice(id)
		} else {
			p.devices[n] = id
			n++
		}
	}
	p.devices = p.devices[:n]
}

// Playing returns the number of clips still playing.
func (p *SDLPlayer) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reap()
	return len(p.devices)
}

// Close stops all playback and shuts down the SDL audio subsystem.
func (p *SDLPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range p.devices {
		sdl.CloseAudioDevice(id)
	}
	p.devices = p.devices[:0]
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
