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

// Package audio decodes sound files into PCM clips and plays them without
// waiting for playback to finish.
//
// WAV and MP3 files are supported. The format is chosen by the file
// extension, or by the first bytes of the file when the extension is not
// recognised. Decoded clips are always signed 16 bit samples, interleaved
// when there is more than one channel.
//
// SDLPlayer plays clips through the default SDL audio device. Each clip is
// given its own device so that clips can overlap and playback never blocks
// the caller.
package audio
