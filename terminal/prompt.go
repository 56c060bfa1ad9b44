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

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lesplooch/animessage/curated"
)

// PromptError is returned when the question cannot be asked or answered.
const PromptError = "prompt: %v"

// help text printed below the question
const promptHelp = `Type "y" to accept or "n" to refuse, and then press "Enter".`

// Prompt asks yes/no questions. Answers are read a line at a time.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt is the preferred method of initialisation for the Prompt type.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints the message and waits for a yes or no answer. The question is
// repeated until the answer is understood. An empty answer is the same as no.
//
// If the input ends before an answer is given the result is false with no
// error.
func (p *Prompt) Confirm(message string) (bool, error) {
	for {
		_, err := fmt.Fprintf(p.out, "\n%s [y/n]\n%s\n> ", message, promptHelp)
		if err != nil {
			return false, curated.Errorf(PromptError, err)
		}

		answer, err := p.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, curated.Errorf(PromptError, err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}

		if err == io.EOF {
			return false, nil
		}
	}
}
