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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hook is called after a preference value has changed.
type hook func(value Value) error

// Bool implements a boolean type in the prefs system.
type Bool struct {
	mu    sync.RWMutex
	value bool
	post  hook
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	p.mu.Lock()
	p.value = nv
	post := p.post
	p.mu.Unlock()

	if post != nil {
		return post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value hasn't changed.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.post = f
}

// Int implements an integer type in the prefs system. The value can be
// restricted to a range with SetRange().
type Int struct {
	mu       sync.RWMutex
	value    int
	min, max int
	ranged   bool
	post     hook
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// SetRange restricts the value to the inclusive range. Values outside the
// range cause Set() to fail. The existing value is clamped if necessary.
func (p *Int) SetRange(min, max int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.min = min
	p.max = max
	p.ranged = true
	p.value = clamp(p.value, min, max)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	p.mu.Lock()
	if p.ranged && (nv < p.min || nv > p.max) {
		p.mu.Unlock()
		return fmt.Errorf("prefs: %d is outside the range %d to %d", nv, p.min, p.max)
	}
	p.value = nv
	post := p.post
	p.mu.Unlock()

	if post != nil {
		return post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Reset sets the int value to zero, or the lowest value in the range if zero
// is outside of it.
func (p *Int) Reset() error {
	p.mu.RLock()
	v := 0
	if p.ranged {
		v = clamp(0, p.min, p.max)
	}
	p.mu.RUnlock()
	return p.Set(v)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value hasn't changed.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.post = f
}

// String implements a string type in the prefs system.
type String struct {
	mu     sync.RWMutex
	value  string
	maxLen int
	post   hook
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing string is cropped
// if necessary and the cropped information is lost.
func (p *String) SetMaxLen(max int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxLen = max
	if p.maxLen > 0 && len(p.value) > p.maxLen {
		p.value = p.value[:p.maxLen]
	}
}

// Set new value to String type. Values of any type are accepted and are
// converted to a string with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)

	p.mu.Lock()
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	p.value = nv
	post := p.post
	p.mu.Unlock()

	if post != nil {
		return post(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value hasn't changed.
func (p *String) SetHookPost(f func(value Value) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.post = f
}

// Generic is a preference backed by a value outside of the prefs system. The
// set and get functions convert between the value and its string form.
type Generic struct {
	set func(string) error
	get func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return p.get()
}

// Set new value to Generic type. The value is converted to a string with the
// %v verb before being passed to the set function.
func (p *Generic) Set(v Value) error {
	return p.set(fmt.Sprintf("%v", v))
}

// Get returns the string form of the value.
func (p *Generic) Get() Value {
	return p.get()
}

// Reset sets the value using the empty string.
func (p *Generic) Reset() error {
	return p.set("")
}
