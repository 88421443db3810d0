// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingcodec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a Format value or name is not supported
var ErrUnknownFormat = errors.New("unknown timing format")

// Format indicates which wire format is desired
type Format int

const (
	JSON Format = iota
	Msgpack
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Msgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type of this format
func (f Format) ContentType() string {
	switch f {
	case Msgpack:
		return "application/msgpack"
	default:
		return "application/json"
	}
}

// ParseFormat converts a configuration value into a Format.  The empty string yields JSON.
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "json":
		return JSON, nil
	case "msgpack", "messagepack":
		return Msgpack, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, v)
	}
}
