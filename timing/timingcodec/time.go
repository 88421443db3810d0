// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingcodec

import "time"

// timeExt renders time.Time values with a fixed layout.  Decoding failures panic, which
// the ugorji decoder reports as an error.
type timeExt struct {
	layout string
}

func (te timeExt) ConvertExt(v interface{}) interface{} {
	switch t := v.(type) {
	case *time.Time:
		return t.Format(te.layout)
	case time.Time:
		return t.Format(te.layout)
	default:
		return v
	}
}

func (te timeExt) UpdateExt(dst interface{}, src interface{}) {
	t := dst.(*time.Time)
	switch v := src.(type) {
	case nil:
		*t = time.Time{}
	case string:
		parsed, err := time.Parse(te.layout, v)
		if err != nil {
			panic(err)
		}

		*t = parsed
	}
}
