// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

// LoggingKey is the Viper subkey holding logging configuration
const LoggingKey = "log"

// Sub returns the LoggingKey subtree of v, or nil if v is nil or has no such subtree
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(LoggingKey)
	}

	return nil
}

// FromViper unmarshals Options from a (possibly nil) Viper subtree.  It does not descend
// into LoggingKey itself; pass Sub(v) for that.
func FromViper(v *viper.Viper) (o Options, err error) {
	if v != nil {
		err = v.Unmarshal(&o)
	}

	return
}

// NewFromViper builds the logger configured under the LoggingKey subtree of v.  With no such
// configuration, the result writes logfmt errors to stdout.
func NewFromViper(v *viper.Viper) (log.Logger, error) {
	o, err := FromViper(Sub(v))
	if err != nil {
		return nil, err
	}

	return New(&o), nil
}
