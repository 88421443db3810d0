// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging configures go-kit loggers the way services using perflog expect:  leveled,
timestamped output to stdout or a rolling file, with helpers for carrying a logger in a
context.Context and for capturing output in tests.
*/
package logging
