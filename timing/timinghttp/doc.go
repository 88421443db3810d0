// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package timinghttp hooks timing scopes into HTTP handling.  Each request gets its own scope,
the accumulated tree can be returned to the caller in a response header, and once the handler
finishes the tree is measured, logged, and handed to any configured sinks.
*/
package timinghttp
