// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package timingcodec serializes timing node trees.  JSON is the format used for HTTP headers
and logs, while Msgpack is available for binary sinks.  Both use the short field names
N, V and C defined on timing.Node.
*/
package timingcodec
