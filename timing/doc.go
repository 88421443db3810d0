// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package timing accumulates named elapsed-time checkpoints for one unit of work, usually a
single HTTP request.  The key types in this package are Scope, which holds the ordered
sequence of Node values recorded for the unit of work, and Group, which collects the nodes
of a concurrent sub-flow until it is closed into its Scope.

A Scope travels in a context.Context.  Code that runs without one, such as background jobs
or tests, transparently records into the process-wide Fallback scope.
*/
package timing
