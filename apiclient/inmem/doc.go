// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package inmem implements the monitoring API operations in memory. It is meant to
exercise the event handler and the expiration sweeper without a running monitoring
platform. Since nothing is persisted, it is recommended for tests and local
runs only.
*/
package inmem
