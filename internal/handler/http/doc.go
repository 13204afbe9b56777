// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the relay's REST transport. It decodes requests,
// authenticates callers by their identity token and hands the work to the
// relay services. Tracing, request logging, compression and body size
// limits are applied as chi middleware.
package http
