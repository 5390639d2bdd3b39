// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps a handler and logs the completed request with slog:

	mux.HandleFunc("GET /api/v1/polls/{uuid}", middleware.WithLogging(handler.GetPoll))

Logged fields: method, path, status, remote, duration_ms. Responses with a
5xx status are logged at error level.

# CORS

CORS reflects the request Origin (or "*") and answers preflight OPTIONS
requests with 204:

	server := http.Server{Handler: middleware.CORS(mux)}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse writes models.ErrorResponse with the status text as "error".
ParseJSONBody reads at most 1 MiB and rejects trailing data.

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
