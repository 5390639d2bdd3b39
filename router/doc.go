// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Dot Poll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	svc := polls.NewService(store.New(db))
	mux := router.NewRouter(svc)

# Endpoints

	GET  /health                       - Liveness check
	GET  /                             - Greeting
	PUT  /api/v1/polls                 - Create poll (POST is accepted too)
	GET  /api/v1/polls/{uuid}          - Poll and its choices
	POST /api/v1/polls/{uuid}/vote     - Cast a ballot
	GET  /api/v1/polls/{uuid}/results  - Ranked tally

Every API route is wrapped in middleware.WithLogging. CORS is applied by the
caller around the whole mux.
*/
package router
