// Package http is the HTTP transport of the route loader.
//
// It binds a registration plan produced by package routes to a chi router,
// serves the synthetic HEAD and OPTIONS verbs, and runs the auth resolver in
// front of every route whose policy asks for it. Tracing, access logging,
// CORS headers, request timeouts and body limits are applied here as well.
package http
