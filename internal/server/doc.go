// Package server serves linechart charts over HTTP and tracks one focus marker per
// viewer session.
//
// Routes:
//
//	GET    /                                   chart index (JSON)
//	GET    /healthz                            liveness
//	GET    /metrics                            Prometheus metrics
//	GET    /charts/{name}                      interactive HTML page
//	GET    /charts/{name}/chart.svg            SVG document
//	GET    /charts/{name}/samples              samples (JSON)
//	GET    /charts/{name}/nearest?x=px         focus for one pointer position
//	POST   /charts/{name}/sessions             create a tracker session
//	POST   /charts/{name}/sessions/{id}/events deliver {"type","x","y"}, returns the focus
//	DELETE /charts/{name}/sessions/{id}        drop a session
//
// Errors are JSON objects of the form {"error": "..."}.
package server
