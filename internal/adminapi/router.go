// Package adminapi implements the HTTP presentation boundary of the
// inventory tracker. Handlers validate input, call the inventory store and
// query engine, and translate results into the JSON envelope.
package adminapi

// InitRouter registers every admin API route on the web server.
func InitRouter() {
	registerAuthRoutes()
	registerProductRoutes()
	registerStatsRoutes()
}
