package main

import "eventbooking/cmd/server/cmd"

// @title Dance Event Booking API
// @version 1.0
// @description Event, venue, package and registration management backed by an embedded key-value store.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cmd.Execute()
}
