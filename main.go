package main

import "github.com/lumenhotels/backoffice/cmd"

// @title           Hotel Back-Office API
// @version         1.0
// @description     Administrative API for hotel operations: staff accounts, room inventory, rate plans, housekeeping, and the audit trail.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cmd.Execute()
}
