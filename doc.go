// Package soukhub is the Go client SDK for the SoukHub marketplace and
// delivery platform (buyers, sellers, couriers, admins).
//
// The package glues the wire types in schema with the typed API surface in
// client, the persisted session in session and the authorizing HTTP decorator
// in transport. In practice it is used as an umbrella package exposing one
// entry point, New, which assembles the whole stack from a ClientOptions
// structure that can be populated from CLI flags or configuration files.
//
// Example:
//
//	cli, _ := soukhub.New(&soukhub.ClientOptions{BaseURL: "https://api.soukhub.example"})
//	user, _ := cli.Login(ctx, email, password)
//	orders, _ := cli.ListMyOrders(ctx)
//
// See the cmd/souk command for a complete consumer.
package soukhub
