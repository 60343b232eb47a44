// Package client implements the typed SoukHub API surface: one method per
// endpoint, organized by resource family (auth/users, shops, products, cart,
// orders, delivery notes, courier missions, notifications, reviews).
//
// Every call flows through the transport.Authorizer decorator, so bearer
// injection and 401-triggered session invalidation are uniform and invisible
// here. Collection endpoints return the unwrapped domain payload, never the
// backend's envelope objects; non-2xx responses surface as *APIError carrying
// the server-provided message when one is present.
//
// Methods return (T, error) in the usual Go shape; combine them with
// resource.Fetch to observe the Loading/Success/Error sequence the
// presentation layer consumes:
//
//	products := resource.Fetch(ctx, func(ctx context.Context) ([]schema.Product, error) {
//		return cli.ListProducts(ctx, schema.ProductQuery{})
//	})
package client
