// Package schema defines the wire-level data transfer objects exchanged with
// the SoukHub platform backend: users, shops, products, cart, orders, delivery
// notes, courier missions, notifications and reviews, together with the list
// envelope objects the backend wraps collection responses in.
//
// The structs mirror the JSON contract of the REST API and carry no behaviour
// beyond decoding helpers; all business rules, including status transition
// validation, live on the server.
package schema
