// Package api defines the request and response messages of the shuttlecash
// RPC services. Messages are plain Go structs carried as JSON over the
// Connect protocol; see Codec.
package api
