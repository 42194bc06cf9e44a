// Package specs holds the OpenAPI documents of the API. The v1specs package is
// generated from v1.yaml.
package specs

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target v1specs --package v1specs --clean --no-client v1.yaml
