// Package api holds the HTTP wire types generated from api/openapi.yaml.
package api

//go:generate go tool oapi-codegen -generate types -package api -o api.gen.go ../../api/openapi.yaml
