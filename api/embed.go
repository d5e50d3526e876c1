package api

import (
	_ "embed"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types -package dto -o ../internal/generated/dto/dto.gen.go openapi.yaml

//go:embed openapi.yaml
var OpenAPISpec []byte
