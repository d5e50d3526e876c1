package openapi_validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"parceldesk/internal/generated/dto"
	"parceldesk/internal/handlers/rest/response"
	"parceldesk/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Middleware проверяет форму запроса по OpenAPI описанию: JSON тела, типы
// полей и параметров. Обязательность полей проверяет сервис, чтобы вернуть
// 422 со списком всех полей. Пути вне описания (например /metrics) не трогает.
func Middleware(log handlerLogger, spec []byte) (func(http.Handler) http.Handler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}
	// сервер в описании не задан, роутер должен матчить любой host
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if !errors.Is(err, routers.ErrPathNotFound) && !errors.Is(err, routers.ErrMethodNotAllowed) {
					log.Error("openapi route lookup", logger.NewField("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				log.Warn("request does not match openapi",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				response.JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{
					Error:   "bad_request",
					Message: err.Error(),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
