package http

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/payload"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// uuidParam binds a required path parameter holding a UUID.
func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// bindPayload decodes the JSON request body into an untrusted payload.
// Path and query parameters are not merged in. An empty body is an empty payload.
func bindPayload(c echo.Context) (payload.Payload, error) {
	var body map[string]any
	if err := new(echo.DefaultBinder).BindBody(c, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return payload.Payload{}, nil
	}
	return payload.Payload(body), nil
}
