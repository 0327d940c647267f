// Package docs registers the OpenAPI contract with swag so that echo-swagger can
// serve it under /swagger.
package docs

import (
	"fooddelivery/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Food Delivery Order Service",
	Description:      "Order lifecycle of a food delivery platform with its supporting catalog.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// Register renders the contract as JSON and registers it under swag.Name.
func Register() error {
	doc, err := api.Spec()
	if err != nil {
		return err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	SwaggerInfo.SwaggerTemplate = string(raw)
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	return nil
}
