/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaName identifies a registered response schema. The set is closed:
// every name is a package constant and the registry is compiled at init, so
// a misspelled name is a programming error, not a runtime surprise.
type SchemaName string

const (
	SchemaSignupSuccess SchemaName = "signup_success"
	SchemaSignupFail    SchemaName = "signup_fail"
	SchemaSignIn        SchemaName = "signin_response"
	SchemaDish          SchemaName = "dish_response"
	SchemaDishExtended  SchemaName = "dish_extended_response"
	SchemaLocation      SchemaName = "location_response"
	SchemaLocationBrief SchemaName = "location_brief"
	SchemaTable         SchemaName = "table_response"
	SchemaReservation   SchemaName = "reservation_response"
	SchemaFeedback      SchemaName = "feedback_response"
	SchemaProfile       SchemaName = "profile_response"
	SchemaCart          SchemaName = "cart_response"
	SchemaError         SchemaName = "error_response"
	SchemaHealth        SchemaName = "health_response"
	SchemaRoot          SchemaName = "root_response"
)

const commonSchemaURL = "mem://schemas/common.json"

// Shared format fragments: 24-hex object ids, "$12.99" prices, ISO dates,
// HH:MM times, single-digit 1-5 ratings.
const commonSchemaJSON = `{
  "$defs": {
    "objectId": {"type": "string", "pattern": "^[a-f0-9]{24}$"},
    "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "time": {"type": "string", "pattern": "^\\d{2}:\\d{2}$"},
    "price": {"type": "string", "pattern": "^\\$\\d+(\\.\\d{2})?$"},
    "rating": {"type": "string", "pattern": "^[1-5]$"}
  }
}`

// schemaDocuments holds the structural definition for every registered
// response shape, keyed by schema name.
var schemaDocuments = map[SchemaName]string{
	SchemaSignupSuccess: `{
  "type": "object",
  "properties": {
    "message": {"type": "string"}
  },
  "required": ["message"]
}`,

	SchemaSignupFail: `{
  "type": "object",
  "properties": {
    "message": {"type": "string"}
  },
  "required": ["message"]
}`,

	SchemaSignIn: `{
  "type": "object",
  "properties": {
    "accessToken": {"type": "string"},
    "username": {"type": "string"},
    "role": {"type": "string", "enum": ["CLIENT", "ADMIN", "WAITER"]}
  },
  "required": ["accessToken", "username", "role"]
}`,

	SchemaDish: `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string"},
    "price": {"$ref": "mem://schemas/common.json#/$defs/price"},
    "weight": {"type": "string"},
    "previewImageUrl": {"type": "string", "format": "uri"},
    "state": {"type": "string"}
  },
  "required": ["name", "price"]
}`,

	SchemaDishExtended: `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string"},
    "description": {"type": "string"},
    "price": {"$ref": "mem://schemas/common.json#/$defs/price"},
    "weight": {"type": "string"},
    "imageUrl": {"type": "string", "format": "uri"},
    "calories": {"type": "string"},
    "proteins": {"type": "string"},
    "fats": {"type": "string"},
    "carbohydrates": {"type": "string"},
    "vitamins": {"type": "string"},
    "dishType": {"type": "string", "enum": ["APPETIZER", "MAIN_COURSE", "DESSERT"]},
    "state": {"type": "string"}
  },
  "required": ["id", "name", "price"]
}`,

	SchemaLocation: `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "address": {"type": "string"},
    "description": {"type": "string"},
    "totalCapacity": {"type": "string"},
    "averageOccupancy": {"type": "string"},
    "imageUrl": {"type": "string", "format": "uri"},
    "rating": {"type": "string"}
  },
  "required": ["id", "address"]
}`,

	SchemaLocationBrief: `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "address": {"type": "string"}
  },
  "required": ["id", "address"]
}`,

	SchemaTable: `{
  "type": "object",
  "properties": {
    "locationId": {"type": "string"},
    "locationAddress": {"type": "string"},
    "tableNumber": {"type": "string"},
    "capacity": {"type": "string"},
    "availableSlots": {
      "type": "array",
      "items": {"type": "string"}
    }
  },
  "required": ["locationId", "tableNumber", "capacity"]
}`,

	SchemaReservation: `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "status": {"type": "string"},
    "locationAddress": {"type": "string"},
    "date": {"$ref": "mem://schemas/common.json#/$defs/date"},
    "timeSlot": {"type": "string"},
    "preOrder": {"type": "string"},
    "guestsNumber": {"type": "string"},
    "feedbackId": {"type": "string"},
    "userInfo": {"type": "string"}
  },
  "required": ["id", "status", "date"]
}`,

	SchemaFeedback: `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "rate": {"type": "string"},
    "comment": {"type": "string"},
    "userName": {"type": "string"},
    "userAvatarUrl": {"type": "string", "format": "uri"},
    "date": {"type": "string"},
    "type": {"type": "string", "enum": ["CUISINE_EXPERIENCE", "SERVICE_QUALITY"]},
    "locationId": {"type": "string"}
  },
  "required": ["id", "rate", "comment"]
}`,

	SchemaProfile: `{
  "type": "object",
  "properties": {
    "firstName": {"type": "string"},
    "lastName": {"type": "string"},
    "imageUrl": {"type": "string", "format": "uri"}
  },
  "required": ["firstName", "lastName"]
}`,

	SchemaCart: `{
  "type": "object",
  "properties": {
    "content": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "reservationId": {"type": "string"},
          "address": {"type": "string"},
          "date": {"$ref": "mem://schemas/common.json#/$defs/date"},
          "timeSlot": {"type": "string"},
          "state": {"type": "string", "enum": ["SUBMITTED", "IN_PROGRESS", "CANCELLED"]},
          "dishItems": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "dishId": {"type": "string"},
                "dishName": {"type": "string"},
                "dishPrice": {"$ref": "mem://schemas/common.json#/$defs/price"},
                "dishQuantity": {"type": "integer"},
                "dishImageUrl": {"type": "string", "format": "uri"}
              },
              "required": ["dishId", "dishName", "dishPrice", "dishQuantity"]
            }
          }
        },
        "required": ["id", "reservationId", "state"]
      }
    }
  },
  "required": ["content"]
}`,

	SchemaError: `{
  "type": "object",
  "properties": {
    "detail": {"type": "string"}
  },
  "required": ["detail"]
}`,

	SchemaHealth: `{
  "type": "object",
  "properties": {
    "status": {"type": "string", "enum": ["ok"]}
  },
  "required": ["status"]
}`,

	SchemaRoot: `{
  "type": "object",
  "properties": {
    "message": {"type": "string"}
  },
  "required": ["message"]
}`,
}

// paginationSchemaJSON describes the paginated envelope. Content elements are
// checked separately against the item schema.
const paginationSchemaJSON = `{
  "type": "object",
  "properties": {
    "content": {"type": "array"},
    "totalPages": {"type": "integer"},
    "totalElements": {"type": "integer"},
    "size": {"type": "integer"},
    "number": {"type": "integer"},
    "first": {"type": "boolean"},
    "last": {"type": "boolean"},
    "numberOfElements": {"type": "integer"},
    "empty": {"type": "boolean"}
  },
  "required": ["content"]
}`

var (
	schemaRegistry   map[SchemaName]*jsonschema.Schema
	paginationSchema *jsonschema.Schema
)

func init() {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	if err := c.AddResource(commonSchemaURL, strings.NewReader(commonSchemaJSON)); err != nil {
		panic(fmt.Sprintf("loading common schema fragments: %v", err))
	}

	for name, doc := range schemaDocuments {
		schemaURL := schemaResourceURL(name)
		if err := c.AddResource(schemaURL, strings.NewReader(doc)); err != nil {
			panic(fmt.Sprintf("loading schema %q: %v", name, err))
		}
	}

	const paginationURL = "mem://schemas/pagination.json"

	if err := c.AddResource(paginationURL, strings.NewReader(paginationSchemaJSON)); err != nil {
		panic(fmt.Sprintf("loading pagination schema: %v", err))
	}

	schemaRegistry = make(map[SchemaName]*jsonschema.Schema, len(schemaDocuments))
	for name := range schemaDocuments {
		schemaRegistry[name] = c.MustCompile(schemaResourceURL(name))
	}

	paginationSchema = c.MustCompile(paginationURL)
}

func schemaResourceURL(name SchemaName) string {
	return fmt.Sprintf("mem://schemas/%s.json", name)
}
