package gemini

import "google.golang.org/genai"

// convertSchema converts a JSON Schema map into a Gemini Schema
func convertSchema(params map[string]interface{}) *genai.Schema {
	if len(params) == 0 {
		// Return a valid empty object schema
		return &genai.Schema{
			Type: genai.TypeObject,
		}
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
	}

	if props, ok := params["properties"].(map[string]interface{}); ok {
		schema.Properties = make(map[string]*genai.Schema)

		for propName, propValue := range props {
			if propDef, ok := propValue.(map[string]interface{}); ok {
				schema.Properties[propName] = convertPropertySchema(propDef)
			}
		}
	}

	if required, ok := params["required"].([]interface{}); ok {
		schema.Required = make([]string, 0, len(required))
		for _, req := range required {
			if reqStr, ok := req.(string); ok {
				schema.Required = append(schema.Required, reqStr)
			}
		}
	}

	return schema
}

// convertPropertySchema converts a single property's JSON Schema to Gemini Schema
func convertPropertySchema(propDef map[string]interface{}) *genai.Schema {
	propSchema := &genai.Schema{}

	if typeStr, ok := propDef["type"].(string); ok {
		propSchema.Type = mapJSONType(typeStr)
	}

	if desc, ok := propDef["description"].(string); ok {
		propSchema.Description = desc
	}

	if enumVals, ok := propDef["enum"].([]interface{}); ok {
		propSchema.Enum = make([]string, 0, len(enumVals))
		for _, val := range enumVals {
			if strVal, ok := val.(string); ok {
				propSchema.Enum = append(propSchema.Enum, strVal)
			}
		}
	}

	if propSchema.Type == genai.TypeArray {
		if items, ok := propDef["items"].(map[string]interface{}); ok {
			propSchema.Items = convertPropertySchema(items)
		}
	}

	if propSchema.Type == genai.TypeObject {
		if props, ok := propDef["properties"].(map[string]interface{}); ok {
			propSchema.Properties = make(map[string]*genai.Schema)
			for nestedName, nestedDef := range props {
				if nestedDefMap, ok := nestedDef.(map[string]interface{}); ok {
					propSchema.Properties[nestedName] = convertPropertySchema(nestedDefMap)
				}
			}
		}
		if required, ok := propDef["required"].([]interface{}); ok {
			propSchema.Required = make([]string, 0, len(required))
			for _, req := range required {
				if reqStr, ok := req.(string); ok {
					propSchema.Required = append(propSchema.Required, reqStr)
				}
			}
		}
	}

	return propSchema
}

// mapJSONType maps JSON Schema types to Gemini Schema types
func mapJSONType(jsonType string) genai.Type {
	switch jsonType {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString // Default to string
	}
}
