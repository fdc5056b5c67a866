package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"cvpipe/internal/domain"
)

// structuredCVSchema is the wire contract a structuring response must
// satisfy before any lenient repair. It pins the container shapes
// only: fields may be missing (the decoder fills defaults) and element
// types are repaired afterwards, but a field that is present with the
// wrong container type marks the whole response malformed.
const structuredCVSchema = `{
  "type": "object",
  "properties": {
    "contact_info": {
      "type": "object",
      "properties": {
        "emails": {"type": "array"},
        "phones": {"type": "array"}
      }
    },
    "professional_summary": {"type": "array"},
    "skills": {"type": "array"},
    "languages": {"type": "array"},
    "education": {"type": "array"},
    "experience": {"type": "array"},
    "projects": {"type": "array"}
  }
}`

var cvSchema = mustCompileSchema(structuredCVSchema)

func mustCompileSchema(src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("structured_cv.json", bytes.NewReader([]byte(src))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("structured_cv.json")
}

// DecodeStructured turns a raw backend response into a StructuredCV.
// The response is repaired, lifted out of the legacy scalar contact
// shape, checked against the wire schema and only then leniently
// normalized and decoded. It fails with domain.ErrMalformedResponse
// when no valid record can be recovered.
func DecodeStructured(raw string) (*domain.StructuredCV, error) {
	repaired := RepairJSON(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	liftLegacyContact(doc)

	if err := cvSchema.Validate(any(doc)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	normalizeDocument(doc)

	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	cv := domain.NewStructuredCV()
	if err := json.Unmarshal(buf, cv); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	cv.Normalize()
	return cv, nil
}

// liftLegacyContact rewrites the scalar "email"/"phone" keys some
// models still emit into the plural array fields. It runs before the
// schema gate; every other repair waits until after validation.
func liftLegacyContact(doc map[string]any) {
	contact, ok := doc["contact_info"].(map[string]any)
	if !ok {
		return
	}
	if v, ok := contact["email"]; ok {
		contact["emails"] = appendScalar(contact["emails"], v)
		delete(contact, "email")
	}
	if v, ok := contact["phone"]; ok {
		contact["phones"] = appendScalar(contact["phones"], v)
		delete(contact, "phone")
	}
}

// normalizeDocument repairs the shape drift left inside a validated
// document: missing top-level fields and non-string entries inside
// string arrays.
func normalizeDocument(doc map[string]any) {
	contact, ok := doc["contact_info"].(map[string]any)
	if !ok {
		contact = map[string]any{}
	}
	contact["emails"] = stringArray(contact["emails"])
	contact["phones"] = stringArray(contact["phones"])
	contact["linkedin"] = stringValue(contact["linkedin"])
	contact["address"] = stringValue(contact["address"])
	contact["name"] = stringValue(contact["name"])
	doc["contact_info"] = contact

	doc["professional_summary"] = stringArray(doc["professional_summary"])
	doc["skills"] = stringArray(doc["skills"])
	doc["languages"] = objectArray(doc["languages"], "language", "level")
	doc["education"] = entryArray(doc["education"], "date_range", "institution", "degree")
	doc["experience"] = entryArray(doc["experience"], "date_range", "company", "role")
	doc["projects"] = objectArray(doc["projects"], "title", "description")
}

func appendScalar(existing, v any) []any {
	arr, _ := existing.([]any)
	if s := stringValue(v); s != "" {
		for _, e := range arr {
			if stringValue(e) == s {
				return arr
			}
		}
		arr = append(arr, s)
	}
	return arr
}

func stringArray(v any) []any {
	arr, ok := v.([]any)
	if !ok {
		if s := stringValue(v); s != "" {
			return []any{s}
		}
		return []any{}
	}
	out := make([]any, 0, len(arr))
	for _, e := range arr {
		if s := stringValue(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// objectArray keeps only object elements and stringifies the named
// fields when present.
func objectArray(v any, stringFields ...string) []any {
	arr, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(arr))
	for _, e := range arr {
		obj, ok := e.(map[string]any)
		if !ok {
			continue
		}
		for _, f := range stringFields {
			if raw, ok := obj[f]; ok {
				obj[f] = stringValue(raw)
			}
		}
		out = append(out, obj)
	}
	return out
}

// entryArray keeps education/experience objects and forces their
// details to string arrays.
func entryArray(v any, stringFields ...string) []any {
	arr := objectArray(v, stringFields...)
	for _, e := range arr {
		obj := e.(map[string]any)
		if _, ok := obj["details"]; ok {
			obj["details"] = stringArray(obj["details"])
		}
	}
	return arr
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		buf, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(buf)
	}
}
