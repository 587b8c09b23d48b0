// Package validation checks raw provider records before they reach the store.
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xeipuuv/gojsonschema"

	"gamecatalog/backend/internal/models"
)

//go:embed record.schema.json
var recordSchema []byte

var schema = mustCompile(recordSchema)

func mustCompile(doc []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("validation: bad record schema: %v", err))
	}
	return s
}

// RTPScale is the number of decimal places the store keeps for RTP.
const RTPScale = 2

// Record is a validated, normalized provider game.
type Record struct {
	Provider   string
	ExternalID string
	Title      string
	Category   models.Category
	IsActive   bool
	RTP        decimal.NullDecimal
}

// Error is returned when a single record breaks the schema.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return strings.Join(e.Problems, "; ")
}

func invalid(problems ...string) *Error {
	return &Error{Problems: problems}
}

// Validate checks raw against the record schema and returns it normalized.
// The provider argument always wins over any provider field in raw.
func Validate(raw any, provider string) (Record, error) {
	res, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return Record{}, invalid(fmt.Sprintf("record is not valid JSON: %v", err))
	}
	if !res.Valid() {
		return Record{}, invalid(describe(res.Errors())...)
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return Record{}, invalid("record must be an object")
	}

	active, problem := activeFlag(fields)
	if problem != "" {
		return Record{}, invalid(problem)
	}

	rtp, err := parseRTP(fields["rtp"])
	if err != nil {
		return Record{}, invalid("rtp: " + err.Error())
	}

	return Record{
		Provider:   provider,
		ExternalID: fields["id"].(string),
		Title:      fields["title"].(string),
		Category:   models.Category(fields["category"].(string)),
		IsActive:   active,
		RTP:        rtp,
	}, nil
}

// activeFlag prefers "active"; "is_active" is only read, and type-checked,
// when "active" is absent.
func activeFlag(fields map[string]any) (bool, string) {
	if v, ok := fields["active"].(bool); ok {
		return v, ""
	}
	raw, ok := fields["is_active"]
	if !ok {
		return false, "active: is required"
	}
	v, ok := raw.(bool)
	if !ok {
		return false, "is_active: must be boolean"
	}
	return v, ""
}

func parseRTP(v any) (decimal.NullDecimal, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch n := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case json.Number:
		d, err = decimal.NewFromString(n.String())
	case float64:
		d = decimal.NewFromFloat(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	default:
		return decimal.NullDecimal{}, fmt.Errorf("must be a number, got %T", v)
	}
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("must be a number: %w", err)
	}
	return decimal.NewNullDecimal(d.Round(RTPScale)), nil
}

func describe(errs []gojsonschema.ResultError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, message(e))
	}
	sort.Strings(out)
	return out
}

func message(e gojsonschema.ResultError) string {
	field := e.Field()
	switch e.Type() {
	case "required":
		if p, ok := e.Details()["property"].(string); ok {
			return p + ": is required"
		}
	case "enum":
		return field + ": must be one of " + joinCategories()
	case "string_gte":
		return field + ": must not be empty"
	case "number_gte", "number_lte":
		return field + ": must be between 0 and 100"
	case "invalid_type":
		if field == "(root)" {
			return "record must be an object"
		}
		return fmt.Sprintf("%s: must be %v", field, e.Details()["expected"])
	}
	return field + ": " + e.Description()
}

func joinCategories() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
