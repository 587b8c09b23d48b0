package service

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrNotArray is returned by DecodeBatch when the payload is not a JSON array.
var ErrNotArray = errors.New("request body must be a JSON array of records")

// DecodeBatch reads a JSON array of raw records. Numbers stay json.Number so
// RTP values reach validation unrounded.
func DecodeBatch(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, ErrNotArray
	}
	records, ok := payload.([]any)
	if !ok {
		return nil, ErrNotArray
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrNotArray
	}
	return records, nil
}
