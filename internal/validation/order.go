package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"
)

const (
	msgRequired      = "required"
	msgExpectObject  = "expected object"
	msgExpectArray   = "expected array"
	msgExpectInteger = "expected integer"
	msgExpectString  = "expected string"
	msgMinQty        = "must be greater than or equal to 1"
)

// ValidateOrder parses body as {"data": [{"productId", "qty", "note"?}]}.
// On success the typed request is returned with unknown keys dropped.
// Product ids are not checked against the catalog.
func ValidateOrder(body []byte) (models.OrderRequest, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil || root == nil {
		return models.OrderRequest{}, &ValidationError{Issues: []Issue{{Message: "malformed JSON body: " + msgExpectObject}}}
	}

	v := &validator{}

	rawData, ok := root["data"]
	if !ok {
		v.add("data", msgRequired)
		return models.OrderRequest{}, v.err()
	}

	var items []json.RawMessage
	if isNull(rawData) || json.Unmarshal(rawData, &items) != nil {
		v.add("data", msgExpectArray)
		return models.OrderRequest{}, v.err()
	}

	req := models.OrderRequest{Data: make([]models.OrderLine, 0, len(items))}
	for i, item := range items {
		line, ok := v.line(fmt.Sprintf("data.%d", i), item)
		if ok {
			req.Data = append(req.Data, line)
		}
	}

	if len(v.issues) > 0 {
		return models.OrderRequest{}, v.err()
	}
	return req, nil
}

type validator struct {
	issues []Issue
}

func (v *validator) add(path, message string) {
	v.issues = append(v.issues, Issue{Path: path, Message: message})
}

func (v *validator) err() error {
	return &ValidationError{Issues: v.issues}
}

func (v *validator) line(path string, raw json.RawMessage) (models.OrderLine, bool) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil {
		v.add(path, msgExpectObject)
		return models.OrderLine{}, false
	}

	before := len(v.issues)
	var line models.OrderLine

	if productID, ok := v.integer(path+".productId", fields["productId"]); ok {
		line.ProductID = productID
	}

	if qty, ok := v.integer(path+".qty", fields["qty"]); ok {
		if qty < 1 {
			v.add(path+".qty", msgMinQty)
		}
		line.Qty = qty
	}

	if rawNote, ok := fields["note"]; ok {
		var note string
		if isNull(rawNote) || json.Unmarshal(rawNote, &note) != nil {
			v.add(path+".note", msgExpectString)
		} else {
			line.Note = &note
		}
	}

	return line, len(v.issues) == before
}

// integer reads a required JSON number with no fractional part.
func (v *validator) integer(path string, raw json.RawMessage) (int64, bool) {
	if raw == nil {
		v.add(path, msgRequired)
		return 0, false
	}

	var f float64
	if isNull(raw) || json.Unmarshal(raw, &f) != nil {
		v.add(path, msgExpectInteger)
		return 0, false
	}

	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		v.add(path, msgExpectInteger)
		return 0, false
	}

	return int64(f), true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
