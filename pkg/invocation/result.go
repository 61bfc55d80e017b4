package invocation

import (
	"bytes"
	"encoding/json"
)

const ResultTypeImage = "image"

// ResultShape tells how the raw result payload was laid out.
type ResultShape int

const (
	// ResultShapeOther covers strings, numbers, null and anything malformed.
	ResultShapeOther ResultShape = iota
	ResultShapeObject
	ResultShapeSequence
)

// ImageSource is the payload of an image result.
type ImageSource struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// DataURI returns the image as data:<media_type>;base64,<data>.
func (s ImageSource) DataURI() string {
	return "data:" + s.MediaType + ";base64," + s.Data
}

// ResultItem is one tagged result object.
type ResultItem struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *ImageSource `json:"source,omitempty"`
}

// Result is the value a tool returned: a single object, a sequence of
// objects, or something else entirely.
type Result struct {
	Shape ResultShape
	Items []ResultItem
	Raw   json.RawMessage
}

func decodeResult(data json.RawMessage) *Result {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	res := &Result{Raw: trimmed}

	switch trimmed[0] {
	case '{':
		var item ResultItem
		if err := json.Unmarshal(trimmed, &item); err == nil {
			res.Shape = ResultShapeObject
			res.Items = []ResultItem{item}
		}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err == nil {
			res.Shape = ResultShapeSequence
			res.Items = make([]ResultItem, len(elems))
			for i, elem := range elems {
				// Non-object elements stay as zero items so positions are kept.
				_ = json.Unmarshal(elem, &res.Items[i])
			}
		}
	}

	return res
}

// FindImage returns the image carried by a completed invocation: the first
// image of a result sequence, or the result itself when it is a single image.
func (inv *ToolInvocation) FindImage() (*ResultItem, bool) {
	if inv.State != StateResult || inv.Result == nil {
		return nil, false
	}

	switch inv.Result.Shape {
	case ResultShapeSequence:
		for i := range inv.Result.Items {
			if inv.Result.Items[i].Type == ResultTypeImage {
				return &inv.Result.Items[i], true
			}
		}
	case ResultShapeObject:
		if len(inv.Result.Items) == 1 && inv.Result.Items[0].Type == ResultTypeImage {
			return &inv.Result.Items[0], true
		}
	}

	return nil, false
}

// ImageURI returns the data URI of the invocation's image, if it has one
// with a source.
func (inv *ToolInvocation) ImageURI() (string, bool) {
	img, ok := inv.FindImage()
	if !ok || img.Source == nil {
		return "", false
	}
	return img.Source.DataURI(), true
}
