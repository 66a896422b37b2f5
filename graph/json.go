package graph

import (
	"encoding/json"
	"fmt"
)

// pathJSON is the adjacently tagged wire shape of a Path: an "Id" tag
// carrying one vertex value, or a "Seq" tag carrying a non-empty list
// of edge values. The kernel defines this logical shape; transport
// encodings elsewhere reuse it unchanged.
type pathJSON struct {
	Tag     string          `json:"tag"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the path in its tagged shape.
func (p Path[V, E]) MarshalJSON() ([]byte, error) {
	var (
		content []byte
		err     error
		tag     string
	)
	if p.IsId() {
		tag = "Id"
		content, err = json.Marshal(p.vertex)
	} else {
		tag = "Seq"
		content, err = json.Marshal(p.edges)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(pathJSON{Tag: tag, Content: content})
}

// UnmarshalJSON decodes the tagged shape, rejecting unknown tags and
// empty sequences.
func (p *Path[V, E]) UnmarshalJSON(data []byte) error {
	var raw pathJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Tag {
	case "Id":
		var v V
		if err := json.Unmarshal(raw.Content, &v); err != nil {
			return err
		}
		*p = Id[V, E](v)
		return nil
	case "Seq":
		var edges []E
		if err := json.Unmarshal(raw.Content, &edges); err != nil {
			return err
		}
		seq, err := FromEdges[V](edges)
		if err != nil {
			return err
		}
		*p = seq
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPathTag, raw.Tag)
	}
}
