package types

type OK struct {
	IsOK bool `json:"ok"`
}

type CouchDBError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// BaseDocument carries the CouchDB envelope every stored document shares.
type BaseDocument struct {
	ID  string `json:"_id,omitempty"`
	Rev string `json:"_rev,omitempty"`
}

// SaveResponse is what CouchDB returns from a document PUT/DELETE.
type SaveResponse struct {
	IsOK bool   `json:"ok"`
	ID   string `json:"id,omitempty"`
	Rev  string `json:"rev,omitempty"`
}

// FindResponse is the envelope of a mango _find query.
type FindResponse struct {
	Docs     []RawDocument `json:"docs"`
	Bookmark string        `json:"bookmark,omitempty"`
	Warning  string        `json:"warning,omitempty"`
}

// RawDocument defers per-resource decoding to the services.
type RawDocument []byte

func (r RawDocument) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawDocument) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}
