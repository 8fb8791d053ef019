package records

import (
	"encoding/json"
	"fmt"
)

// decodeEach decodes every element independently. Elements that fail to
// decode are dropped so that one malformed record only hides itself.
func decodeEach[T any](raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// DecodeList decodes a JSON array of records, dropping elements that do not
// decode. Only a body that is not an array at all is an error.
func DecodeList[T any](body []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode record list: %w", err)
	}
	return decodeEach[T](raw), nil
}

// TransactionPage is the envelope of the admin transaction list.
type TransactionPage struct {
	Results []Transaction
	Count   int
}

// DecodeTransactionPage decodes {"results": [...], "count": n}.
func DecodeTransactionPage(body []byte) (TransactionPage, error) {
	var env struct {
		Results []json.RawMessage `json:"results"`
		Count   int               `json:"count"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return TransactionPage{}, fmt.Errorf("decode transaction page: %w", err)
	}
	return TransactionPage{
		Results: decodeEach[Transaction](env.Results),
		Count:   env.Count,
	}, nil
}

// ReviewQueue is the envelope of the document review endpoint.
type ReviewQueue struct {
	Documents []PendingDocument
	Total     int
}

// DecodeReviewQueue decodes {"documents": [...], "total_count": n}.
func DecodeReviewQueue(body []byte) (ReviewQueue, error) {
	var env struct {
		Documents []json.RawMessage `json:"documents"`
		Total     int               `json:"total_count"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ReviewQueue{}, fmt.Errorf("decode review queue: %w", err)
	}
	return ReviewQueue{
		Documents: decodeEach[PendingDocument](env.Documents),
		Total:     env.Total,
	}, nil
}
