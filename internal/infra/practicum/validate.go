package practicum

import (
	"encoding/json"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// ValidateResponse checks the decoded body against the documented shape and
// returns its homework records, most recent first. A missing current_date is
// logged but not treated as an error.
func ValidateResponse(response any, log *logrus.Entry) ([]homework.Record, error) {
	body, ok := response.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response is %T, expected an object", homework.ErrTypeMismatch, response)
	}

	rawHomeworks, ok := body["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: homeworks", homework.ErrMissingField)
	}

	if _, ok := body["current_date"]; !ok {
		log.Error("API response has no current_date key")
	}

	items, ok := rawHomeworks.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: homeworks is %T, expected an array", homework.ErrTypeMismatch, rawHomeworks)
	}

	records := make([]homework.Record, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: homeworks[%d] is %T, expected an object", homework.ErrTypeMismatch, i, item)
		}
		records = append(records, homework.Record(rec))
	}
	return records, nil
}

// CurrentDate extracts current_date from a decoded response, if present and integral.
func CurrentDate(response any) (int64, bool) {
	body, ok := response.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := body["current_date"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}
