package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourcatalog-service/internal/domain/entity"
)

// DiffSnapshots compares the labelled fields of two snapshots and returns one
// Change per differing field, in label order. A nil old snapshot is a
// creation and a nil new snapshot a deletion. Fields outside labels are ignored.
func DiffSnapshots(old, new entity.Snapshot, labels []entity.FieldLabel) []entity.Change {
	changes := make([]entity.Change, 0)
	for _, fl := range labels {
		from := stringify(old[fl.Key])
		to := stringify(new[fl.Key])
		if from != to {
			changes = append(changes, entity.Change{Field: fl.Label, From: from, To: to})
		}
	}
	return changes
}

// stringify renders an audited value; null and blank become entity.EmptyValue
func stringify(v interface{}) string {
	var s string
	switch val := v.(type) {
	case nil:
		return entity.EmptyValue
	case string:
		s = val
	case *string:
		if val == nil {
			return entity.EmptyValue
		}
		s = *val
	case entity.Status:
		s = string(val)
	case *int:
		if val == nil {
			return entity.EmptyValue
		}
		s = strconv.Itoa(*val)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case *float64:
		if val == nil {
			return entity.EmptyValue
		}
		s = strconv.FormatFloat(*val, 'f', -1, 64)
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	case time.Time:
		if val.IsZero() {
			return entity.EmptyValue
		}
		s = val.UTC().Format(time.RFC3339)
	case []string:
		s = strings.Join(val, ", ")
	default:
		s = fmt.Sprint(val)
	}
	if strings.TrimSpace(s) == "" {
		return entity.EmptyValue
	}
	return s
}
