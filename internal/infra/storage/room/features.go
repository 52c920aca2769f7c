package room

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// featureList оснащение комнаты из колонки rooms.features
// Колонка хранит JSON-массив строк: ["Projector","Whiteboard"]
type featureList []string

// Scan реализует sql.Scanner
// NULL, пустая строка и JSON null дают пустой список
func (f *featureList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("features: unsupported column type %T", src)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("features: %w", err)
	}
	*f = list
	return nil
}
