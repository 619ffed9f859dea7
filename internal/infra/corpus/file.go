package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yanqian/vedic-weekly/internal/domain/verses"
)

// LoadFile reads the verse corpus from a JSON file. Insertion order in the
// file is the tie-break order the recommender depends on, so it is
// preserved as-is.
func LoadFile(path string) ([]verses.VerseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return decode(data)
}

func decode(data []byte) ([]verses.VerseRecord, error) {
	var records []verses.VerseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("corpus entry %d has no id", i)
		}
	}
	return records, nil
}
