package corpus

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/yanqian/vedic-weekly/internal/domain/verses"
)

// LoadPostgres reads the verse corpus from Postgres. Rows are ordered by
// their explicit position column so the insertion-order tie-break survives
// a round trip through the database. Stored pgvector embeddings, when
// present, feed the vector matching backend.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool) ([]verses.VerseRecord, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, devanagari, transliteration, meaning, deity, source, tags, embedding
		FROM verses
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query verses: %w", err)
	}
	defer rows.Close()

	var records []verses.VerseRecord
	for rows.Next() {
		var (
			rec       verses.VerseRecord
			deity     *string
			embedding *pgvector.Vector
		)
		if err := rows.Scan(&rec.ID, &rec.Devanagari, &rec.Transliteration, &rec.Meaning, &deity, &rec.Source, &rec.Tags, &embedding); err != nil {
			return nil, fmt.Errorf("scan verse row: %w", err)
		}
		if deity != nil {
			rec.Deity = *deity
		}
		if embedding != nil {
			rec.Embedding = embedding.Slice()
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verse rows: %w", err)
	}
	return records, nil
}
