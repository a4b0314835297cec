package vectorindex

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/abirabbas/portfolio-api/internal/database"
	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/embedding"
)

var collectionNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Postgres is the remote index, backed by a pgvector collection table.
// Bootstrap creates the table if missing and re-upserts the full corpus,
// mirroring how the passage set is fixed at process start. An unreachable
// database at construction is a hard failure.
type Postgres struct {
	pool       *pgxpool.Pool
	embedder   embedding.Embedder
	collection string
}

// NewPostgres connects, provisions the collection, and indexes the given
// passages.
func NewPostgres(ctx context.Context, databaseURL, collection string, embedder embedding.Embedder, entries []domain.PassageEntry) (*Postgres, error) {
	if !collectionNamePattern.MatchString(collection) {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, fmt.Sprintf("invalid collection name %q", collection))
	}

	pool, err := database.NewPool(ctx, database.Config{URL: databaseURL, MaxConns: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vector database: %w", err)
	}

	idx := &Postgres{pool: pool, embedder: embedder, collection: collection}
	if err := idx.bootstrap(ctx, entries); err != nil {
		pool.Close()
		return nil, err
	}

	return idx, nil
}

func (p *Postgres) bootstrap(ctx context.Context, entries []domain.PassageEntry) error {
	if _, err := p.pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to enable pgvector extension: %w", err)
	}

	createTable := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			position INT NOT NULL,
			content TEXT NOT NULL,
			metadata JSONB NOT NULL,
			embedding VECTOR(%d) NOT NULL
		)`, p.collection, p.embedder.Dimensions())
	if _, err := p.pool.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create collection table: %w", err)
	}

	// The corpus is fixed per process, so each bootstrap replaces the
	// collection wholesale rather than diffing.
	if _, err := p.pool.Exec(ctx, fmt.Sprintf(`TRUNCATE %s`, p.collection)); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	for i, entry := range entries {
		vec, err := p.embedder.Embed(ctx, entry.Text)
		if err != nil {
			return fmt.Errorf("failed to embed passage %q: %w", entry.Metadata["act"], err)
		}

		metadata, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}

		insert := fmt.Sprintf(
			`INSERT INTO %s (id, position, content, metadata, embedding) VALUES ($1, $2, $3, $4, $5)`,
			p.collection,
		)
		_, err = p.pool.Exec(ctx, insert,
			uuid.NewString(),
			i,
			entry.Text,
			metadata,
			pgvector.NewVector(vec),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert passage: %w", err)
		}
	}

	return nil
}

func (p *Postgres) Search(ctx context.Context, query string, k int) ([]Match, error) {
	queryVec, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	// Cosine distance ordering; position breaks ties by insertion order.
	sql := fmt.Sprintf(`
		SELECT content, metadata, 1.0 / (1.0 + (embedding <=> $1)) AS score
		FROM %s
		ORDER BY embedding <=> $1, position
		LIMIT $2`, p.collection)

	rows, err := p.pool.Query(ctx, sql, pgvector.NewVector(queryVec), k)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer rows.Close()

	matches := make([]Match, 0, k)
	for rows.Next() {
		var match Match
		var metadata []byte
		if err := rows.Scan(&match.Text, &metadata, &match.Score); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metadata, &match.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
