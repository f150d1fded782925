// internal/dataset/loader.go
package dataset

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"career-match/internal/common/config"
	apperrors "career-match/internal/common/errors"
)

//go:embed data/*.json
var embedded embed.FS

const (
	questionsFile = "questions.json"
	taxonomyFile  = "taxonomy.json"
	catalogFile   = "catalog.json"
)

const (
	createDatasetTable = `CREATE TABLE IF NOT EXISTS career_datasets (
	version    TEXT PRIMARY KEY,
	questions  JSONB NOT NULL,
	taxonomy   JSONB NOT NULL,
	catalog    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

	selectLatestDataset = `SELECT version, questions, taxonomy, catalog FROM career_datasets ORDER BY created_at DESC LIMIT 1`

	selectDatasetVersion = `SELECT version, questions, taxonomy, catalog FROM career_datasets WHERE version = $1`

	upsertDataset = `INSERT INTO career_datasets (version, questions, taxonomy, catalog)
VALUES ($1, $2, $3, $4)
ON CONFLICT (version) DO UPDATE SET
	questions = EXCLUDED.questions,
	taxonomy = EXCLUDED.taxonomy,
	catalog = EXCLUDED.catalog,
	created_at = NOW()`
)

// RowQuerier is satisfied by *sql.DB and database.PostgresClient.
type RowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Execer is satisfied by *sql.DB and database.PostgresClient.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Load builds the dataset from the configured source. pg is only consulted
// for the postgres source and may be nil otherwise.
func Load(ctx context.Context, cfg config.DatasetConfig, pg RowQuerier) (*Dataset, error) {
	switch cfg.Source {
	case "", config.DatasetSourceEmbedded:
		return LoadEmbedded()
	case config.DatasetSourceFile:
		return LoadDir(cfg.Path)
	case config.DatasetSourcePostgres:
		if pg == nil {
			return nil, apperrors.NewDatasetLoadFailedError(cfg.Source, errors.New("no postgres connection"))
		}
		return LoadFromPostgres(ctx, pg, cfg.Version)
	default:
		return nil, apperrors.NewDatasetLoadFailedError(cfg.Source, fmt.Errorf("unknown dataset source %q", cfg.Source))
	}
}

// LoadEmbedded loads the dataset compiled into the binary.
func LoadEmbedded() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, apperrors.NewDatasetLoadFailedError(config.DatasetSourceEmbedded, err)
	}
	return loadFS(sub, config.DatasetSourceEmbedded)
}

// LoadDir loads questions.json, taxonomy.json and catalog.json from dir.
func LoadDir(dir string) (*Dataset, error) {
	if dir == "" {
		return nil, apperrors.NewDatasetLoadFailedError(config.DatasetSourceFile, errors.New("dataset path is required"))
	}
	return loadFS(os.DirFS(dir), config.DatasetSourceFile)
}

func loadFS(fsys fs.FS, source string) (*Dataset, error) {
	var docs Documents
	files := []struct {
		name string
		into interface{}
	}{
		{questionsFile, &docs.Questionnaire},
		{taxonomyFile, &docs.Taxonomy},
		{catalogFile, &docs.Catalog},
	}

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, apperrors.NewDatasetLoadFailedError(source, err)
		}
		if err := json.Unmarshal(data, f.into); err != nil {
			return nil, apperrors.NewDatasetLoadFailedError(source, fmt.Errorf("%s: %w", f.name, err))
		}
	}
	return build(docs)
}

// LoadFromPostgres reads one row of career_datasets: the pinned version, or
// the most recently created row when version is empty.
func LoadFromPostgres(ctx context.Context, db RowQuerier, version string) (*Dataset, error) {
	var row *sql.Row
	if version == "" {
		row = db.QueryRowContext(ctx, selectLatestDataset)
	} else {
		row = db.QueryRowContext(ctx, selectDatasetVersion, version)
	}

	var (
		rowVersion                   string
		questions, taxonomy, catalog []byte
	)
	if err := row.Scan(&rowVersion, &questions, &taxonomy, &catalog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("no dataset row for version %q", version)
		}
		return nil, apperrors.NewDatasetLoadFailedError(config.DatasetSourcePostgres, err)
	}

	docs := Documents{Version: rowVersion}
	if err := json.Unmarshal(questions, &docs.Questionnaire); err != nil {
		return nil, apperrors.NewDatasetLoadFailedError(config.DatasetSourcePostgres, fmt.Errorf("questions: %w", err))
	}
	if err := json.Unmarshal(taxonomy, &docs.Taxonomy); err != nil {
		return nil, apperrors.NewDatasetLoadFailedError(config.DatasetSourcePostgres, fmt.Errorf("taxonomy: %w", err))
	}
	if err := json.Unmarshal(catalog, &docs.Catalog); err != nil {
		return nil, apperrors.NewDatasetLoadFailedError(config.DatasetSourcePostgres, fmt.Errorf("catalog: %w", err))
	}
	return build(docs)
}

// Publish stores ds in career_datasets under its version, creating the table
// when needed.
func Publish(ctx context.Context, db Execer, ds *Dataset) error {
	docs := ds.Documents()
	questions, err := json.Marshal(docs.Questionnaire)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	taxonomy, err := json.Marshal(docs.Taxonomy)
	if err != nil {
		return fmt.Errorf("marshal taxonomy: %w", err)
	}
	catalog, err := json.Marshal(docs.Catalog)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if _, err := db.ExecContext(ctx, createDatasetTable); err != nil {
		return fmt.Errorf("create career_datasets: %w", err)
	}
	if _, err := db.ExecContext(ctx, upsertDataset, ds.Version(), questions, taxonomy, catalog); err != nil {
		return fmt.Errorf("store dataset %s: %w", ds.Version(), err)
	}
	return nil
}

func build(docs Documents) (*Dataset, error) {
	ds, err := New(docs)
	if err != nil {
		return nil, apperrors.NewDatasetInvalidError(err)
	}
	return ds, nil
}
