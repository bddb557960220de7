package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/engine/pipeline"
	"github.com/weftworks/weft/pkg/paths"
)

// queryPlaceholderRe matches {dotted.path} placeholders in query text.
var queryPlaceholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_\-]+(?:\.[a-zA-Z0-9_\-]+)*)\}`)

// Connection pools are process-global per credential DSN. A run must never
// hold a connection across a suspension point; every query opens, executes
// and returns to the pool within one call.
var (
	sqlPoolsMu sync.Mutex
	sqlPools   = make(map[string]*sql.DB)

	mongoClientsMu sync.Mutex
	mongoClients   = make(map[string]*mongo.Client)
)

// DataQueries executes data_query actions and pipeline query steps against
// tenanted data sources. It is bound to the run owner so credential lookups
// enforce ownership.
type DataQueries struct {
	creds   credentials.Client
	ownerID string
}

// NewDataQueries binds a query runner to a run owner.
func NewDataQueries(creds credentials.Client, ownerID string) *DataQueries {
	return &DataQueries{creds: creds, ownerID: ownerID}
}

var _ pipeline.QueryRunner = (*DataQueries)(nil)

// RunQuery implements pipeline.QueryRunner. The query's {path} placeholders
// are bound as driver parameters, never interpolated into the query text.
func (d *DataQueries) RunQuery(ctx context.Context, credentialRef, source, collection, query string, inputs map[string]any) (map[string]any, error) {
	desc, err := d.creds.Get(ctx, d.ownerID, credentialRef)
	if err != nil {
		return nil, fmt.Errorf("credential %q: %w", credentialRef, err)
	}

	switch source {
	case "postgres":
		return d.runSQL(ctx, "pgx", desc.DSN, query, inputs, func(n int) string { return fmt.Sprintf("$%d", n) })
	case "mysql":
		return d.runSQL(ctx, "mysql", desc.DSN, query, inputs, func(int) string { return "?" })
	case "sqlite":
		return d.runSQL(ctx, "sqlite3", desc.DSN, query, inputs, func(int) string { return "?" })
	case "mongodb":
		return d.runMongo(ctx, desc, collection, query, inputs)
	default:
		return nil, fmt.Errorf("unsupported data source %q", source)
	}
}

func (d *DataQueries) runSQL(ctx context.Context, driver, dsn, query string, inputs map[string]any, placeholder func(int) string) (map[string]any, error) {
	db, err := sqlPool(driver, dsn)
	if err != nil {
		return nil, err
	}

	bound, args, err := bindPlaceholders(query, inputs, placeholder)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, bound, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return map[string]any{
		"query_result": result,
		"row_count":    len(result),
	}, nil
}

// runMongo treats query as a JSON filter document with {path} placeholders
// substituted before decoding. The database name comes from the credential's
// "database" param.
func (d *DataQueries) runMongo(ctx context.Context, desc *credentials.Descriptor, collection, query string, inputs map[string]any) (map[string]any, error) {
	dbName := desc.Params["database"]
	if dbName == "" {
		return nil, fmt.Errorf("mongodb credential missing database param")
	}
	client, err := mongoClient(desc.DSN)
	if err != nil {
		return nil, err
	}

	filter, err := renderMongoFilter(query, inputs)
	if err != nil {
		return nil, err
	}

	cursor, err := client.Database(dbName).Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("executing find: %w", err)
	}
	var result []map[string]any
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decoding documents: %w", err)
	}

	return map[string]any{
		"query_result": result,
		"row_count":    len(result),
	}, nil
}

// bindPlaceholders replaces {path} tokens with driver placeholders and
// collects the bound values in occurrence order.
func bindPlaceholders(query string, inputs map[string]any, placeholder func(int) string) (string, []any, error) {
	var args []any
	var missing []string
	bound := queryPlaceholderRe.ReplaceAllStringFunc(query, func(match string) string {
		path := match[1 : len(match)-1]
		v, ok := lookupInput(inputs, path)
		if !ok {
			missing = append(missing, path)
			return match
		}
		args = append(args, v)
		return placeholder(len(args))
	})
	if len(missing) > 0 {
		return "", nil, fmt.Errorf("query references unresolved inputs: %s", strings.Join(missing, ", "))
	}
	return bound, args, nil
}

// renderMongoFilter decodes the query as a JSON document after substituting
// placeholders with their JSON-encoded values.
func renderMongoFilter(query string, inputs map[string]any) (map[string]any, error) {
	var missing []string
	rendered := queryPlaceholderRe.ReplaceAllStringFunc(query, func(match string) string {
		path := match[1 : len(match)-1]
		v, ok := lookupInput(inputs, path)
		if !ok {
			missing = append(missing, path)
			return match
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			missing = append(missing, path)
			return match
		}
		return string(encoded)
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("filter references unresolved inputs: %s", strings.Join(missing, ", "))
	}
	var filter map[string]any
	if err := json.Unmarshal([]byte(rendered), &filter); err != nil {
		return nil, fmt.Errorf("filter is not a JSON document: %w", err)
	}
	return filter, nil
}

// lookupInput resolves a placeholder first as a literal input key (resolved
// requires are keyed by their full dotted path), then as a nested path.
func lookupInput(inputs map[string]any, path string) (any, bool) {
	if v, ok := inputs[path]; ok {
		return v, true
	}
	v := paths.Get(inputs, path)
	if paths.IsMissing(v) {
		return nil, false
	}
	return v, true
}

func sqlPool(driver, dsn string) (*sql.DB, error) {
	key := driver + "|" + dsn
	sqlPoolsMu.Lock()
	defer sqlPoolsMu.Unlock()
	if db, ok := sqlPools[key]; ok {
		return db, nil
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s connection: %w", driver, err)
	}
	sqlPools[key] = db
	return db, nil
}

func mongoClient(dsn string) (*mongo.Client, error) {
	mongoClientsMu.Lock()
	defer mongoClientsMu.Unlock()
	if client, ok := mongoClients[dsn]; ok {
		return client, nil
	}
	client, err := mongo.Connect(options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	mongoClients[dsn] = client
	return client, nil
}
