// Command inspector is a read-only reporting tool for the kunsthaus
// database. It runs out of process from the API server, opens an
// independent connection with default_transaction_read_only set, and
// never takes locks, so it is safe to use while the server is handling
// writes.
//
// Without flags it prints a schema and row-count overview. With -table
// it dumps rows from one table, and -csv exports that table to a file.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// inspectable tables; flag values outside this list are rejected.
var knownTables = []string{"users", "artists", "artworks"}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	table := flag.String("table", "", "Table to dump (users, artists, artworks)")
	limit := flag.Int("limit", 20, "Maximum rows to dump")
	csvPath := flag.String("csv", "", "Export the selected table to this CSV file")
	flag.Parse()

	_ = godotenv.Load(*configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	port, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}

	// Independent read-only connection: every transaction this tool
	// opens is forced read-only by the server.
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&default_transaction_read_only=on",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		port,
		getEnv("POSTGRES_DB", "kunsthaus"),
	)

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	switch {
	case *table != "" && *csvPath != "":
		err = exportCSV(ctx, db, *table, *csvPath)
	case *table != "":
		err = dumpTable(ctx, db, *table, *limit)
	default:
		err = printOverview(ctx, db)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func validTable(name string) bool {
	for _, t := range knownTables {
		if t == name {
			return true
		}
	}
	return false
}

// printOverview renders row counts and column definitions for every
// known table.
func printOverview(ctx context.Context, db *sqlx.DB) error {
	counts := tablewriter.NewWriter(os.Stdout)
	if err := counts.Append([]string{"Table", "Rows"}); err != nil {
		return err
	}

	for _, name := range knownTables {
		var count int64
		if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+name); err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		if err := counts.Append([]string{name, strconv.FormatInt(count, 10)}); err != nil {
			return err
		}
	}
	if err := counts.Render(); err != nil {
		return err
	}

	const columnsQuery = `
		SELECT table_name, column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position
	`

	rows, err := db.QueryxContext(ctx, columnsQuery, knownTables)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	defer rows.Close()

	schema := tablewriter.NewWriter(os.Stdout)
	if err := schema.Append([]string{"Table", "Column", "Type", "Nullable"}); err != nil {
		return err
	}
	for rows.Next() {
		var tableName, columnName, dataType, isNullable string
		if err := rows.Scan(&tableName, &columnName, &dataType, &isNullable); err != nil {
			return err
		}
		if err := schema.Append([]string{tableName, columnName, dataType, isNullable}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return schema.Render()
}

// dumpTable renders up to limit rows of the table.
func dumpTable(ctx context.Context, db *sqlx.DB, table string, limit int) error {
	if !validTable(table) {
		return fmt.Errorf("unknown table %q", table)
	}

	rows, err := db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY id LIMIT %d", table, limit))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	out := tablewriter.NewWriter(os.Stdout)
	if err := out.Append(cols); err != nil {
		return err
	}

	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return err
		}
		record := make([]string, len(vals))
		for i, v := range vals {
			record[i] = formatValue(v)
		}
		if err := out.Append(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return out.Render()
}

// exportCSV writes every row of the table to path, header first.
func exportCSV(ctx context.Context, db *sqlx.DB, table, path string) error {
	if !validTable(table) {
		return fmt.Errorf("unknown table %q", table)
	}

	rows, err := db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY id", table))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return err
	}

	total := 0
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return err
		}
		record := make([]string, len(vals))
		for i, v := range vals {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
		total++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	fmt.Printf("exported %d rows from %s to %s\n", total, table, path)
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
