// Package seed fills an existing college database with fake rows for
// local development. It never creates or alters tables.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jaswdr/faker"
	"github.com/yourbasic/graph"

	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/core"
	"github.com/Annany2002/querygate/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// Order returns tables so that every table comes after the tables it depends on.
func Order(tables []Table) ([]Table, error) {
	index := make(map[string]int, len(tables))
	for i, t := range tables {
		index[t.Name] = i
	}

	g := graph.New(len(tables))
	for i, t := range tables {
		for _, dep := range t.DependsOn {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("table %s depends on unknown table %s", t.Name, dep)
			}
			g.Add(j, i) // parent before child
		}
	}

	order, ok := graph.TopSort(g)
	if !ok {
		return nil, fmt.Errorf("foreign key dependencies contain a cycle")
	}

	sorted := make([]Table, 0, len(order))
	for _, i := range order {
		sorted = append(sorted, tables[i])
	}
	return sorted, nil
}

// Seeder inserts generated rows into the college tables.
type Seeder struct {
	db     *sql.DB
	driver string
	rows   int
	faker  faker.Faker
	ids    map[string][]int64
}

func NewSeeder(db *sql.DB, driver string, rowsPerTable int) *Seeder {
	return &Seeder{
		db:     db,
		driver: driver,
		rows:   rowsPerTable,
		faker:  faker.New(),
		ids:    make(map[string][]int64),
	}
}

// Run seeds every table in dependency order and returns the rows inserted per table.
func (s *Seeder) Run(ctx context.Context, tables []Table) (map[string]int, error) {
	ordered, err := Order(tables)
	if err != nil {
		return nil, err
	}

	inserted := make(map[string]int, len(ordered))
	for _, table := range ordered {
		n, err := s.seedTable(ctx, table)
		if err != nil {
			return inserted, fmt.Errorf("seed %s: %w", table.Name, err)
		}
		inserted[table.Name] = n
		customLog.Infof("Seed: inserted %d row(s) into %s", n, table.Name)
	}
	return inserted, nil
}

func (s *Seeder) seedTable(ctx context.Context, table Table) (int, error) {
	if !core.IsValidIdentifier(table.Name) || !core.IsValidIdentifier(table.PrimaryKey) {
		return 0, fmt.Errorf("invalid identifier in table %q", table.Name)
	}
	for _, col := range table.Columns {
		if !core.IsValidIdentifier(col) {
			return 0, fmt.Errorf("invalid column name %q", col)
		}
	}

	// Explicit keys continue after existing rows so children can reference them.
	var maxID int64
	maxSQL := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s", table.PrimaryKey, table.Name)
	if err := s.db.QueryRowContext(ctx, maxSQL).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("read max %s: %w", table.PrimaryKey, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.insertSQL(table))
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, s.rows)
	for i := 1; i <= s.rows; i++ {
		id := maxID + int64(i)
		args := append([]any{id}, table.Row(s)...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	s.ids[table.Name] = append(s.ids[table.Name], ids...)
	return len(ids), nil
}

func (s *Seeder) insertSQL(table Table) string {
	placeholders := make([]string, len(table.Columns))
	for i := range placeholders {
		if s.driver == config.DriverPostgres {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		} else {
			placeholders[i] = "?"
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table.Name, strings.Join(table.Columns, ", "), strings.Join(placeholders, ", "))
}

// pick returns a random key already inserted into table, or nil when there is none.
func (s *Seeder) pick(table string) any {
	ids := s.ids[table]
	if len(ids) == 0 {
		return nil
	}
	return ids[s.faker.IntBetween(0, len(ids)-1)]
}
