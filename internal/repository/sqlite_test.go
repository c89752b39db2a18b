package repository

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"modernc.org/sqlite"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/gen/ent"
	"github.com/akhomyakov/docflow/gen/ent/enttest"
)

// sqlite3Driver adapts the pure-Go sqlite driver to the name ent's sqlite
// dialect expects, with foreign keys switched on per connection.
type sqlite3Driver struct {
	*sqlite.Driver
}

func (d sqlite3Driver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	exec, ok := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if !ok {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite connection does not support Exec")
	}
	if _, err := exec.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqlite3Driver{Driver: &sqlite.Driver{}})
}

var testCounter int

// openTestClient migrates a fresh in-memory database and returns a client
// bound to it.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	testCounter++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_fk=1", testCounter)
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { require.NoError(t, client.Close()) })
	return client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedApplication(t *testing.T, client *ent.Client) *ent.Application {
	t.Helper()
	return client.Application.Create().
		SetFilename("application.pdf").
		SetSourcePath("/data/uploads/application.pdf").
		SetFileExt("pdf").
		SetFormat(constants.PDF).
		SaveX(t.Context())
}
