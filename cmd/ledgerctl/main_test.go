package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dongledger/internal/ledger"
	"github.com/mmynk/dongledger/internal/report"
	"github.com/mmynk/dongledger/internal/service"
	"github.com/mmynk/dongledger/internal/storage/memory"
	"github.com/mmynk/dongledger/pkg/api/apiconnect"
)

const importFixture = `{
  "appName": "Office",
  "theme": "ocean",
  "employees": [{"id": "p1", "name": "Sara"}, {"id": "p2", "name": "Reza"}],
  "items": [{"id": "i1", "name": "Tea", "price": 500}],
  "expenses": [
    {"id": "t1-p1", "transactionId": "t1", "employeeId": "p1", "employeeName": "Sara", "amount": 750, "date": "1403/01/01", "description": "Tea (×3)", "isSettled": false},
    {"id": "t1-p2", "transactionId": "t1", "employeeId": "p2", "employeeName": "Reza", "amount": 750, "date": "1403/01/01", "description": "Tea (×3)", "isSettled": true}
  ]
}`

func startServer(t *testing.T) string {
	t.Helper()

	book, err := ledger.OpenBook(context.Background(), memory.New(), nil)
	require.NoError(t, err)

	path, handler := apiconnect.NewLedgerServiceHandler(service.NewLedgerService(book, report.New("en")))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func ctl(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-server", url}, args...), &out, http.DefaultClient)
	return out.String(), err
}

func TestImportExportRoundTrip(t *testing.T) {
	url := startServer(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(in, []byte(importFixture), 0o644))

	out, err := ctl(t, url, "import", in)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 participants, 1 items, 2 expense records\n", out)

	exported := filepath.Join(dir, "out.json")
	_, err = ctl(t, url, "export", "-o", exported)
	require.NoError(t, err)

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"participants"`)
	assert.NotContains(t, string(data), `"employees"`)

	stdout, err := ctl(t, url, "export")
	require.NoError(t, err)
	assert.Equal(t, string(data), stdout)
}

func TestBalancesAndReport(t *testing.T) {
	url := startServer(t)

	out, err := ctl(t, url, "balances")
	require.NoError(t, err)
	assert.Equal(t, "All settled\n", out)

	in := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(in, []byte(importFixture), 0o644))
	_, err = ctl(t, url, "import", in)
	require.NoError(t, err)

	out, err = ctl(t, url, "balances")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Sara", "750", "1"}, strings.Fields(lines[1]))

	out, err = ctl(t, url, "report", "-tx", "t1")
	require.NoError(t, err)
	assert.Contains(t, out, "👤 Reza (settled)")

	_, err = ctl(t, url, "report", "-tx", "missing")
	assert.Error(t, err)
}

func TestUsageErrors(t *testing.T) {
	url := startServer(t)

	_, err := ctl(t, url)
	assert.ErrorIs(t, err, errUsage)

	_, err = ctl(t, url, "frobnicate")
	assert.ErrorIs(t, err, errUsage)

	_, err = ctl(t, url, "import")
	assert.Error(t, err)
}

func TestServerFromEnvironment(t *testing.T) {
	url := startServer(t)
	t.Setenv("LEDGER_URL", url)

	var out bytes.Buffer
	err := run(context.Background(), []string{"balances"}, &out, http.DefaultClient)
	require.NoError(t, err)
	assert.Equal(t, "All settled\n", out.String())
}
