package henet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hedns/pkg/htmlform"
)

func fixtureDocument(t *testing.T, name string) *htmlform.Document {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	doc, err := htmlform.ParseDocument(f)
	require.NoError(t, err)
	return doc
}

func TestLoginForm(t *testing.T) {
	t.Parallel()

	t.Run("landing page exposes hidden fields", func(t *testing.T) {
		t.Parallel()
		doc := fixtureDocument(t, "login.html")

		require.True(t, hasLoginForm(doc))

		fields, err := loginForm(doc)
		require.NoError(t, err)
		assert.Equal(t, "1", fields.Get("submitted"))
	})

	t.Run("authenticated page has no credential form", func(t *testing.T) {
		t.Parallel()
		doc := fixtureDocument(t, "overview.html")

		assert.False(t, hasLoginForm(doc))

		_, err := loginForm(doc)
		assert.ErrorIs(t, err, ErrLoginFormNotFound)
	})

	t.Run("form without credential inputs does not count", func(t *testing.T) {
		t.Parallel()
		doc, err := htmlform.ParseDocument(strings.NewReader(
			`<form id="search"><input type="text" name="q" /></form>`))
		require.NoError(t, err)

		assert.False(t, hasLoginForm(doc))
	})
}

func TestConsoleError(t *testing.T) {
	t.Parallel()

	msg, failed := consoleError(fixtureDocument(t, "login_failed.html"))
	require.True(t, failed)
	assert.Contains(t, msg, "Incorrect email or password")

	_, failed = consoleError(fixtureDocument(t, "overview.html"))
	assert.False(t, failed)
}

func TestStatusMessage(t *testing.T) {
	t.Parallel()

	msg, ok := statusMessage(fixtureDocument(t, "delete_ok.html"))
	require.True(t, ok)
	assert.Equal(t, "Successfully removed record.", msg)

	_, ok = statusMessage(fixtureDocument(t, "zone.html"))
	assert.False(t, ok)
}

func TestParseZones(t *testing.T) {
	t.Parallel()

	zones := parseZones(fixtureDocument(t, "overview.html"))

	assert.Equal(t, map[string]string{
		"adammiller.io": "123321",
		"example.net":   "778899",
	}, zones)
}

func TestParseRecords(t *testing.T) {
	t.Parallel()

	records := parseRecords(fixtureDocument(t, "zone.html"))
	require.Len(t, records, 3)

	byID := make(map[string]Record, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	txt, ok := byID["445566"]
	require.True(t, ok)
	assert.Equal(t, "_acme-challenge.example", txt.Name)
	assert.Equal(t, "TXT", txt.Type)
	assert.Equal(t, "abc123", txt.Content, "TXT data must come back unquoted")
	assert.Equal(t, 300, txt.TTL)

	ns, ok := byID["112201"]
	require.True(t, ok)
	assert.Equal(t, "adammiller.io", ns.Name)
	assert.Equal(t, "NS", ns.Type)
	assert.Equal(t, "ns1.he.net", ns.Content)
	assert.Equal(t, 172800, ns.TTL)
}

func TestParseRecordsSkipsRowsWithoutID(t *testing.T) {
	t.Parallel()

	doc, err := htmlform.ParseDocument(strings.NewReader(`
		<table>
			<tr class="dns_tr"><td class="dns_view">orphan</td></tr>
			<tr class="dns_tr" id="42"><td class="dns_view">kept</td></tr>
		</table>`))
	require.NoError(t, err)

	records := parseRecords(doc)
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].ID)
	assert.Equal(t, "kept", records[0].Name)
}

func TestParseRecordsNumericName(t *testing.T) {
	t.Parallel()

	doc, err := htmlform.ParseDocument(strings.NewReader(`
		<table>
			<tr class="dns_tr" id="7001">
				<td class="hidden">123321</td>
				<td class="hidden">7001</td>
				<td class="dns_view">123</td>
				<td align="center">86400</td>
				<td align="center" class="rrlabel A" data="A">A</td>
				<td align="center">-</td>
				<td class="dns_view" data="203.0.113.9">203.0.113.9</td>
			</tr>
		</table>`))
	require.NoError(t, err)

	records := parseRecords(doc)
	require.Len(t, records, 1)
	assert.Equal(t, "123", records[0].Name)
	assert.Equal(t, 86400, records[0].TTL, "an all-digit name must not be read as the TTL")
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quoted", `"abc123"`, "abc123"},
		{"unquoted", "abc123", "abc123"},
		{"empty quotes", `""`, ""},
		{"single quote char", `"`, `"`},
		{"inner quotes kept", `"a"b"`, `a"b`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, unquote(tt.input))
		})
	}
}
