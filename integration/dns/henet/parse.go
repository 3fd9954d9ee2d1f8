package henet

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/hedns/pkg/htmlform"
)

// This file is the complete set of assumptions the client makes about the
// console's markup. Every function is a pure function of a parsed document,
// pinned by the fixtures under testdata/, so markup drift shows up as fixture
// test failures instead of silent wrong answers in production.
//
// Markup relied upon:
//   - login page: a form containing <input name="email"> and <input name="pass">
//   - error block: <div id="dns_err">message</div>
//   - status block: <div id="dns_status">message</div>
//   - zone overview: <img alt="delete" name="{zone}" value="{zoneID}"> per zone
//   - zone page: <tr class="dns_tr" id="{recordID}"> rows, name in the first
//     and data in the last <td class="dns_view"> cell, type in the cell
//     carrying class "rrlabel", TTL in the first all-digit cell after the
//     name that is not marked hidden (rows carry zone and record ids in
//     hidden cells)

// loginForm locates the credential form and returns its hidden fields, the
// values that must be replayed alongside the credentials.
func loginForm(doc *htmlform.Document) (url.Values, error) {
	form, ok := findLoginForm(doc)
	if !ok {
		return nil, ErrLoginFormNotFound
	}
	return htmlform.HiddenInputs(form), nil
}

// hasLoginForm reports whether the document shows the credential form.
// Present on the anonymous landing page and on any page served to an
// expired session.
func hasLoginForm(doc *htmlform.Document) bool {
	_, ok := findLoginForm(doc)
	return ok
}

func findLoginForm(doc *htmlform.Document) (*html.Node, bool) {
	for _, form := range doc.FindAll(htmlform.Tag("form")) {
		_, hasEmail := htmlform.Find(form, htmlform.And(htmlform.Tag("input"), htmlform.Attr("name", "email")))
		_, hasPass := htmlform.Find(form, htmlform.And(htmlform.Tag("input"), htmlform.Attr("name", "pass")))
		if hasEmail && hasPass {
			return form, true
		}
	}
	return nil, false
}

// consoleError returns the visible error message when the console's error
// block is present.
func consoleError(doc *htmlform.Document) (string, bool) {
	node, ok := doc.Find(htmlform.ID("dns_err"))
	if !ok {
		return "", false
	}
	return htmlform.Text(node), true
}

// statusMessage returns the success message when the console's status block
// is present.
func statusMessage(doc *htmlform.Document) (string, bool) {
	node, ok := doc.Find(htmlform.ID("dns_status"))
	if !ok {
		return "", false
	}
	return htmlform.Text(node), true
}

// parseZones maps hosted zone names to their console identifiers from the
// overview page. Each zone row carries a delete image whose name attribute is
// the zone and whose value attribute is the identifier. Keys are lowercased
// for case-insensitive resolution.
func parseZones(doc *htmlform.Document) map[string]string {
	zones := make(map[string]string)
	images := doc.FindAll(htmlform.And(
		htmlform.Tag("img"),
		htmlform.Attr("alt", "delete"),
		htmlform.HasAttr("name"),
		htmlform.HasAttr("value"),
	))
	for _, img := range images {
		name, _ := htmlform.AttrValue(img, "name")
		id, _ := htmlform.AttrValue(img, "value")
		if name == "" || id == "" {
			continue
		}
		zones[strings.ToLower(name)] = id
	}
	return zones
}

// parseRecords extracts the DNS records listed on a zone page. Rows without
// an id attribute are skipped: the id is the record identifier every edit and
// delete submission is scoped by.
func parseRecords(doc *htmlform.Document) []Record {
	rows := doc.FindAll(htmlform.And(htmlform.Tag("tr"), htmlform.Class("dns_tr")))

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		id, ok := htmlform.AttrValue(row, "id")
		if !ok || id == "" {
			continue
		}

		record := Record{ID: id}

		views := htmlform.FindAll(row, htmlform.And(htmlform.Tag("td"), htmlform.Class("dns_view")))
		if len(views) > 0 {
			record.Name = htmlform.Text(views[0])
		}
		if len(views) > 1 {
			record.Content = unquote(htmlform.Text(views[len(views)-1]))
		}

		if typeCell, ok := htmlform.Find(row, htmlform.And(htmlform.Tag("td"), htmlform.Class("rrlabel"))); ok {
			record.Type = htmlform.Text(typeCell)
		}

		// The TTL column follows the name; scanning from the row start
		// would take an all-digit record name for the TTL.
		cells := htmlform.FindAll(row, htmlform.Tag("td"))
		if len(views) > 0 {
			for i, cell := range cells {
				if cell == views[0] {
					cells = cells[i+1:]
					break
				}
			}
		}
		for _, cell := range cells {
			if htmlform.Class("hidden")(cell) {
				continue
			}
			if ttl, err := strconv.Atoi(htmlform.Text(cell)); err == nil {
				record.TTL = ttl
				break
			}
		}

		records = append(records, record)
	}
	return records
}

// unquote strips one pair of surrounding double quotes. The console displays
// TXT data quoted; the stored value is unquoted.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
