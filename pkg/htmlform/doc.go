// Package htmlform provides extraction primitives for treating server-rendered
// HTML as a protocol surface: locating forms, collecting the hidden fields
// needed to replay a submission, and mapping visible row content to embedded
// identifiers.
//
// Everything here is a pure function of the document text, so callers can pin
// their scraping contract with static fixtures and no network access.
//
// Basic usage:
//
//	doc, err := htmlform.ParseDocument(resp.Body)
//	if err != nil {
//		// handle htmlform.ErrMalformedDocument
//	}
//
//	form, err := doc.FindForm(htmlform.ID("login"))
//	if err != nil {
//		// handle htmlform.ErrFormNotFound
//	}
//
//	fields := htmlform.HiddenInputs(form)
//	fields.Set("email", username)
//	fields.Set("pass", password)
//
// # Row Extraction
//
// Matchers compose to describe table-row locators, and AttrValue/Text pull
// identifiers and visible content out of the matched nodes:
//
//	rows := doc.FindAll(htmlform.And(htmlform.Tag("tr"), htmlform.Class("dns_tr")))
//	for _, row := range rows {
//		id, _ := htmlform.AttrValue(row, "id")
//		for _, cell := range htmlform.FindAll(row, htmlform.Class("dns_view")) {
//			_ = htmlform.Text(cell)
//		}
//	}
//
// # Error Distinction
//
// A document that cannot be parsed yields ErrMalformedDocument; a parseable
// document lacking an expected form or input yields ErrFormNotFound or
// ErrInputNotFound. Callers rely on the distinction to tell "the page changed
// shape" apart from "the element is genuinely absent".
package htmlform
