// Package henet provides an authenticated client for the dns.he.net hosted
// DNS console.
//
// Hurricane Electric's hosted DNS exposes no API: the only management surface
// is the HTML console served to browsers. This client treats that console as
// a protocol. It logs in like a browser (session cookie plus credential form
// submission), resolves zone names to the internal identifiers every record
// endpoint is scoped by, and creates, locates, and deletes TXT records by
// replaying the console's own forms and reading identifiers back out of the
// rendered listings.
//
// Basic usage:
//
//	cfg := henet.Config{
//		Username: "acme@example.com",
//		Password: "secret",
//		BaseURL:  "https://dns.he.net",
//		Timeout:  30 * time.Second,
//	}
//
//	client, err := henet.New(cfg)
//	if err != nil {
//		// Handle configuration error
//	}
//
//	ctx := context.Background()
//	if err := client.Login(ctx); err != nil {
//		// errors.Is(err, henet.ErrAuthenticationFailed) means bad credentials;
//		// errors.Is(err, henet.ErrTransport) means the console was unreachable.
//	}
//
//	zoneID, err := client.ResolveZone(ctx, "adammiller.io")
//	if err != nil {
//		// Handle henet.ErrZoneNotFound
//	}
//
//	if err := client.CreateTXT(ctx, zoneID, "_acme-challenge.example", "abc123"); err != nil {
//		// Handle henet.ErrCreateFailed
//	}
//
//	recordID, err := client.LocateTXT(ctx, zoneID, "_acme-challenge.example", "abc123")
//	if err != nil {
//		// Handle henet.ErrRecordNotFound
//	}
//
//	if err := client.DeleteRecord(ctx, zoneID, recordID); err != nil {
//		// Handle henet.ErrDeleteFailed
//	}
//
// # The Parsing Contract
//
// Every assumption about the console's markup lives in parse.go as pure
// functions over parsed documents, pinned by fixtures under testdata/. When
// Hurricane Electric changes the console, those fixture tests fail first,
// and the client surfaces ErrParseFailed or the relevant not-found error
// instead of a silent wrong answer. Networking code never inspects markup
// directly.
//
// # Error Classification
//
// Failures are distinguishable with errors.Is so callers can report
// actionable diagnostics:
//
//   - ErrTransport: the console was unreachable or answered outside 2xx.
//   - ErrAuthenticationFailed: the console rejected the credentials.
//   - ErrSessionExpired: an authenticated request was answered with the
//     credential form; the session cookie is no longer valid.
//   - ErrLoginFormNotFound, ErrParseFailed: the console changed shape.
//   - ErrZoneNotFound, ErrRecordNotFound: the account genuinely lacks the
//     requested zone or record.
//
// The client never retries authentication or submissions on its own; only
// the post-create listing lookup in LocateTXT retries, because creation lag
// is expected and re-reading a listing has no side effects.
//
// # Debugging Markup Drift
//
// Setting Config.Debug dumps every request and response through the logger
// at debug level. When the console changes shape in production, this is the
// fastest way to see what the page actually looks like now.
package henet
