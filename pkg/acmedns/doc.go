// Package acmedns lets a go-acme/lego client answer DNS-01 challenges
// through Hurricane Electric's dns.he.net console.
//
// dns.he.net has no management API, so the provider drives the HTML console
// via henet.Client: each Present logs in, resolves the hosted zone, submits
// the validation TXT record, and waits until the record shows up in the zone
// listing before returning. CleanUp deletes the record again and treats an
// already-absent record as success, so repeated cleanups are safe.
//
// Usage:
//
//	client, err := henet.New(henet.Config{Username: user, Password: pass})
//	if err != nil {
//		return err
//	}
//
//	provider, err := acmedns.New(client, "adammiller.io",
//		acmedns.WithPropagationTimeout(2*time.Minute),
//	)
//	if err != nil {
//		return err
//	}
//
//	if err := legoClient.Challenge.SetDNS01Provider(provider); err != nil {
//		return err
//	}
//
// The provider serves a single hosted zone; every challenge domain must be
// the zone apex or live under it. Construct one provider per zone when a
// client spans several.
package acmedns
