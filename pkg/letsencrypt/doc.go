// Package letsencrypt obtains TLS certificates from Let's Encrypt using
// DNS-01 challenges.
//
// The generator wraps go-acme/lego: it registers a throwaway ACME account,
// proves domain control through a supplied challenge.Provider, and writes the
// issued certificate, private key, and issuer chain to disk. Because control
// is proven over DNS, the host requesting the certificate never has to be
// reachable from the internet, and wildcard names work.
//
// # Basic Usage
//
//	client, err := henet.New(henet.Config{Username: user, Password: pass})
//	if err != nil {
//		return err
//	}
//
//	provider, err := acmedns.New(client, "adammiller.io")
//	if err != nil {
//		return err
//	}
//
//	gen, err := letsencrypt.NewGenerator(
//		[]string{"*.adammiller.io", "adammiller.io"},
//		"admin@adammiller.io",
//		"/var/cache/certs",
//		provider,
//	)
//	if err != nil {
//		return err
//	}
//
//	result, err := gen.Generate(ctx)
//	if err != nil {
//		return err
//	}
//	log.Printf("certificate written to %s", result.CertificatePath)
//
// # Issuance Flow
//
// Generate is a blocking call, typically one to two minutes end to end: the
// provider publishes the validation record, lego polls the configured
// resolvers until the record is visible, the CA validates, and the artifacts
// land in the output directory named after the first domain.
//
// Use WithCADirectoryURL to point at the Let's Encrypt staging environment
// during integration testing; production rate limits are strict.
package letsencrypt
