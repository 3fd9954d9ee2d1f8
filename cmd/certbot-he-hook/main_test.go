package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hedns/core/challenge"
	"github.com/dmitrymomot/hedns/integration/dns/henet"
)

func TestDiagnose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rejected credentials",
			err:  fmt.Errorf("authenticate: %w", henet.ErrAuthenticationFailed),
			want: "HE_USERNAME",
		},
		{
			name: "expired session",
			err:  fmt.Errorf("resolve zone: %w", henet.ErrSessionExpired),
			want: "session expired",
		},
		{
			name: "unknown zone",
			err:  fmt.Errorf("resolve zone: %w: adammiller.io", henet.ErrZoneNotFound),
			want: "HE_ZONE",
		},
		{
			name: "domain outside zone",
			err:  fmt.Errorf("%w: example.net is not under adammiller.io", challenge.ErrDomainOutsideZone),
			want: "CERTBOT_DOMAIN",
		},
		{
			name: "record never listed",
			err:  fmt.Errorf("locate record: record not listed after 3 attempts: %w", henet.ErrRecordNotFound),
			want: "HE_PROPAGATION_SECONDS",
		},
		{
			name: "rejected submission",
			err:  fmt.Errorf("create record: %w: invalid data", henet.ErrCreateFailed),
			want: "rejected the record submission",
		},
		{
			name: "stuck record",
			err:  fmt.Errorf("delete record: %w: record 445566 still listed", henet.ErrDeleteFailed),
			want: "could not be deleted",
		},
		{
			name: "page drift on login",
			err:  fmt.Errorf("authenticate: %w", henet.ErrLoginFormNotFound),
			want: "changed shape",
		},
		{
			name: "page drift on parse",
			err:  fmt.Errorf("resolve zone: %w", henet.ErrParseFailed),
			want: "changed shape",
		},
		{
			name: "empty capture",
			err:  challenge.ErrMissingRecordID,
			want: "CERTBOT_AUTH_OUTPUT",
		},
		{
			name: "polluted capture",
			err:  fmt.Errorf("%w: 4 tokens in captured output", challenge.ErrMalformedHandoff),
			want: "CERTBOT_AUTH_OUTPUT",
		},
		{
			name: "network failure",
			err:  fmt.Errorf("%w: Get https://dns.he.net: connection refused", henet.ErrTransport),
			want: "unreachable",
		},
		{
			name: "anything else",
			err:  errors.New("emit record id: broken pipe"),
			want: "broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, diagnose(tt.err), tt.want)
		})
	}
}
