package ukmhub

import "embed"

// EmailFS holds the email templates rendered by internal/email.
// Each template group is a directory with html.tmpl and plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS
