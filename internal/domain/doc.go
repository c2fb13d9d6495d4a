// Package domain contains the core entities of the contacts service, users
// and the contacts they own, together with the field rules both share.
// It has no knowledge of storage or transport.
package domain
