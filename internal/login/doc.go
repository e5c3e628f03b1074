// Package login holds the entities of a login attempt: the validated
// credentials, the success result and the transport request they are built
// from, plus the Authenticator contract of the collaborator that checks them.
package login
