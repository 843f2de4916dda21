// Package auth is the token collaborator consumed by handlers: HMAC-SHA256
// JWT issuance and validation, bcrypt password hashing, and the pipeline step
// that turns a bearer token into an authenticated identity on the business
// context. It does not participate in dispatch.
package auth
