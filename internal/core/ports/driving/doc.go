// Package driving defines the interfaces that outer surfaces (CLI,
// future UIs) call IN to the core. These are the "driving" or
// "primary" ports in hexagonal architecture: the front-end contract.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
