// Package driving defines the inbound ports of the core: the service
// interfaces the CLI adapter drives.
package driving
