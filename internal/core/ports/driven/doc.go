// Package driven defines the outbound ports of the core: interfaces
// the core calls and adapters implement (codec, storage, config).
package driven
