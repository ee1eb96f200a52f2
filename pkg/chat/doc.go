// Package chat implements the conversation core of the SHROVATE
// console: the turn data model, the append-only session store, and the
// response router that decides which remote generative capability to
// invoke for a user turn and assembles the resulting multi-modal reply.
//
// The package has no opinion about transport or rendering. The remote
// service is reached through the Provider interface, and the store
// notifies subscribers so a presentation layer can follow appends.
package chat
