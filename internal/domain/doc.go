// Package domain contains the entities of the person directory: people, their
// locations, login and contact payloads, uploaded image metadata and the
// existence set used for person lookups. Entities are transient; they are
// built from a request, validated and returned within that request.
package domain
