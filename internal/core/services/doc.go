// Package services implements the driving ports on top of the driven
// ones. Each service is constructed with its dependencies and holds no
// state of its own beyond them.
//
// The ingestion pipeline lives here. Its ordering is deliberate: all
// images are saved and registered before any recognition runs, the
// document is persisted before export starts, and export results are
// recorded with a second upsert. A batch is durable the moment the
// first upsert returns; everything after that can only add to it.
package services
