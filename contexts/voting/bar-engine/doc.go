// Package barengine implements the 100%-bar voting engine inside the
// voting context.
//
// The module owns ballot validation and normalization (position intervals
// or raw percentages onto one shared bar), incremental per-room
// aggregation, and room lifecycle (creation, vote accumulation, TTL
// eviction under concurrent access). It keeps business rules in
// application/domain layers and isolates infrastructure concerns behind
// ports and adapters.
package barengine
