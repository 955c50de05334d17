// Package trace records typing sessions to SQLite and replays them.
//
// A session row holds the engine configuration at recording time; event
// rows hold one keystroke each, with the edit it produced and the buffer
// left behind. All ordering uses the engine's logical clock (seq), never
// wall time, so a recording is independent of typing speed.
//
// Replay feeds a recorded session back through a fresh engine and reports
// the first divergence. A clean replay is a determinism check: same keys,
// same configuration, same edits.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: events require their session row
//
// SQLite allows one writer at a time; the connection pool is capped at a
// single connection to avoid SQLITE_BUSY.
package trace
