package vietflux

// ringCap bounds the applied-intent history kept per engine.
const ringCap = 32

// IntentRecord describes how one keystroke resolved: the intent the method
// table produced and what the transform engine did with it (applied,
// degraded to a literal, or undone). The engine keeps the most recent
// ringCap records for traces and debugging; they carry no state the
// composition depends on.
type IntentRecord struct {
	Seq     int64
	Key     string
	Intent  string
	Outcome string
}

type intentRing struct {
	records [ringCap]IntentRecord
	next    int
	count   int
}

func (r *intentRing) push(rec IntentRecord) {
	r.records[r.next] = rec
	r.next = (r.next + 1) % ringCap
	if r.count < ringCap {
		r.count++
	}
}

// items returns the retained records, oldest first.
func (r *intentRing) items() []IntentRecord {
	out := make([]IntentRecord, 0, r.count)
	start := (r.next - r.count + ringCap) % ringCap
	for i := 0; i < r.count; i++ {
		out = append(out, r.records[(start+i)%ringCap])
	}
	return out
}

func (r *intentRing) reset() {
	r.next, r.count = 0, 0
}
