package repository

// Option is one entry of an instance selector: a primary-key value plus
// the human-readable composite label shown to staff. Handlers resolve a
// chosen label back to the ID before issuing any query.
type Option struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
}
