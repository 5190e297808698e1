package vm

// ConstantTable is an append-only pool of string constants; Add returns the
// index under which s is stored, reusing an existing entry so that
// Get(Add(s)) == s for any s, including across repeated insertions of the
// same string (§8's "Round-trip laws").
type ConstantTable struct {
	values []string
	index  map[string]uint32
}

// NewConstantTable creates an empty table.
func NewConstantTable() *ConstantTable {
	return &ConstantTable{index: make(map[string]uint32)}
}

// Add inserts s if not already present and returns its index.
func (t *ConstantTable) Add(s string) uint32 {
	if idx, ok := t.index[s]; ok {
		return idx
	}
	idx := uint32(len(t.values))
	t.values = append(t.values, s)
	t.index[s] = idx
	return idx
}

// Get returns the string stored at idx.
func (t *ConstantTable) Get(idx uint32) string {
	return t.values[idx]
}

// Len reports how many distinct constants are stored.
func (t *ConstantTable) Len() int { return len(t.values) }
