package contact

import "strings"

// AddressBook maps contact names to records and iterates in insertion order.
// Overwriting an existing name keeps its place in that order.
//
// The zero value is an empty book ready to use. AddressBook is not safe for
// concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r under r.Name(), replacing any record already stored
// under that name. r must not be nil.
func (b *AddressBook) AddRecord(r *Record) {
	if b.records == nil {
		b.records = make(map[string]*Record)
	}
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return newError(KindNotFound, "delete", MsgContactNotFound)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, name := range b.order {
		out[i] = b.records[name]
	}
	return out
}

// String renders every record on its own line, in insertion order.
func (b *AddressBook) String() string {
	lines := make([]string, len(b.order))
	for i, name := range b.order {
		lines[i] = b.records[name].String()
	}
	return strings.Join(lines, "\n")
}
