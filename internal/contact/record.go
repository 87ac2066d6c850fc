// Package contact holds the in-memory address book: validated phone numbers,
// contact records, and the book that owns them.
package contact

import "strings"

// Record is one contact: a free-form name and an ordered list of phones.
// Duplicate phones are allowed.
type Record struct {
	name   string
	phones []PhoneNumber
}

// NewRecord creates a Record with no phones.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the record's phones in order.
func (r *Record) Phones() []PhoneNumber {
	out := make([]PhoneNumber, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates number and appends it.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhoneNumber(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to number. Absent numbers are ignored.
func (r *Record) RemovePhone(number string) {
	var kept []PhoneNumber
	for _, p := range r.phones {
		if p.digits != number {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldNumber with newNumber.
// Phones are left untouched on any error.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	idx := r.indexOf(oldNumber)
	if idx < 0 {
		return newError(KindNotFound, "edit phone", "Phone number not found.")
	}
	p, err := NewPhoneNumber(newNumber)
	if err != nil {
		return err
	}
	r.phones[idx] = p
	return nil
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (PhoneNumber, bool) {
	idx := r.indexOf(number)
	if idx < 0 {
		return PhoneNumber{}, false
	}
	return r.phones[idx], true
}

// ReplacePrimaryPhone overwrites the first phone with newNumber.
func (r *Record) ReplacePrimaryPhone(newNumber string) error {
	if len(r.phones) == 0 {
		return newError(KindNoPhoneToReplace, "change phone", "No phone number to change.")
	}
	p, err := NewPhoneNumber(newNumber)
	if err != nil {
		return err
	}
	r.phones[0] = p
	return nil
}

// String renders "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Contact name: ")
	b.WriteString(r.name)
	b.WriteString(", phones: ")
	for i, p := range r.phones {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.digits)
	}
	return b.String()
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.digits == number {
			return i
		}
	}
	return -1
}
