package domain

import "sort"

// DefaultPeople seeds the directory when nothing else is configured.
var DefaultPeople = []int{1, 2, 3, 4, 5}

// Directory is a read-only set of known person IDs. It is built once at
// startup and shared by every request.
type Directory struct {
	ids map[int]struct{}
}

// NewDirectory builds a directory from the given IDs. Duplicates collapse.
func NewDirectory(ids ...int) *Directory {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Directory{ids: set}
}

// Exists reports whether id is in the directory.
func (d *Directory) Exists(id int) bool {
	if d == nil {
		return false
	}
	_, ok := d.ids[id]
	return ok
}

// Lookup returns ErrPersonNotFound when id is not in the directory.
func (d *Directory) Lookup(id int) error {
	if !d.Exists(id) {
		return ErrPersonNotFound
	}
	return nil
}

// IDs returns the known IDs in ascending order.
func (d *Directory) IDs() []int {
	if d == nil {
		return nil
	}
	out := make([]int, 0, len(d.ids))
	for id := range d.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of known IDs.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ids)
}
