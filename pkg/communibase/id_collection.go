package communibase

// IDCollection is an ordered list of ids. Duplicates are kept.
type IDCollection struct {
	ids []ID
}

// NewIDCollection copies ids into a collection.
func NewIDCollection(ids ...ID) IDCollection {
	out := make([]ID, len(ids))
	copy(out, ids)
	return IDCollection{ids: out}
}

// IDsFromStrings parses every string; the first invalid one fails the whole
// collection.
func IDsFromStrings(ss []string) (IDCollection, error) {
	ids := make([]ID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(s)
		if err != nil {
			return IDCollection{}, err
		}
		ids = append(ids, id)
	}
	return IDCollection{ids: ids}, nil
}

func (c IDCollection) Len() int {
	return len(c.ids)
}

// Strings returns the ids as strings, in collection order.
func (c IDCollection) Strings() []string {
	out := make([]string, len(c.ids))
	for i, id := range c.ids {
		out[i] = id.String()
	}
	return out
}

// IDs returns a copy of the underlying ids.
func (c IDCollection) IDs() []ID {
	out := make([]ID, len(c.ids))
	copy(out, c.ids)
	return out
}

func (c IDCollection) Contains(id ID) bool {
	for _, v := range c.ids {
		if v.Equal(id) {
			return true
		}
	}
	return false
}
