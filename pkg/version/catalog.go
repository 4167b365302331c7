package version

// Catalog is a deduplicated set of candidate versions for one repository.
// It is built fresh per owner/repo and never mutated after construction.
type Catalog struct {
	specs []*Spec
	seen  map[string]struct{}
}

// NewCatalog builds a catalog from raw tag or release names.
// Entries that don't match the version grammar are dropped: one bad tag must
// not block resolution against the rest. Duplicates are dropped by Raw.
func NewCatalog(raws []string) *Catalog {
	c := &Catalog{
		specs: make([]*Spec, 0, len(raws)),
		seen:  make(map[string]struct{}, len(raws)),
	}
	for _, raw := range raws {
		spec, err := Parse(raw)
		if err != nil {
			continue
		}
		if _, ok := c.seen[spec.Raw]; ok {
			continue
		}
		c.seen[spec.Raw] = struct{}{}
		c.specs = append(c.specs, spec)
	}
	return c
}

// Specs returns the candidates in insertion order.
func (c *Catalog) Specs() []*Spec {
	return c.specs
}

// Len returns the number of valid candidates.
func (c *Catalog) Len() int {
	return len(c.specs)
}
