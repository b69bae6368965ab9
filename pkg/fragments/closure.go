package fragments

// propertyRelations lists the relation names followed when collecting
// property sets.
var propertyRelations = map[string]bool{
	"IsDefinedBy":   true,
	"HasProperties": true,
	"DefinesType":   true,
}

// IsPropertyRelation reports whether name is followed by
// CollectPropertyClosure.
func IsPropertyRelation(name string) bool {
	return propertyRelations[name]
}

// CollectPropertyClosure gathers the attributes of every item reachable from
// start through property relations. The start item's own attributes are not
// included. Each item is visited once, so cycles terminate, and duplicate
// attributes are reported once in first-visit order.
func CollectPropertyClosure(m *Model, start int32) []Attribute {
	c := &closure{
		model:   m,
		index:   m.Index(),
		owned:   relationsByOwner(m),
		visited: map[int32]bool{start: true},
		seen:    make(map[Attribute]bool),
	}
	c.walk(start)
	return c.out
}

type closure struct {
	model   *Model
	index   map[int32]int
	owned   map[int][]int
	visited map[int32]bool
	seen    map[Attribute]bool
	out     []Attribute
}

func (c *closure) walk(localID int32) {
	item, ok := c.index[localID]
	if !ok {
		return
	}
	for _, r := range c.owned[item] {
		for _, raw := range c.model.RawRelation(r) {
			rel, ok := ParseRelation(raw)
			if !ok || !IsPropertyRelation(rel.Name) {
				continue
			}
			for _, id := range rel.IDs {
				if c.visited[id] {
					continue
				}
				c.visited[id] = true
				c.collect(id)
				c.walk(id)
			}
		}
	}
}

func (c *closure) collect(localID int32) {
	item, ok := c.index[localID]
	if !ok {
		return
	}
	for _, a := range ParseAttribute(c.model.RawAttributes(item)) {
		if c.seen[a] {
			continue
		}
		c.seen[a] = true
		c.out = append(c.out, a)
	}
}

// relationsByOwner groups relation record indices by owning item index.
func relationsByOwner(m *Model) map[int][]int {
	owned := make(map[int][]int)
	for r := 0; r < m.RelationCount(); r++ {
		owner := m.RelationOwner(r)
		owned[owner] = append(owned[owner], r)
	}
	return owned
}
