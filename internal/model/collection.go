package model

import "sync"

// Collection is an ordered, id-unique set of records. Readers get copies so a
// snapshot never changes under the renderer.
type Collection struct {
	mu      sync.RWMutex
	records []Record
	index   map[string]int
	version uint64
}

// NewCollection builds a collection from seed records. Later duplicates of an
// id replace the earlier record in place.
func NewCollection(records []Record) *Collection {
	c := &Collection{index: map[string]int{}}
	for _, r := range records {
		c.put(r)
	}
	return c
}

// Put inserts a record or replaces the record with the same id, keeping its
// position.
func (c *Collection) Put(r Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(r)
	c.version++
}

func (c *Collection) put(r Record) {
	if c.index == nil {
		c.index = map[string]int{}
	}
	r = cloneRecord(r)
	if i, ok := c.index[r.ID]; ok {
		c.records[i] = r
		return
	}
	c.index[r.ID] = len(c.records)
	c.records = append(c.records, r)
}

// Remove deletes the record with id and reports whether it existed.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.records); j++ {
		c.index[c.records[j].ID] = j
	}
	c.version++
	return true
}

// Get returns a copy of the record with id.
func (c *Collection) Get(id string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return cloneRecord(c.records[i]), true
}

// Has reports whether a record with id exists.
func (c *Collection) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[id]
	return ok
}

// Records returns the records in insertion order.
func (c *Collection) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, len(c.records))
	for i, r := range c.records {
		out[i] = cloneRecord(r)
	}
	return out
}

// Len is the number of records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Version increases on every mutation.
func (c *Collection) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func cloneRecord(r Record) Record {
	if r.Fields == nil {
		return r
	}
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	r.Fields = fields
	return r
}
