package jsonstore

// NextID returns the identity for the next record of a collection: 1 when
// the collection is empty, otherwise one past the largest existing id.
// The rule holds only while ids are assigned monotonically and records are
// never deleted or reordered; no operation in this system does either.
func NextID[T Record](records []T) int {
	next := 1
	for _, rec := range records {
		if rec.GetID() >= next {
			next = rec.GetID() + 1
		}
	}
	return next
}
