package internal

func NewEdgeKey(a, b Point) EdgeKey {
	if b.Less(a) {
		return EdgeKey{b, a}
	}
	return EdgeKey{a, b}
}

func (e Edge) Key() EdgeKey {
	return NewEdgeKey(e.A, e.B)
}

// Edge equality ignores direction.
func (e Edge) Equals(other Edge) bool {
	return (e.A.Equals(other.A) && e.B.Equals(other.B)) ||
		(e.A.Equals(other.B) && e.B.Equals(other.A))
}
