package quantity

// String renders q as its scalar followed by its unit, space-separated
// unless the quantity is unitless (spec §4.7). Unlike the Rust reference,
// named units here are resolved to their base-SI
// coefficient at parse time (internal/units/table.go) and leave no display
// tag on Unit itself, so there is no surviving signal to print a result
// "spacelessly": every non-unitless result prints as "value unit" with a
// single separating space (see DESIGN.md).
func (q Quantity) String() string {
	u := q.Unit.String()
	if u == "" {
		return q.Scalar.String()
	}
	return q.Scalar.String() + " " + u
}

// ToString is an explicit alias for String, mirroring the two named entry
// points (to_string / to_string_outer) that
// original_source/src/quantity/quantity.rs exposes.
func (q Quantity) ToString() string {
	return q.String()
}

// ToStringOuter renders q the same way as String: this implementation has
// no separate "outer" (top-level, vs. nested-expression) display form,
// since named-unit display names never survive past parse time here.
func (q Quantity) ToStringOuter() string {
	return q.String()
}
