package computad

import "fmt"

// ComputadFailureKind discriminates double-computad well-formedness
// failures.
type ComputadFailureKind int

const (
	// MissingEdgeDom marks a tight edge whose domain vertex is absent.
	MissingEdgeDom ComputadFailureKind = iota
	// MissingEdgeCod marks a tight edge whose codomain vertex is absent.
	MissingEdgeCod
	// MissingProedgeSrc marks a proedge whose source vertex is absent.
	MissingProedgeSrc
	// MissingProedgeTgt marks a proedge whose target vertex is absent.
	MissingProedgeTgt
	// MissingCellDom marks a cell whose domain path is not contained in
	// the proedge skeleton.
	MissingCellDom
	// MissingCellCod marks a cell whose codomain proedge is absent.
	MissingCellCod
	// MissingCellSrc marks a cell whose source tight edge is absent.
	MissingCellSrc
	// MissingCellTgt marks a cell whose target tight edge is absent.
	MissingCellTgt
	// NotCommuting marks a cell whose four boundaries all resolve but
	// fail to close a square.
	NotCommuting
)

// String names the failure kind for diagnostics.
func (k ComputadFailureKind) String() string {
	switch k {
	case MissingEdgeDom:
		return "MissingEdgeDom"
	case MissingEdgeCod:
		return "MissingEdgeCod"
	case MissingProedgeSrc:
		return "MissingProedgeSrc"
	case MissingProedgeTgt:
		return "MissingProedgeTgt"
	case MissingCellDom:
		return "MissingCellDom"
	case MissingCellCod:
		return "MissingCellCod"
	case MissingCellSrc:
		return "MissingCellSrc"
	case MissingCellTgt:
		return "MissingCellTgt"
	case NotCommuting:
		return "NotCommuting"
	default:
		return fmt.Sprintf("ComputadFailureKind(%d)", int(k))
	}
}

// InvalidDblComputad reports one well-formedness failure, naming the
// offending generator in the field matching the kind's sort.
type InvalidDblComputad[E, P, C comparable] struct {
	Kind    ComputadFailureKind
	Edge    E
	Proedge P
	Cell    C
}

// String renders the failure for diagnostics.
func (f InvalidDblComputad[E, P, C]) String() string {
	switch f.Kind {
	case MissingEdgeDom, MissingEdgeCod:
		return fmt.Sprintf("%s(%v)", f.Kind, f.Edge)
	case MissingProedgeSrc, MissingProedgeTgt:
		return fmt.Sprintf("%s(%v)", f.Kind, f.Proedge)
	default:
		return fmt.Sprintf("%s(%v)", f.Kind, f.Cell)
	}
}

// Validate reports every well-formedness failure: tight edges and
// proedges with absent endpoints, cells with unresolvable boundaries,
// and cells whose resolved boundaries do not close a square. One
// failure per violated instance; a cell's square is only checked once
// all four boundaries individually resolve, so a single missing
// generator yields a single failure. Pure and idempotent.
// Complexity: O(E + P + Σ|dom(c)|)
func (d *HashDblComputad[V, E, P, C]) Validate() []InvalidDblComputad[E, P, C] {
	var out []InvalidDblComputad[E, P, C]
	for _, e := range d.edges.Elems() {
		out = append(out, d.validateEdge(e)...)
	}
	for _, p := range d.proedges.Elems() {
		out = append(out, d.validateProedge(p)...)
	}
	for _, c := range d.cells.Elems() {
		out = append(out, d.validateCell(c)...)
	}
	return out
}

// IsValid reports whether the computad has no well-formedness
// failures, stopping at the first one found.
// Complexity: O(E + P + Σ|dom(c)|) worst case
func (d *HashDblComputad[V, E, P, C]) IsValid() bool {
	for _, e := range d.edges.Elems() {
		if len(d.validateEdge(e)) > 0 {
			return false
		}
	}
	for _, p := range d.proedges.Elems() {
		if len(d.validateProedge(p)) > 0 {
			return false
		}
	}
	for _, c := range d.cells.Elems() {
		if len(d.validateCell(c)) > 0 {
			return false
		}
	}
	return true
}

func (d *HashDblComputad[V, E, P, C]) validateEdge(e E) []InvalidDblComputad[E, P, C] {
	var out []InvalidDblComputad[E, P, C]
	if v, ok := d.domMap.Apply(e); !ok || !d.vertices.Contains(v) {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingEdgeDom, Edge: e})
	}
	if v, ok := d.codMap.Apply(e); !ok || !d.vertices.Contains(v) {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingEdgeCod, Edge: e})
	}
	return out
}

func (d *HashDblComputad[V, E, P, C]) validateProedge(p P) []InvalidDblComputad[E, P, C] {
	var out []InvalidDblComputad[E, P, C]
	if v, ok := d.srcMap.Apply(p); !ok || !d.vertices.Contains(v) {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingProedgeSrc, Proedge: p})
	}
	if v, ok := d.tgtMap.Apply(p); !ok || !d.vertices.Contains(v) {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingProedgeTgt, Proedge: p})
	}
	return out
}

// validateCell resolves the four boundaries independently, reporting
// one failure per boundary that does not resolve; the commuting-square
// condition is checked only when all four resolved.
func (d *HashDblComputad[V, E, P, C]) validateCell(c C) []InvalidDblComputad[E, P, C] {
	var out []InvalidDblComputad[E, P, C]
	pg := d.ProGraph()

	dom, domOK := d.cellDomMap.Apply(c)
	if domOK {
		domOK = dom.ContainedIn(pg)
	}
	if !domOK {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingCellDom, Cell: c})
	}
	cod, codOK := d.cellCodMap.Apply(c)
	if codOK {
		codOK = d.proedges.Contains(cod)
	}
	if !codOK {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingCellCod, Cell: c})
	}
	src, srcOK := d.cellSrcMap.Apply(c)
	if srcOK {
		srcOK = d.edges.Contains(src)
	}
	if !srcOK {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingCellSrc, Cell: c})
	}
	tgt, tgtOK := d.cellTgtMap.Apply(c)
	if tgtOK {
		tgtOK = d.edges.Contains(tgt)
	}
	if !tgtOK {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: MissingCellTgt, Cell: c})
	}
	if !domOK || !codOK || !srcOK || !tgtOK {
		return out
	}

	commutes := dom.SrcIn(pg) == d.Dom(src) &&
		dom.TgtIn(pg) == d.Dom(tgt) &&
		d.Src(cod) == d.Cod(src) &&
		d.Tgt(cod) == d.Cod(tgt)
	if !commutes {
		out = append(out, InvalidDblComputad[E, P, C]{Kind: NotCommuting, Cell: c})
	}
	return out
}
