package pipegrid

// connections maps every pipe to the two directions it joins.
var connections = map[Symbol][2]Direction{
	Horizontal: {East, West},
	Vertical:   {North, South},
	BendNE:     {North, East},
	BendNW:     {North, West},
	BendSW:     {South, West},
	BendSE:     {South, East},
}

// Valid reports whether s belongs to the pipe alphabet.
func (s Symbol) Valid() bool {
	if s == Ground || s == Start {
		return true
	}
	_, ok := connections[s]
	return ok
}

// IsPipe reports whether s is one of the six pipe shapes.
func (s Symbol) IsPipe() bool {
	_, ok := connections[s]
	return ok
}

// Connections returns the two directions a pipe joins, or nil for ground
// and the start marker (whose connections depend on its neighbours).
func (s Symbol) Connections() []Direction {
	c, ok := connections[s]
	if !ok {
		return nil
	}
	return []Direction{c[0], c[1]}
}

// Connects reports whether the pipe s has an arm pointing along d.
func (s Symbol) Connects(d Direction) bool {
	c, ok := connections[s]
	return ok && (c[0] == d || c[1] == d)
}

// ShapeOf is the inverse of Connections: it returns the pipe joining exactly
// the given two directions, or Ground when no pipe matches.
func ShapeOf(dirs ...Direction) Symbol {
	if len(dirs) != 2 || dirs[0] == dirs[1] {
		return Ground
	}
	for _, s := range Pipes {
		if s.Connects(dirs[0]) && s.Connects(dirs[1]) {
			return s
		}
	}
	return Ground
}
