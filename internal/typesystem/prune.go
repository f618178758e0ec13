package typesystem

// Prune resolves t through the substitution chain one level: if t is a
// variable bound in s, its bound type is returned (pruned further); any other
// shape, including a constructor's unresolved argument, is returned as-is —
// Prune does not descend into constructor arguments.
func Prune(s Subst, t Type) Type {
	v, ok := t.(TypeVariable)
	if !ok {
		return t
	}
	bound, ok := s[v.ID]
	if !ok {
		return t
	}
	return Prune(s, bound)
}

// RecursivePrune resolves t fully: constructors are rebuilt with each
// argument recursively pruned, qualified types have their underlying pruned,
// and anything else is pruned and, if that changed it, pruned again (to
// chase chains that were compressed mid-pass). It terminates because each
// step either reduces the number of unresolved variables or returns the
// input unchanged.
func RecursivePrune(s Subst, t Type) Type {
	switch v := t.(type) {
	case TypeConstructor:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = RecursivePrune(s, a)
		}
		return TypeConstructor{Name: v.Name, Args: args}
	case QualifiedType:
		return QualifiedType{Predicate: v.Predicate, Underlying: RecursivePrune(s, v.Underlying)}
	default:
		p := Prune(s, t)
		if p != t {
			return RecursivePrune(s, p)
		}
		return p
	}
}
