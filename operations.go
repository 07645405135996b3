package arrays

// Operation describes one entry of the exported operation set.
//
// Generic functions cannot be stored uninstantiated in a map, so the
// aggregated name-to-operation mapping carries the catalog — names, arities
// and alias relations — while the package exports carry the operations
// themselves.
type Operation struct {
	// Name is the operation's canonical snake_case name.
	Name string
	// GoName is the exported identifier implementing the operation.
	GoName string
	// Arity is the number of arguments of the direct call form,
	// the sequence included.
	Arity int
	// AliasOf names the operation this one is an alias of, if any.
	AliasOf string
}

var operations = []Operation{
	{Name: "each", GoName: "Each", Arity: 2},
	{Name: "each_until", GoName: "EachUntil", Arity: 2},
	{Name: "each_in_reverse", GoName: "EachInReverse", Arity: 2},
	{Name: "each_in_reverse_until", GoName: "EachInReverseUntil", Arity: 2},
	{Name: "reduce", GoName: "Reduce", Arity: 2},
	{Name: "reduce_from", GoName: "ReduceFrom", Arity: 3},
	{Name: "reduce_op", GoName: "ReduceOp", Arity: 2},
	{Name: "reduce_op_from", GoName: "ReduceOpFrom", Arity: 3},
	{Name: "first", GoName: "First", Arity: 1},
	{Name: "first_match", GoName: "FirstMatch", Arity: 2},
	{Name: "last", GoName: "Last", Arity: 1},
	{Name: "last_match", GoName: "LastMatch", Arity: 2},
	{Name: "any", GoName: "Any", Arity: 2},
	{Name: "none", GoName: "None", Arity: 2},
	{Name: "all", GoName: "All", Arity: 2},
	{Name: "true_for_all", GoName: "TrueForAll", Arity: 2, AliasOf: "all"},
	{Name: "count", GoName: "Count", Arity: 2},
	{Name: "map", GoName: "Map", Arity: 2},
	{Name: "filter", GoName: "Filter", Arity: 2},
	{Name: "flat_map", GoName: "FlatMap", Arity: 2},
	{Name: "flatten", GoName: "Flatten", Arity: 1},
	{Name: "flatten_deep", GoName: "FlattenDeep", Arity: 1},
	{Name: "uniq", GoName: "Uniq", Arity: 1},
	{Name: "uniq_by", GoName: "UniqBy", Arity: 2},
	{Name: "sort", GoName: "Sort", Arity: 1},
	{Name: "sort_with", GoName: "SortWith", Arity: 2},
	{Name: "max", GoName: "Max", Arity: 2},
	{Name: "min", GoName: "Min", Arity: 2},
	{Name: "generate", GoName: "Generate", Arity: 2},
}

// Operations returns the aggregated name-to-operation mapping of the
// toolkit's exported operation set.
func Operations() map[string]Operation {
	out := make(map[string]Operation, len(operations))
	for _, op := range operations {
		out[op.Name] = op
	}
	return out
}

// LookupOperation returns the catalog entry for the given snake_case
// operation name.
func LookupOperation(name string) (Operation, bool) {
	op, ok := Operations()[name]
	return op, ok
}
