package ctxlog

// Var declares one named variable slot on a logger. A Var is immutable once
// declared; the declared set is replaced wholesale by DeclareVars, never
// edited incrementally.
type Var struct {
	name     string
	producer Producer
}

// NewVar declares a variable that must always be bound with an explicit value.
func NewVar(name string) Var {
	return Var{name: name}
}

// NewProducerVar declares a variable whose value is generated by producer
// when Produce is called for it.
func NewProducerVar(name string, producer Producer) Var {
	return Var{name: name, producer: producer}
}

// Name returns the declared variable name.
func (v Var) Name() string {
	return v.name
}

// HasProducer reports whether the variable carries a producer.
func (v Var) HasProducer() bool {
	return v.producer != nil
}

// varSet holds the declared variables of one logger in declaration order.
// Declaring a name twice overwrites the earlier spec but keeps its position,
// so merge and render order stay deterministic.
type varSet struct {
	order []string
	specs map[string]Var
}

func newVarSet(vars []Var) *varSet {
	vs := &varSet{
		order: make([]string, 0, len(vars)),
		specs: make(map[string]Var, len(vars)),
	}
	for _, v := range vars {
		if v.name == "" {
			continue
		}
		if _, exists := vs.specs[v.name]; !exists {
			vs.order = append(vs.order, v.name)
		}
		vs.specs[v.name] = v
	}
	return vs
}

func (vs *varSet) lookup(name string) (Var, bool) {
	v, ok := vs.specs[name]
	return v, ok
}
